// Package fixtures holds the static test data mirroring the backend
// seed rows. Every literal a spec asserts against lives here, so a seed
// change is a one-file fix.
//
// The UUIDs are stable across runs and must match the seed SQL exactly.
// A mismatch is a test-authoring bug, never a runtime condition to
// recover from.
package fixtures

import "github.com/go-playground/validator/v10"

// UserRole gates which areas of the application a principal reaches.
type UserRole string

const (
	RoleFamily      UserRole = "FAMILY"
	RoleAssociation UserRole = "ASSOCIATION"
	RoleAdmin       UserRole = "ADMIN"
)

// MemberRole is the family-member role as displayed in the UI (French).
type MemberRole string

const (
	MemberParent MemberRole = "Parent"
	MemberEnfant MemberRole = "Enfant"
)

// SubscriptionStatus is the backend subscription state.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionPending   SubscriptionStatus = "PENDING"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
)

// PaymentStatus is the backend payment state.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentCompleted  PaymentStatus = "COMPLETED"
	PaymentAuthorized PaymentStatus = "AUTHORIZED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
	PaymentCancelled  PaymentStatus = "CANCELLED"
)

// TestUser identifies a principal for authentication.
type TestUser struct {
	Email     string   `validate:"required,email"`
	Password  string   `validate:"required,min=8"`
	FirstName string   `validate:"required"`
	LastName  string   `validate:"required"`
	Role      UserRole `validate:"required,oneof=FAMILY ASSOCIATION ADMIN"`
}

// TestFamilyMember is one row of a seeded family.
type TestFamilyMember struct {
	FirstName string     `validate:"required"`
	LastName  string     `validate:"required"`
	BirthDate string     `validate:"required,datetime=2006-01-02"`
	Role      MemberRole `validate:"required,oneof=Parent Enfant"`
}

// TestFamily groups seeded members under one account.
type TestFamily struct {
	ID      string             `validate:"required,uuid4"`
	Name    string             `validate:"required"`
	Members []TestFamilyMember `validate:"required,min=1,dive"`
}

// TestAssociation is a searchable organization offering activities.
type TestAssociation struct {
	ID         string   `validate:"required,uuid4"`
	Name       string   `validate:"required"`
	Slug       string   `validate:"required,lowercase"`
	City       string   `validate:"required"`
	PostalCode string   `validate:"required,len=5,numeric"`
	Category   string   `validate:"required"`
	Activities []string `validate:"required,min=1,dive,required"`
}

// TestSubscription links a family member to an activity.
type TestSubscription struct {
	ID              string             `validate:"required,uuid4"`
	MemberName      string             `validate:"required"`
	AssociationName string             `validate:"required"`
	ActivityName    string             `validate:"required"`
	Status          SubscriptionStatus `validate:"required,oneof=ACTIVE CANCELLED PENDING EXPIRED"`
}

// TestPayment mirrors a seeded payment row. Amount stays a decimal
// string to avoid float drift; format.PriceFromCents handles rendering.
type TestPayment struct {
	ID              string        `validate:"required,uuid4"`
	Amount          string        `validate:"required"`
	Status          PaymentStatus `validate:"required,oneof=PENDING COMPLETED AUTHORIZED FAILED REFUNDED CANCELLED"`
	AssociationName string        `validate:"required"`
	Method          string        `validate:"required"`
}

// Seed users, one per role.
var (
	FamilyUser = TestUser{
		Email:     "famille.dupont@test.familyhobbies.fr",
		Password:  "Test1234!",
		FirstName: "Marie",
		LastName:  "Dupont",
		Role:      RoleFamily,
	}

	AdminUser = TestUser{
		Email:     "admin@test.familyhobbies.fr",
		Password:  "Admin1234!",
		FirstName: "Alex",
		LastName:  "Martin",
		Role:      RoleAdmin,
	}

	AssociationUser = TestUser{
		Email:     "contact@test.clubsportifparis.fr",
		Password:  "Asso1234!",
		FirstName: "Sophie",
		LastName:  "Bernard",
		Role:      RoleAssociation,
	}
)

// DupontFamily is the primary seeded family. Specs treat its members as
// read-only; mutating scenarios add their own uniquely named members.
var DupontFamily = TestFamily{
	ID:   "550e8400-e29b-41d4-a716-446655440001",
	Name: "Famille Dupont",
	Members: []TestFamilyMember{
		{FirstName: "Marie", LastName: "Dupont", BirthDate: "1985-04-12", Role: MemberParent},
		{FirstName: "Pierre", LastName: "Dupont", BirthDate: "1983-09-03", Role: MemberParent},
		{FirstName: "Lucas", LastName: "Dupont", BirthDate: "2014-06-21", Role: MemberEnfant},
		{FirstName: "Emma", LastName: "Dupont", BirthDate: "2016-11-08", Role: MemberEnfant},
	},
}

var (
	ClubSportifParis = TestAssociation{
		ID:         "660e8400-e29b-41d4-a716-446655440011",
		Name:       "Club Sportif de Paris",
		Slug:       "club-sportif-de-paris",
		City:       "Paris",
		PostalCode: "75012",
		Category:   "Sport",
		Activities: []string{"Judo enfants", "Natation", "Escalade"},
	}

	EcoleMusiqueLyon = TestAssociation{
		ID:         "660e8400-e29b-41d4-a716-446655440012",
		Name:       "École de Musique de Lyon",
		Slug:       "ecole-de-musique-de-lyon",
		City:       "Lyon",
		PostalCode: "69003",
		Category:   "Musique",
		Activities: []string{"Piano", "Guitare", "Éveil musical"},
	}

	AtelierPeintureParis = TestAssociation{
		ID:         "660e8400-e29b-41d4-a716-446655440013",
		Name:       "Atelier Peinture et Arts",
		Slug:       "atelier-peinture-et-arts",
		City:       "Paris",
		PostalCode: "75011",
		Category:   "Arts plastiques",
		Activities: []string{"Aquarelle", "Dessin enfants"},
	}
)

var (
	LucasJudoSubscription = TestSubscription{
		ID:              "770e8400-e29b-41d4-a716-446655440021",
		MemberName:      "Lucas Dupont",
		AssociationName: "Club Sportif de Paris",
		ActivityName:    "Judo enfants",
		Status:          SubscriptionActive,
	}

	EmmaPianoSubscription = TestSubscription{
		ID:              "770e8400-e29b-41d4-a716-446655440022",
		MemberName:      "Emma Dupont",
		AssociationName: "École de Musique de Lyon",
		ActivityName:    "Piano",
		Status:          SubscriptionPending,
	}
)

var (
	// PendingJudoPayment is the payment the HelloAsso webhook spec
	// advances to COMPLETED; its id is referenced by the webhook body.
	PendingJudoPayment = TestPayment{
		ID:              "880e8400-e29b-41d4-a716-446655440031",
		Amount:          "150.00",
		Status:          PaymentPending,
		AssociationName: "Club Sportif de Paris",
		Method:          "HELLOASSO",
	}

	CompletedPianoPayment = TestPayment{
		ID:              "880e8400-e29b-41d4-a716-446655440032",
		Amount:          "320.50",
		Status:          PaymentCompleted,
		AssociationName: "École de Musique de Lyon",
		Method:          "CARD",
	}
)

// NoResultsKeyword is guaranteed to match no seeded association.
const NoResultsKeyword = "ZzzAssociationInexistante999"

// AllUsers returns a copy of the seeded users.
func AllUsers() []TestUser {
	return []TestUser{FamilyUser, AdminUser, AssociationUser}
}

// AllAssociations returns a copy of the seeded associations.
func AllAssociations() []TestAssociation {
	return append([]TestAssociation(nil), ClubSportifParis, EcoleMusiqueLyon, AtelierPeintureParis)
}

// AllSubscriptions returns a copy of the seeded subscriptions.
func AllSubscriptions() []TestSubscription {
	return append([]TestSubscription(nil), LucasJudoSubscription, EmmaPianoSubscription)
}

// AllPayments returns a copy of the seeded payments.
func AllPayments() []TestPayment {
	return append([]TestPayment(nil), PendingJudoPayment, CompletedPianoPayment)
}

// UserForRole returns the seed credentials for a role.
func UserForRole(role UserRole) TestUser {
	switch role {
	case RoleAdmin:
		return AdminUser
	case RoleAssociation:
		return AssociationUser
	default:
		return FamilyUser
	}
}

// Validate runs structural validation over every seed record. The
// fixtures test calls this so a malformed literal fails fast instead of
// surfacing as a confusing spec failure.
func Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	for _, u := range AllUsers() {
		if err := v.Struct(u); err != nil {
			return err
		}
	}
	if err := v.Struct(DupontFamily); err != nil {
		return err
	}
	for _, a := range AllAssociations() {
		if err := v.Struct(a); err != nil {
			return err
		}
	}
	for _, s := range AllSubscriptions() {
		if err := v.Struct(s); err != nil {
			return err
		}
	}
	for _, p := range AllPayments() {
		if err := v.Struct(p); err != nil {
			return err
		}
	}
	return nil
}
