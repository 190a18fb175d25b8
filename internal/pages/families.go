package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// MemberForm is the data for the add/edit member dialog.
type MemberForm struct {
	FirstName string
	LastName  string
	BirthDate string // YYYY-MM-DD
	Role      string // "Parent" or "Enfant"
}

// FamiliesPage drives /families, the list of families on the account.
type FamiliesPage struct {
	page    playwright.Page
	baseURL string
}

func NewFamiliesPage(page playwright.Page, baseURL string) *FamiliesPage {
	return &FamiliesPage{page: page, baseURL: baseURL}
}

func (p *FamiliesPage) list() playwright.Locator  { return p.page.GetByTestId("family-list") }
func (p *FamiliesPage) cards() playwright.Locator { return p.page.GetByTestId("family-card") }

func (p *FamiliesPage) Goto() error {
	if err := navigate(p.page, p.baseURL, "/families"); err != nil {
		return err
	}
	return p.ExpectLoaded()
}

func (p *FamiliesPage) ExpectLoaded() error {
	return waitVisible(p.list())
}

// OpenFamily clicks the card matching the family name and returns the
// detail page object once it has rendered.
func (p *FamiliesPage) OpenFamily(name string) (*FamilyDetailPage, error) {
	card := p.cards().Filter(playwright.LocatorFilterOptions{HasText: name}).First()
	if err := card.Click(); err != nil {
		return nil, fmt.Errorf("open family %q: %w", name, err)
	}
	detail := NewFamilyDetailPage(p.page, p.baseURL)
	if err := detail.ExpectLoaded(); err != nil {
		return nil, err
	}
	return detail, nil
}

// FamilyDetailPage drives /families/:id.
type FamilyDetailPage struct {
	page    playwright.Page
	baseURL string
}

func NewFamilyDetailPage(page playwright.Page, baseURL string) *FamilyDetailPage {
	return &FamilyDetailPage{page: page, baseURL: baseURL}
}

func (p *FamilyDetailPage) memberList() playwright.Locator { return p.page.GetByTestId("member-list") }
func (p *FamilyDetailPage) memberRows() playwright.Locator { return p.page.GetByTestId("member-row") }
func (p *FamilyDetailPage) memberNames() playwright.Locator {
	return p.page.GetByTestId("member-name")
}
func (p *FamilyDetailPage) dialog() playwright.Locator { return p.page.GetByTestId("member-dialog") }

func (p *FamilyDetailPage) ExpectLoaded() error {
	return waitVisible(p.memberList())
}

func (p *FamilyDetailPage) MemberCount() (int, error) {
	return p.memberRows().Count()
}

// MemberNames returns the displayed member names in list order.
func (p *FamilyDetailPage) MemberNames() ([]string, error) {
	return innerTexts(p.memberNames())
}

// AddMember opens the dialog, fills it, saves, and waits until the new
// member's name shows up in the list.
func (p *FamilyDetailPage) AddMember(m MemberForm) error {
	if err := p.page.GetByTestId("add-member-button").Click(); err != nil {
		return fmt.Errorf("open add-member dialog: %w", err)
	}
	if err := p.fillMemberDialog(m); err != nil {
		return err
	}
	return p.waitForMemberVisible(m.FirstName + " " + m.LastName)
}

// EditMember edits the row at index and waits for the updated name.
func (p *FamilyDetailPage) EditMember(index int, m MemberForm) error {
	row := p.memberRows().Nth(index)
	if err := row.GetByTestId("edit-member-button").Click(); err != nil {
		return fmt.Errorf("open edit dialog for member %d: %w", index, err)
	}
	if err := p.fillMemberDialog(m); err != nil {
		return err
	}
	return p.waitForMemberVisible(m.FirstName + " " + m.LastName)
}

// RemoveMember removes the row at index through the confirmation dialog
// and waits for the row count to drop.
func (p *FamilyDetailPage) RemoveMember(index int) error {
	before, err := p.MemberCount()
	if err != nil {
		return err
	}

	row := p.memberRows().Nth(index)
	if err := row.GetByTestId("remove-member-button").Click(); err != nil {
		return fmt.Errorf("open remove confirmation for member %d: %w", index, err)
	}
	if err := p.page.GetByTestId("confirm-button").Click(); err != nil {
		return fmt.Errorf("confirm removal: %w", err)
	}

	// The list re-renders once the deletion round trip finishes.
	expected := before - 1
	_, err = p.page.WaitForFunction(
		"([selector, expected]) => document.querySelectorAll(selector).length === expected",
		[]any{"[data-testid='member-row']", expected},
	)
	if err != nil {
		return fmt.Errorf("member list did not shrink to %d rows: %w", expected, err)
	}
	return nil
}

func (p *FamilyDetailPage) fillMemberDialog(m MemberForm) error {
	if err := waitVisible(p.dialog()); err != nil {
		return fmt.Errorf("member dialog did not open: %w", err)
	}
	fields := []fieldValue{
		{"first name", p.dialog().GetByTestId("member-first-name"), m.FirstName},
		{"last name", p.dialog().GetByTestId("member-last-name"), m.LastName},
		{"birth date", p.dialog().GetByTestId("member-birth-date"), m.BirthDate},
	}
	for _, f := range fields {
		if err := f.locator.Fill(f.value); err != nil {
			return fmt.Errorf("fill %s: %w", f.name, err)
		}
	}
	if _, err := p.dialog().GetByTestId("member-role").SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{m.Role},
	}); err != nil {
		return fmt.Errorf("select role %q: %w", m.Role, err)
	}
	if err := p.dialog().GetByTestId("save-member-button").Click(); err != nil {
		return fmt.Errorf("save member: %w", err)
	}
	return waitHidden(p.dialog())
}

func (p *FamilyDetailPage) waitForMemberVisible(fullName string) error {
	row := p.memberRows().Filter(playwright.LocatorFilterOptions{HasText: fullName}).First()
	if err := waitVisible(row); err != nil {
		return fmt.Errorf("member %q never appeared in the list: %w", fullName, err)
	}
	return nil
}
