package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// RegisterForm is the data entered into /auth/register.
type RegisterForm struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	FamilyName string
}

// RegisterPage drives /auth/register.
type RegisterPage struct {
	page    playwright.Page
	baseURL string
}

func NewRegisterPage(page playwright.Page, baseURL string) *RegisterPage {
	return &RegisterPage{page: page, baseURL: baseURL}
}

func (p *RegisterPage) form() playwright.Locator { return p.page.GetByTestId("register-form") }
func (p *RegisterPage) submit() playwright.Locator {
	return p.page.GetByRole("button", playwright.PageGetByRoleOptions{Name: "Créer mon compte"})
}

func (p *RegisterPage) Goto() error {
	if err := navigate(p.page, p.baseURL, "/auth/register"); err != nil {
		return err
	}
	return p.ExpectLoaded()
}

func (p *RegisterPage) ExpectLoaded() error {
	return waitVisible(p.form())
}

// Register fills the whole form, submits, and waits for the dashboard:
// successful registration logs the new family in directly.
func (p *RegisterPage) Register(form RegisterForm) error {
	err := fillAndSubmit([]fieldValue{
		{"email", p.page.GetByTestId("register-email"), form.Email},
		{"password", p.page.GetByTestId("register-password"), form.Password},
		{"first name", p.page.GetByTestId("register-first-name"), form.FirstName},
		{"last name", p.page.GetByTestId("register-last-name"), form.LastName},
		{"family name", p.page.GetByTestId("register-family-name"), form.FamilyName},
	}, p.submit())
	if err != nil {
		return err
	}
	if err := p.page.WaitForURL("**/dashboard"); err != nil {
		return fmt.Errorf("registration of %s did not reach /dashboard: %w", form.Email, err)
	}
	return nil
}
