package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// LoginRoute is the unauthenticated entry point; protected routes
// redirect here when the session is missing or expired.
const LoginRoute = "/auth/login"

// LoginPage drives /auth/login.
type LoginPage struct {
	page    playwright.Page
	baseURL string
}

func NewLoginPage(page playwright.Page, baseURL string) *LoginPage {
	return &LoginPage{page: page, baseURL: baseURL}
}

func (p *LoginPage) form() playwright.Locator     { return p.page.GetByTestId("login-form") }
func (p *LoginPage) email() playwright.Locator    { return p.page.GetByTestId("login-email") }
func (p *LoginPage) password() playwright.Locator { return p.page.GetByTestId("login-password") }
func (p *LoginPage) submit() playwright.Locator {
	return p.page.GetByRole("button", playwright.PageGetByRoleOptions{Name: "Se connecter"})
}
func (p *LoginPage) errorBanner() playwright.Locator { return p.page.GetByTestId("login-error") }

// Goto navigates to the login route and waits for the form.
func (p *LoginPage) Goto() error {
	if err := navigate(p.page, p.baseURL, LoginRoute); err != nil {
		return err
	}
	return p.ExpectLoaded()
}

// ExpectLoaded waits for the defining element of the login page.
func (p *LoginPage) ExpectLoaded() error {
	return waitVisible(p.form())
}

// Login performs the full interactive flow and waits for the dashboard
// redirect, the signal that the session was established.
func (p *LoginPage) Login(email, password string) error {
	err := fillAndSubmit([]fieldValue{
		{"email", p.email(), email},
		{"password", p.password(), password},
	}, p.submit())
	if err != nil {
		return err
	}
	if err := p.page.WaitForURL("**/dashboard"); err != nil {
		return fmt.Errorf("login as %s did not reach /dashboard: %w", email, err)
	}
	return nil
}

// LoginExpectingError submits credentials and returns the error banner
// text once it appears; the page must stay on the login route.
func (p *LoginPage) LoginExpectingError(email, password string) (string, error) {
	err := fillAndSubmit([]fieldValue{
		{"email", p.email(), email},
		{"password", p.password(), password},
	}, p.submit())
	if err != nil {
		return "", err
	}
	if err := waitVisible(p.errorBanner()); err != nil {
		return "", fmt.Errorf("login error banner never appeared: %w", err)
	}
	text, err := p.errorBanner().InnerText()
	if err != nil {
		return "", err
	}
	if !strings.Contains(p.page.URL(), LoginRoute) {
		return "", fmt.Errorf("expected to stay on %s, now at %s", LoginRoute, p.page.URL())
	}
	return strings.TrimSpace(text), nil
}
