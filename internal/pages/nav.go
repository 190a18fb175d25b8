package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// AppNav drives the persistent navigation shell surrounding every
// authenticated route.
type AppNav struct {
	page    playwright.Page
	baseURL string
}

func NewAppNav(page playwright.Page, baseURL string) *AppNav {
	return &AppNav{page: page, baseURL: baseURL}
}

func (n *AppNav) userMenu() playwright.Locator { return n.page.GetByTestId("user-menu") }

// IsLoggedIn reports whether the authenticated shell is rendered.
func (n *AppNav) IsLoggedIn() (bool, error) {
	return n.userMenu().IsVisible()
}

// Logout opens the user menu, logs out, and waits for the login route.
func (n *AppNav) Logout() error {
	if err := n.userMenu().Click(); err != nil {
		return fmt.Errorf("open user menu: %w", err)
	}
	if err := n.page.GetByTestId("logout-button").Click(); err != nil {
		return fmt.Errorf("click logout: %w", err)
	}
	if err := n.page.WaitForURL("**" + LoginRoute + "**"); err != nil {
		return fmt.Errorf("logout did not land on login: %w", err)
	}
	return nil
}
