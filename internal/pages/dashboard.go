package pages

import (
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// DashboardPage drives /dashboard, the landing page after login.
type DashboardPage struct {
	page    playwright.Page
	baseURL string
}

func NewDashboardPage(page playwright.Page, baseURL string) *DashboardPage {
	return &DashboardPage{page: page, baseURL: baseURL}
}

func (p *DashboardPage) welcome() playwright.Locator { return p.page.GetByTestId("dashboard-welcome") }
func (p *DashboardPage) unreadBadge() playwright.Locator {
	return p.page.GetByTestId("notification-badge")
}

func (p *DashboardPage) Goto() error {
	if err := navigate(p.page, p.baseURL, "/dashboard"); err != nil {
		return err
	}
	return p.ExpectLoaded()
}

// ExpectLoaded waits for the welcome banner, the element that only
// renders once the authenticated user profile has been fetched.
func (p *DashboardPage) ExpectLoaded() error {
	return waitVisible(p.welcome())
}

// WelcomeText returns the greeting, e.g. "Bonjour Marie !".
func (p *DashboardPage) WelcomeText() (string, error) {
	text, err := p.welcome().InnerText()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// UnreadBadgeCount returns the notification badge value; 0 when the
// badge is absent (the app hides it at zero).
func (p *DashboardPage) UnreadBadgeCount() (int, error) {
	visible, err := p.unreadBadge().IsVisible()
	if err != nil {
		return 0, err
	}
	if !visible {
		return 0, nil
	}
	text, err := p.unreadBadge().InnerText()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(text))
}
