package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// NotificationsPage drives /notifications.
type NotificationsPage struct {
	page    playwright.Page
	baseURL string
}

func NewNotificationsPage(page playwright.Page, baseURL string) *NotificationsPage {
	return &NotificationsPage{page: page, baseURL: baseURL}
}

func (p *NotificationsPage) list() playwright.Locator {
	return p.page.GetByTestId("notification-list")
}
func (p *NotificationsPage) unreadRows() playwright.Locator {
	return p.page.Locator("[data-testid='notification-row'][data-unread='true']")
}

func (p *NotificationsPage) Goto() error {
	if err := navigate(p.page, p.baseURL, "/notifications"); err != nil {
		return err
	}
	return p.ExpectLoaded()
}

func (p *NotificationsPage) ExpectLoaded() error {
	return waitVisible(p.list())
}

// UnreadCount returns the page's own unread counter.
func (p *NotificationsPage) UnreadCount() (int, error) {
	counter := p.page.GetByTestId("unread-count")
	visible, err := counter.IsVisible()
	if err != nil {
		return 0, err
	}
	if !visible {
		return 0, nil
	}
	text, err := counter.InnerText()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(text))
}

// NotificationTitles returns the visible notification titles in order.
func (p *NotificationsPage) NotificationTitles() ([]string, error) {
	return innerTexts(p.page.GetByTestId("notification-title"))
}

// MarkAllRead clicks the mark-all action and waits until no row is
// flagged unread anymore.
func (p *NotificationsPage) MarkAllRead() error {
	if err := p.page.GetByTestId("mark-all-read-button").Click(); err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	_, err := p.page.WaitForFunction(
		"selector => document.querySelectorAll(selector).length === 0",
		"[data-testid='notification-row'][data-unread='true']",
	)
	if err != nil {
		return fmt.Errorf("unread rows never cleared: %w", err)
	}
	return nil
}
