package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// SubscriptionsPage drives /subscriptions.
type SubscriptionsPage struct {
	page    playwright.Page
	baseURL string
}

func NewSubscriptionsPage(page playwright.Page, baseURL string) *SubscriptionsPage {
	return &SubscriptionsPage{page: page, baseURL: baseURL}
}

func (p *SubscriptionsPage) list() playwright.Locator {
	return p.page.GetByTestId("subscription-list")
}
func (p *SubscriptionsPage) rows() playwright.Locator {
	return p.page.GetByTestId("subscription-row")
}

func (p *SubscriptionsPage) Goto() error {
	if err := navigate(p.page, p.baseURL, "/subscriptions"); err != nil {
		return err
	}
	return p.ExpectLoaded()
}

func (p *SubscriptionsPage) ExpectLoaded() error {
	return waitVisible(p.list())
}

func (p *SubscriptionsPage) SubscriptionCount() (int, error) {
	return p.rows().Count()
}

// StatusAt returns the status chip text of the row at index.
func (p *SubscriptionsPage) StatusAt(index int) (string, error) {
	text, err := p.rows().Nth(index).GetByTestId("subscription-status").InnerText()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// RowIndexFor finds the row whose text mentions both the member and the
// activity, so specs don't depend on list ordering.
func (p *SubscriptionsPage) RowIndexFor(memberName, activityName string) (int, error) {
	count, err := p.rows().Count()
	if err != nil {
		return -1, err
	}
	for i := 0; i < count; i++ {
		text, err := p.rows().Nth(i).InnerText()
		if err != nil {
			return -1, err
		}
		if strings.Contains(text, memberName) && strings.Contains(text, activityName) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no subscription row for %s / %s", memberName, activityName)
}

// CancelSubscription cancels the row at index through the confirmation
// dialog and waits for the status chip to flip to CANCELLED.
func (p *SubscriptionsPage) CancelSubscription(index int) error {
	row := p.rows().Nth(index)
	if err := row.GetByTestId("cancel-subscription-button").Click(); err != nil {
		return fmt.Errorf("open cancel confirmation for row %d: %w", index, err)
	}
	if err := p.page.GetByTestId("confirm-button").Click(); err != nil {
		return fmt.Errorf("confirm cancellation: %w", err)
	}

	status := row.GetByTestId("subscription-status").Filter(playwright.LocatorFilterOptions{
		HasText: "CANCELLED",
	})
	if err := waitVisible(status); err != nil {
		return fmt.Errorf("row %d status never became CANCELLED: %w", index, err)
	}
	return nil
}
