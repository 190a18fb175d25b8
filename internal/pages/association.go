package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// AssociationDetailPage drives /associations/:id.
type AssociationDetailPage struct {
	page    playwright.Page
	baseURL string
}

func NewAssociationDetailPage(page playwright.Page, baseURL string) *AssociationDetailPage {
	return &AssociationDetailPage{page: page, baseURL: baseURL}
}

func (p *AssociationDetailPage) title() playwright.Locator {
	return p.page.GetByTestId("association-title")
}
func (p *AssociationDetailPage) activityCards() playwright.Locator {
	return p.page.GetByTestId("activity-card")
}

func (p *AssociationDetailPage) ExpectLoaded() error {
	return waitVisible(p.title())
}

func (p *AssociationDetailPage) Name() (string, error) {
	text, err := p.title().InnerText()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ActivityNames returns the offered activity names in display order.
func (p *AssociationDetailPage) ActivityNames() ([]string, error) {
	return innerTexts(p.activityCards().GetByTestId("activity-name"))
}

// AgeRangeText returns the age restriction label of the activity at
// index, or "" when the activity has no age bounds.
func (p *AssociationDetailPage) AgeRangeText(index int) (string, error) {
	label := p.activityCards().Nth(index).GetByTestId("activity-age-range")
	visible, err := label.IsVisible()
	if err != nil {
		return "", err
	}
	if !visible {
		return "", nil
	}
	text, err := label.InnerText()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// PriceText returns the displayed price of the activity at index.
func (p *AssociationDetailPage) PriceText(index int) (string, error) {
	text, err := p.activityCards().Nth(index).GetByTestId("activity-price").InnerText()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// SubscribeToActivity runs the subscription dialog for the named
// activity and member, waiting for the confirmation toast.
func (p *AssociationDetailPage) SubscribeToActivity(activity, memberName string) error {
	card := p.activityCards().Filter(playwright.LocatorFilterOptions{HasText: activity}).First()
	if err := card.GetByTestId("subscribe-button").Click(); err != nil {
		return fmt.Errorf("open subscription dialog for %q: %w", activity, err)
	}

	dialog := p.page.GetByTestId("subscription-dialog")
	if err := waitVisible(dialog); err != nil {
		return fmt.Errorf("subscription dialog did not open: %w", err)
	}
	if _, err := dialog.GetByTestId("member-select").SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{memberName},
	}); err != nil {
		return fmt.Errorf("select member %q: %w", memberName, err)
	}
	if err := dialog.GetByTestId("confirm-subscription-button").Click(); err != nil {
		return fmt.Errorf("confirm subscription: %w", err)
	}

	if err := waitVisible(p.page.GetByTestId("subscription-success")); err != nil {
		return fmt.Errorf("subscription confirmation for %q never appeared: %w", activity, err)
	}
	return nil
}
