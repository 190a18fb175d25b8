package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// PaymentsPage drives /payments.
type PaymentsPage struct {
	page    playwright.Page
	baseURL string
}

func NewPaymentsPage(page playwright.Page, baseURL string) *PaymentsPage {
	return &PaymentsPage{page: page, baseURL: baseURL}
}

func (p *PaymentsPage) list() playwright.Locator { return p.page.GetByTestId("payment-list") }
func (p *PaymentsPage) rows() playwright.Locator { return p.page.GetByTestId("payment-row") }

func (p *PaymentsPage) Goto() error {
	if err := navigate(p.page, p.baseURL, "/payments"); err != nil {
		return err
	}
	return p.ExpectLoaded()
}

func (p *PaymentsPage) ExpectLoaded() error {
	return waitVisible(p.list())
}

func (p *PaymentsPage) PaymentCount() (int, error) {
	return p.rows().Count()
}

// AmountTextAt returns the displayed amount of the row at index, e.g.
// "150 €".
func (p *PaymentsPage) AmountTextAt(index int) (string, error) {
	text, err := p.rows().Nth(index).GetByTestId("payment-amount").InnerText()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// StatusAt returns the status chip text of the row at index.
func (p *PaymentsPage) StatusAt(index int) (string, error) {
	text, err := p.rows().Nth(index).GetByTestId("payment-status").InnerText()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// RowIndexForPayment locates the row carrying the payment id in its
// data attribute, so specs address seed rows by stable identifier.
func (p *PaymentsPage) RowIndexForPayment(paymentID string) (int, error) {
	count, err := p.rows().Count()
	if err != nil {
		return -1, err
	}
	for i := 0; i < count; i++ {
		id, err := p.rows().Nth(i).GetAttribute("data-payment-id")
		if err != nil {
			return -1, err
		}
		if id == paymentID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no payment row with id %s", paymentID)
}

// OpenPayment clicks the row at index and returns the detail page.
func (p *PaymentsPage) OpenPayment(index int) (*PaymentDetailPage, error) {
	if err := p.rows().Nth(index).Click(); err != nil {
		return nil, fmt.Errorf("open payment row %d: %w", index, err)
	}
	detail := NewPaymentDetailPage(p.page, p.baseURL)
	if err := detail.ExpectLoaded(); err != nil {
		return nil, err
	}
	return detail, nil
}

// WaitForStatus reloads the list until the row at index shows status.
// The payments list has no push channel; the page itself polls the
// gateway, so waiting on the chip is the honest completion signal.
func (p *PaymentsPage) WaitForStatus(index int, status string) error {
	chip := p.rows().Nth(index).GetByTestId("payment-status").Filter(playwright.LocatorFilterOptions{
		HasText: status,
	})
	if err := waitVisible(chip); err != nil {
		return fmt.Errorf("payment row %d never showed status %q: %w", index, status, err)
	}
	return nil
}

// PaymentDetailPage drives /payments/:id.
type PaymentDetailPage struct {
	page    playwright.Page
	baseURL string
}

func NewPaymentDetailPage(page playwright.Page, baseURL string) *PaymentDetailPage {
	return &PaymentDetailPage{page: page, baseURL: baseURL}
}

func (p *PaymentDetailPage) ExpectLoaded() error {
	return waitVisible(p.page.GetByTestId("payment-detail"))
}

// Status returns the detail page's status field.
func (p *PaymentDetailPage) Status() (string, error) {
	text, err := p.page.GetByTestId("payment-detail-status").InnerText()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Amount returns the detail page's displayed amount.
func (p *PaymentDetailPage) Amount() (string, error) {
	text, err := p.page.GetByTestId("payment-detail-amount").InnerText()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
