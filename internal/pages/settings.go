package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// SettingsPage drives /settings, the RGPD (data-protection) surface:
// consent toggles, personal-data export, account deletion.
type SettingsPage struct {
	page    playwright.Page
	baseURL string
}

func NewSettingsPage(page playwright.Page, baseURL string) *SettingsPage {
	return &SettingsPage{page: page, baseURL: baseURL}
}

func (p *SettingsPage) panel() playwright.Locator { return p.page.GetByTestId("rgpd-settings") }

func (p *SettingsPage) consentToggle(name string) playwright.Locator {
	return p.page.GetByTestId("consent-" + name)
}

func (p *SettingsPage) Goto() error {
	if err := navigate(p.page, p.baseURL, "/settings"); err != nil {
		return err
	}
	return p.ExpectLoaded()
}

func (p *SettingsPage) ExpectLoaded() error {
	return waitVisible(p.panel())
}

// ConsentChecked reports the state of a consent toggle ("newsletter",
// "analytics", ...).
func (p *SettingsPage) ConsentChecked(name string) (bool, error) {
	state, err := p.consentToggle(name).GetAttribute("aria-checked")
	if err != nil {
		return false, fmt.Errorf("read consent %q: %w", name, err)
	}
	return state == "true", nil
}

// ToggleConsent flips a consent switch and waits for the saved
// indicator, the signal that the preference reached the backend.
func (p *SettingsPage) ToggleConsent(name string) error {
	before, err := p.ConsentChecked(name)
	if err != nil {
		return err
	}
	if err := p.consentToggle(name).Click(); err != nil {
		return fmt.Errorf("toggle consent %q: %w", name, err)
	}

	want := "true"
	if before {
		want = "false"
	}
	_, err = p.page.WaitForFunction(
		"([selector, want]) => document.querySelector(selector)?.getAttribute('aria-checked') === want",
		[]any{"[data-testid='consent-" + name + "']", want},
	)
	if err != nil {
		return fmt.Errorf("consent %q never flipped: %w", name, err)
	}
	return waitVisible(p.page.GetByTestId("settings-saved"))
}

// RequestDataExport triggers the RGPD export and returns the
// confirmation text once it appears.
func (p *SettingsPage) RequestDataExport() (string, error) {
	if err := p.page.GetByTestId("export-data-button").Click(); err != nil {
		return "", fmt.Errorf("request data export: %w", err)
	}
	confirmation := p.page.GetByTestId("export-confirmation")
	if err := waitVisible(confirmation); err != nil {
		return "", fmt.Errorf("export confirmation never appeared: %w", err)
	}
	text, err := confirmation.InnerText()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// OpenAccountDeletionDialog opens the irreversible-deletion dialog.
func (p *SettingsPage) OpenAccountDeletionDialog() error {
	if err := p.page.GetByTestId("delete-account-button").Click(); err != nil {
		return fmt.Errorf("open deletion dialog: %w", err)
	}
	return waitVisible(p.page.GetByTestId("delete-account-dialog"))
}

// CancelAccountDeletion dismisses the dialog without deleting.
func (p *SettingsPage) CancelAccountDeletion() error {
	if err := p.page.GetByTestId("cancel-button").Click(); err != nil {
		return fmt.Errorf("cancel deletion: %w", err)
	}
	return waitHidden(p.page.GetByTestId("delete-account-dialog"))
}

// ConfirmAccountDeletion types the confirmation phrase and confirms.
// The application logs the user out and lands on the login route.
func (p *SettingsPage) ConfirmAccountDeletion(phrase string) error {
	dialog := p.page.GetByTestId("delete-account-dialog")
	if err := dialog.GetByTestId("delete-confirmation-input").Fill(phrase); err != nil {
		return fmt.Errorf("fill deletion phrase: %w", err)
	}
	if err := dialog.GetByTestId("confirm-delete-button").Click(); err != nil {
		return fmt.Errorf("confirm deletion: %w", err)
	}
	if err := p.page.WaitForURL("**" + LoginRoute + "**"); err != nil {
		return fmt.Errorf("account deletion did not land on login: %w", err)
	}
	return nil
}
