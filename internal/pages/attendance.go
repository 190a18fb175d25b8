package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// AttendancePage drives /attendance, where an association marks members
// present or absent for a session.
type AttendancePage struct {
	page    playwright.Page
	baseURL string
}

func NewAttendancePage(page playwright.Page, baseURL string) *AttendancePage {
	return &AttendancePage{page: page, baseURL: baseURL}
}

func (p *AttendancePage) sheet() playwright.Locator { return p.page.GetByTestId("attendance-sheet") }
func (p *AttendancePage) rows() playwright.Locator  { return p.page.GetByTestId("attendance-row") }

func (p *AttendancePage) Goto() error {
	if err := navigate(p.page, p.baseURL, "/attendance"); err != nil {
		return err
	}
	return p.ExpectLoaded()
}

func (p *AttendancePage) ExpectLoaded() error {
	return waitVisible(p.sheet())
}

// SelectActivity switches the sheet to the named activity and waits for
// its rows to render.
func (p *AttendancePage) SelectActivity(name string) error {
	if _, err := p.page.GetByTestId("activity-select").SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{name},
	}); err != nil {
		return fmt.Errorf("select activity %q: %w", name, err)
	}
	return waitVisible(p.rows().First())
}

// MarkPresent marks the row at index present and waits for the row's
// state attribute to reflect it. The attribute flip is the application's
// own "mutation applied" signal, so no fixed delay is needed.
func (p *AttendancePage) MarkPresent(index int) error {
	return p.mark(index, "present")
}

// MarkAbsent marks the row at index absent.
func (p *AttendancePage) MarkAbsent(index int) error {
	return p.mark(index, "absent")
}

func (p *AttendancePage) mark(index int, state string) error {
	row := p.rows().Nth(index)
	if err := row.GetByTestId("mark-" + state + "-button").Click(); err != nil {
		return fmt.Errorf("mark row %d %s: %w", index, state, err)
	}

	_, err := p.page.WaitForFunction(
		"([selector, index, state]) => document.querySelectorAll(selector)[index]?.getAttribute('data-attendance-state') === state",
		[]any{"[data-testid='attendance-row']", index, state},
	)
	if err != nil {
		return fmt.Errorf("row %d never reported state %q: %w", index, state, err)
	}
	return nil
}

// RowCount returns the number of member rows on the sheet.
func (p *AttendancePage) RowCount() (int, error) {
	return p.rows().Count()
}

// StateAt returns the attendance state attribute of the row at index.
func (p *AttendancePage) StateAt(index int) (string, error) {
	state, err := p.rows().Nth(index).GetAttribute("data-attendance-state")
	if err != nil {
		return "", err
	}
	return state, nil
}

// PresenceRate reads the sheet's presence-rate summary as an integer
// percentage (the element renders e.g. "75 %").
func (p *AttendancePage) PresenceRate() (int, error) {
	text, err := p.page.GetByTestId("presence-rate").InnerText()
	if err != nil {
		return 0, err
	}
	digits := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%"))
	return strconv.Atoi(strings.TrimSpace(digits))
}

// ProgressColorAt returns the Material palette color of the row's
// attendance progress bar ("primary", "accent" or "warn").
func (p *AttendancePage) ProgressColorAt(index int) (string, error) {
	color, err := p.rows().Nth(index).GetByTestId("attendance-progress").GetAttribute("data-color")
	if err != nil {
		return "", err
	}
	return color, nil
}
