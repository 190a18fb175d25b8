// Package pages implements the page-object model: one type per
// application route, translating user intent into locator operations so
// specs read as user stories instead of selector plumbing.
//
// Selector strategy, in order of preference: data-testid attributes,
// then ARIA role + accessible name. Raw CSS only where the application
// exposes neither. The application must keep these attributes stable
// for the harness to remain valid.
//
// Every page exposes Goto (navigate and wait for the defining element)
// and ExpectLoaded (the minimum visibility checks meaning "rendered").
// Methods that mutate state block until the resulting success element
// appears; none of them sleep.
package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

func waitVisible(loc playwright.Locator) error {
	return loc.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
}

func waitHidden(loc playwright.Locator) error {
	return loc.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateHidden,
	})
}

func navigate(page playwright.Page, baseURL, route string) error {
	_, err := page.Goto(baseURL+route, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		return fmt.Errorf("navigate to %s: %w", route, err)
	}
	return nil
}

// innerTexts collects the trimmed inner text of every match.
func innerTexts(loc playwright.Locator) ([]string, error) {
	raw, err := loc.AllInnerTexts()
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(raw))
	for _, t := range raw {
		texts = append(texts, strings.TrimSpace(t))
	}
	return texts, nil
}

// fillAndSubmit fills a sequence of (locator, value) pairs then clicks
// submit. Shared by the login and register forms.
func fillAndSubmit(fields []fieldValue, submit playwright.Locator) error {
	for _, f := range fields {
		if err := f.locator.Fill(f.value); err != nil {
			return fmt.Errorf("fill %s: %w", f.name, err)
		}
	}
	if err := submit.Click(); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	return nil
}

type fieldValue struct {
	name    string
	locator playwright.Locator
	value   string
}
