package a11y

import (
	"encoding/json"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Landmarks reports the presence of the page's structural landmarks.
type Landmarks struct {
	Main   bool `json:"main"`
	Nav    bool `json:"nav"`
	Header bool `json:"header"`
	Footer bool `json:"footer"`
	// SkipLinkTarget is true when the main landmark carries the
	// id the skip-link anchor points at.
	SkipLinkTarget bool `json:"skipLinkTarget"`
}

// CheckLandmarks inspects the page for main/nav/header/footer landmarks
// by tag or ARIA role.
func CheckLandmarks(page playwright.Page) (*Landmarks, error) {
	raw, err := page.Evaluate(`() => {
		const has = sel => document.querySelector(sel) !== null;
		const main = document.querySelector("main, [role='main']");
		return {
			main: main !== null,
			nav: has("nav, [role='navigation']"),
			header: has("header, [role='banner']"),
			footer: has("footer, [role='contentinfo']"),
			skipLinkTarget: main !== null && main.id === 'main-content',
		};
	}`)
	if err != nil {
		return nil, fmt.Errorf("inspect landmarks: %w", err)
	}
	var landmarks Landmarks
	if err := decodeEval(raw, &landmarks); err != nil {
		return nil, err
	}
	return &landmarks, nil
}

// HeadingReport is the outcome of a heading-hierarchy inspection.
type HeadingReport struct {
	Levels []int `json:"levels"`
	HasH1  bool  `json:"hasH1"`
	Valid  bool  `json:"valid"`
}

// EvaluateHeadingLevels applies the hierarchy rule to heading levels in
// document order: valid iff an h1 exists and no heading is more than
// one level deeper than its predecessor. Decreases are always allowed.
func EvaluateHeadingLevels(levels []int) HeadingReport {
	report := HeadingReport{Levels: levels}
	for _, level := range levels {
		if level == 1 {
			report.HasH1 = true
			break
		}
	}

	valid := report.HasH1
	for i := 1; i < len(levels) && valid; i++ {
		if levels[i] > levels[i-1]+1 {
			valid = false
		}
	}
	report.Valid = valid && len(levels) > 0
	return report
}

// CheckHeadingHierarchy collects the page's heading levels and applies
// EvaluateHeadingLevels.
func CheckHeadingHierarchy(page playwright.Page) (HeadingReport, error) {
	raw, err := page.Evaluate(
		`() => Array.from(document.querySelectorAll('h1,h2,h3,h4,h5,h6')).map(h => Number(h.tagName[1]))`,
	)
	if err != nil {
		return HeadingReport{}, fmt.Errorf("collect headings: %w", err)
	}
	var levels []int
	if err := decodeEval(raw, &levels); err != nil {
		return HeadingReport{}, err
	}
	return EvaluateHeadingLevels(levels), nil
}

// CheckFocusVisible focuses the first match of selector and reports
// whether a visible focus indicator (non-zero outline or a box-shadow)
// applies. Returns false when focus did not land on the element.
func CheckFocusVisible(page playwright.Page, selector string) (bool, error) {
	raw, err := page.Evaluate(`(selector) => {
		const el = document.querySelector(selector);
		if (!el) return false;
		el.focus();
		if (document.activeElement !== el) return false;
		const style = window.getComputedStyle(el);
		return (style.outlineStyle !== 'none' && parseFloat(style.outlineWidth) > 0)
			|| (style.boxShadow !== 'none' && style.boxShadow !== '');
	}`, selector)
	if err != nil {
		return false, fmt.Errorf("check focus on %s: %w", selector, err)
	}
	visible, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("unexpected focus-check result %T", raw)
	}
	return visible, nil
}

// TabOrder presses Tab repeatedly and records a synthetic selector
// (tag + id + test-id) for each newly focused element. It stops when
// focus cycles back to the first recorded element, lands on the body
// (tabbed out of all content), or maxTabs is reached. Focus is reset
// to the document start first, so repeated calls on the same page
// return the same order.
func TabOrder(page playwright.Page, maxTabs int) ([]string, error) {
	if maxTabs <= 0 {
		maxTabs = 100
	}

	if _, err := page.Evaluate(`() => {
		if (document.activeElement && document.activeElement !== document.body) {
			document.activeElement.blur();
		}
	}`); err != nil {
		return nil, fmt.Errorf("reset focus: %w", err)
	}

	const describeActive = `() => {
		const el = document.activeElement;
		if (!el || el === document.body) return 'body';
		let desc = el.tagName.toLowerCase();
		if (el.id) desc += '#' + el.id;
		const testId = el.getAttribute('data-testid');
		if (testId) desc += "[data-testid='" + testId + "']";
		return desc;
	}`

	var order []string
	for i := 0; i < maxTabs; i++ {
		if err := page.Keyboard().Press("Tab"); err != nil {
			return nil, fmt.Errorf("press Tab: %w", err)
		}
		raw, err := page.Evaluate(describeActive)
		if err != nil {
			return nil, fmt.Errorf("describe focused element: %w", err)
		}
		desc, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected focus descriptor %T", raw)
		}
		if desc == "body" {
			break
		}
		if len(order) > 0 && desc == order[0] {
			break
		}
		order = append(order, desc)
	}
	return order, nil
}

// InteractiveStats counts interactive elements and how many of them are
// reachable by keyboard.
type InteractiveStats struct {
	Total     int `json:"total"`
	Focusable int `json:"focusable"`
}

// InteractiveElementStats counts elements matching a fixed interactive
// selector list, classifying each as focusable when its tab index is
// non-negative or it is not hidden.
func InteractiveElementStats(page playwright.Page) (*InteractiveStats, error) {
	raw, err := page.Evaluate(`() => {
		const selectors = "a[href], button, input, select, textarea, [tabindex], [role='button'], [role='link']";
		const elements = Array.from(document.querySelectorAll(selectors));
		const focusable = elements.filter(el => {
			const hidden = el.hasAttribute('hidden')
				|| el.getAttribute('aria-hidden') === 'true'
				|| window.getComputedStyle(el).display === 'none';
			return el.tabIndex >= 0 || !hidden;
		});
		return { total: elements.length, focusable: focusable.length };
	}`)
	if err != nil {
		return nil, fmt.Errorf("count interactive elements: %w", err)
	}
	var stats InteractiveStats
	if err := decodeEval(raw, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// decodeEval converts a loosely typed Evaluate result into out.
func decodeEval(raw, out any) error {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode evaluate result: %w", err)
	}
	if err := json.Unmarshal(encoded, out); err != nil {
		return fmt.Errorf("decode evaluate result: %w", err)
	}
	return nil
}
