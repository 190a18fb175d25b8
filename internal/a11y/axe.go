// Package a11y wraps the axe-core engine plus manual DOM probes into
// reusable accessibility checks that every route spec shares.
package a11y

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/familyhobbies/webapp-e2e/internal/errs"
	"github.com/familyhobbies/webapp-e2e/internal/obs"
)

// DefaultTags restrict scans to WCAG 2.1 level A and AA rules.
var DefaultTags = []string{"wcag2a", "wcag2aa", "wcag21a", "wcag21aa"}

// ScanOptions tune one axe run.
type ScanOptions struct {
	// Tags override DefaultTags when non-empty.
	Tags []string
	// DisableRules are axe rule ids excluded from the run.
	DisableRules []string
}

// Violation is one failed axe rule with its affected nodes.
type Violation struct {
	ID          string   `json:"id"`
	Impact      string   `json:"impact"`
	Description string   `json:"description"`
	HelpURL     string   `json:"helpUrl"`
	Nodes       []string `json:"nodes"`
}

// ScanResult summarizes one axe run.
type ScanResult struct {
	Violations []Violation `json:"violations"`
	Passes     int         `json:"passes"`
	Incomplete int         `json:"incomplete"`
}

// Scanner injects and runs axe-core in pages.
type Scanner struct {
	scriptURL string
	log       *slog.Logger
}

// NewScanner builds a scanner loading axe from scriptURL.
func NewScanner(scriptURL string) *Scanner {
	return &Scanner{scriptURL: scriptURL, log: obs.Pkg("a11y")}
}

const axeRunScript = `async (opts) => {
	const result = await axe.run(document, {
		runOnly: { type: 'tag', values: opts.tags },
		rules: Object.fromEntries(opts.disableRules.map(id => [id, { enabled: false }])),
	});
	return {
		violations: result.violations.map(v => ({
			id: v.id,
			impact: v.impact || 'minor',
			description: v.description,
			helpUrl: v.helpUrl,
			nodes: v.nodes.flatMap(n => n.target.map(String)),
		})),
		passes: result.passes.length,
		incomplete: result.incomplete.length,
	};
}`

// RunAxeScan injects axe (once per page) and runs it with the given
// options, defaulting to the WCAG 2.1 A/AA tag set.
func (s *Scanner) RunAxeScan(page playwright.Page, opts ScanOptions) (*ScanResult, error) {
	if err := s.ensureAxe(page); err != nil {
		return nil, err
	}

	tags := opts.Tags
	if len(tags) == 0 {
		tags = DefaultTags
	}
	disabled := opts.DisableRules
	if disabled == nil {
		disabled = []string{}
	}

	raw, err := page.Evaluate(axeRunScript, map[string]any{
		"tags":         tags,
		"disableRules": disabled,
	})
	if err != nil {
		return nil, fmt.Errorf("axe.run failed: %w", err)
	}

	// Round-trip through JSON: Evaluate returns loosely typed maps.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode axe result: %w", err)
	}
	var result ScanResult
	if err := json.Unmarshal(encoded, &result); err != nil {
		return nil, fmt.Errorf("decode axe result: %w", err)
	}
	return &result, nil
}

func (s *Scanner) ensureAxe(page playwright.Page) error {
	loaded, err := page.Evaluate(`() => typeof window.axe !== 'undefined'`)
	if err != nil {
		return fmt.Errorf("probe for axe: %w", err)
	}
	if isLoaded, ok := loaded.(bool); ok && isLoaded {
		return nil
	}
	if _, err := page.AddScriptTag(playwright.PageAddScriptTagOptions{
		URL: playwright.String(s.scriptURL),
	}); err != nil {
		return fmt.Errorf("inject axe from %s: %w", s.scriptURL, err)
	}
	return nil
}

// SplitBySeverity partitions violations into blocking (critical or
// serious) and advisory (everything else).
func SplitBySeverity(violations []Violation) (blocking, advisory []Violation) {
	for _, v := range violations {
		switch v.Impact {
		case "critical", "serious":
			blocking = append(blocking, v)
		default:
			advisory = append(advisory, v)
		}
	}
	return blocking, advisory
}

// CheckNoSeriousViolations scans the page and fails on any critical or
// serious violation, enumerating each rule and its affected selectors.
// Moderate and minor findings are logged only.
func (s *Scanner) CheckNoSeriousViolations(page playwright.Page, pageName string) error {
	result, err := s.RunAxeScan(page, ScanOptions{})
	if err != nil {
		return err
	}

	blocking, advisory := SplitBySeverity(result.Violations)
	for _, v := range advisory {
		s.log.Warn("accessibility advisory",
			"page", pageName,
			"rule", v.ID,
			"impact", v.Impact,
			"nodes", len(v.Nodes),
		)
	}
	if len(blocking) == 0 {
		return nil
	}

	var lines []string
	for _, v := range blocking {
		lines = append(lines, fmt.Sprintf("%s (%s): %s [%s]",
			v.ID, v.Impact, v.Description, strings.Join(v.Nodes, ", ")))
	}
	return errs.Newf(errs.A11yViolation, "%s has %d blocking accessibility violations:\n  %s",
		pageName, len(blocking), strings.Join(lines, "\n  "))
}
