package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// AssociationSearchPage drives /associations/search.
type AssociationSearchPage struct {
	page    playwright.Page
	baseURL string
}

func NewAssociationSearchPage(page playwright.Page, baseURL string) *AssociationSearchPage {
	return &AssociationSearchPage{page: page, baseURL: baseURL}
}

func (p *AssociationSearchPage) searchInput() playwright.Locator {
	return p.page.GetByTestId("search-input")
}
func (p *AssociationSearchPage) results() playwright.Locator {
	return p.page.GetByTestId("association-card")
}
func (p *AssociationSearchPage) emptyState() playwright.Locator {
	return p.page.GetByTestId("search-empty-state")
}
func (p *AssociationSearchPage) spinner() playwright.Locator {
	return p.page.GetByTestId("search-loading")
}

func (p *AssociationSearchPage) Goto() error {
	if err := navigate(p.page, p.baseURL, "/associations/search"); err != nil {
		return err
	}
	return p.ExpectLoaded()
}

func (p *AssociationSearchPage) ExpectLoaded() error {
	return waitVisible(p.searchInput())
}

// SearchByKeyword types the keyword, triggers the search, and waits for
// the result set to settle (spinner gone, results or empty state shown).
func (p *AssociationSearchPage) SearchByKeyword(keyword string) error {
	if err := p.searchInput().Fill(keyword); err != nil {
		return fmt.Errorf("fill search keyword: %w", err)
	}
	if err := p.page.GetByTestId("search-button").Click(); err != nil {
		return fmt.Errorf("trigger search: %w", err)
	}
	return p.waitSettled()
}

// FilterByCity applies the city filter and waits for the list refresh.
func (p *AssociationSearchPage) FilterByCity(city string) error {
	if _, err := p.page.GetByTestId("city-filter").SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{city},
	}); err != nil {
		return fmt.Errorf("select city %q: %w", city, err)
	}
	return p.waitSettled()
}

// FilterByCategory applies the category filter and waits for refresh.
func (p *AssociationSearchPage) FilterByCategory(category string) error {
	if _, err := p.page.GetByTestId("category-filter").SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{category},
	}); err != nil {
		return fmt.Errorf("select category %q: %w", category, err)
	}
	return p.waitSettled()
}

func (p *AssociationSearchPage) ResultCount() (int, error) {
	return p.results().Count()
}

// ResultNames returns the association names of the visible cards.
func (p *AssociationSearchPage) ResultNames() ([]string, error) {
	return innerTexts(p.results().GetByTestId("association-name"))
}

func (p *AssociationSearchPage) EmptyStateVisible() (bool, error) {
	return p.emptyState().IsVisible()
}

// OpenResult clicks the card at index and returns the detail page.
func (p *AssociationSearchPage) OpenResult(index int) (*AssociationDetailPage, error) {
	if err := p.results().Nth(index).Click(); err != nil {
		return nil, fmt.Errorf("open search result %d: %w", index, err)
	}
	detail := NewAssociationDetailPage(p.page, p.baseURL)
	if err := detail.ExpectLoaded(); err != nil {
		return nil, err
	}
	return detail, nil
}

// waitSettled waits for the loading spinner to disappear and then for
// either a result card or the empty state, whichever the query yields.
func (p *AssociationSearchPage) waitSettled() error {
	if err := waitHidden(p.spinner()); err != nil {
		return fmt.Errorf("search spinner never cleared: %w", err)
	}
	settled := p.results().First().Or(p.emptyState())
	if err := waitVisible(settled.First()); err != nil {
		return fmt.Errorf("search produced neither results nor empty state: %w", err)
	}
	return nil
}
