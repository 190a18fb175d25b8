package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyhobbies/webapp-e2e/internal/authstate"
	"github.com/familyhobbies/webapp-e2e/internal/fixtures"
	"github.com/familyhobbies/webapp-e2e/internal/pages"
)

func openSearchPage(t *testing.T) *pages.AssociationSearchPage {
	t.Helper()
	env := RequireStack(t)
	page := Page(t, authstate.RoleFamily)

	search := pages.NewAssociationSearchPage(page, env.Config.BaseURL)
	require.NoError(t, search.Goto())
	return search
}

func TestSearch_KeywordFindsSeededAssociation(t *testing.T) {
	search := openSearchPage(t)

	require.NoError(t, search.SearchByKeyword("Judo"))

	count, err := search.ResultCount()
	require.NoError(t, err)
	require.Greater(t, count, 0)

	names, err := search.ResultNames()
	require.NoError(t, err)
	assert.Contains(t, strings.Join(names, "\n"), fixtures.ClubSportifParis.Name)
}

func TestSearch_NoMatchShowsEmptyState(t *testing.T) {
	search := openSearchPage(t)

	require.NoError(t, search.SearchByKeyword(fixtures.NoResultsKeyword))

	count, err := search.ResultCount()
	require.NoError(t, err)
	assert.Zero(t, count)

	empty, err := search.EmptyStateVisible()
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestSearch_CityFilterNarrowsResults(t *testing.T) {
	search := openSearchPage(t)

	require.NoError(t, search.FilterByCity("Lyon"))

	names, err := search.ResultNames()
	require.NoError(t, err)
	joined := strings.Join(names, "\n")
	assert.Contains(t, joined, fixtures.EcoleMusiqueLyon.Name)
	assert.NotContains(t, joined, fixtures.ClubSportifParis.Name)
}

func TestSearch_CategoryFilterNarrowsResults(t *testing.T) {
	search := openSearchPage(t)

	require.NoError(t, search.FilterByCategory(fixtures.AtelierPeintureParis.Category))

	names, err := search.ResultNames()
	require.NoError(t, err)
	joined := strings.Join(names, "\n")
	assert.Contains(t, joined, fixtures.AtelierPeintureParis.Name)
	assert.NotContains(t, joined, fixtures.EcoleMusiqueLyon.Name)
}

func TestAssociationDetail_ShowsSeededActivities(t *testing.T) {
	search := openSearchPage(t)

	require.NoError(t, search.SearchByKeyword(fixtures.ClubSportifParis.Name))
	detail, err := search.OpenResult(0)
	require.NoError(t, err)

	name, err := detail.Name()
	require.NoError(t, err)
	assert.Equal(t, fixtures.ClubSportifParis.Name, name)

	activities, err := detail.ActivityNames()
	require.NoError(t, err)
	joined := strings.Join(activities, "\n")
	for _, activity := range fixtures.ClubSportifParis.Activities {
		assert.Contains(t, joined, activity)
	}
}

func TestAssociationDetail_RendersFormattedAgeAndPrice(t *testing.T) {
	search := openSearchPage(t)

	require.NoError(t, search.SearchByKeyword(fixtures.ClubSportifParis.Name))
	detail, err := search.OpenResult(0)
	require.NoError(t, err)

	activities, err := detail.ActivityNames()
	require.NoError(t, err)
	require.NotEmpty(t, activities)

	for i := range activities {
		ageText, err := detail.AgeRangeText(i)
		require.NoError(t, err)
		if ageText != "" {
			// The page renders bounds through the same rules as
			// format.AgeRange: "N - M ans", "À partir de N ans" or
			// "Jusqu'à M ans".
			assert.Regexp(t, `^(\d+ - \d+ ans|À partir de \d+ ans|Jusqu'à \d+ ans)$`, ageText)
		}

		priceText, err := detail.PriceText(i)
		require.NoError(t, err)
		// Same shape format.PriceText produces: "150 €" or "15,50 €".
		assert.Regexp(t, `^\d+(,\d{2})? €$`, priceText)
	}
}
