package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyhobbies/webapp-e2e/internal/authstate"
	"github.com/familyhobbies/webapp-e2e/internal/fixtures"
	"github.com/familyhobbies/webapp-e2e/internal/format"
	"github.com/familyhobbies/webapp-e2e/internal/pages"
)

func openJudoAttendance(t *testing.T) *pages.AttendancePage {
	t.Helper()
	env := RequireStack(t)
	page := Page(t, authstate.RoleAssociation)

	sheet := pages.NewAttendancePage(page, env.Config.BaseURL)
	require.NoError(t, sheet.Goto())
	require.NoError(t, sheet.SelectActivity(fixtures.LucasJudoSubscription.ActivityName))
	return sheet
}

func TestAttendance_MarkPresentThenAbsent(t *testing.T) {
	sheet := openJudoAttendance(t)

	require.NoError(t, sheet.MarkPresent(0))
	state, err := sheet.StateAt(0)
	require.NoError(t, err)
	assert.Equal(t, "present", state)

	require.NoError(t, sheet.MarkAbsent(0))
	state, err = sheet.StateAt(0)
	require.NoError(t, err)
	assert.Equal(t, "absent", state)
}

func TestAttendance_FullPresenceRendersPrimaryProgress(t *testing.T) {
	sheet := openJudoAttendance(t)

	count, err := sheet.RowCount()
	require.NoError(t, err)
	require.Greater(t, count, 0)

	for i := 0; i < count; i++ {
		require.NoError(t, sheet.MarkPresent(i))
	}

	rate, err := sheet.PresenceRate()
	require.NoError(t, err)
	assert.Equal(t, 100, rate)

	// 100% falls in the top bucket of the page's rate coloring, which
	// format.ProgressColor mirrors.
	color, err := sheet.ProgressColorAt(0)
	require.NoError(t, err)
	assert.Equal(t, format.ProgressColor(rate), color)
}
