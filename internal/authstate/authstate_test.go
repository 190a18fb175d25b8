package authstate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyhobbies/webapp-e2e/internal/config"
	"github.com/familyhobbies/webapp-e2e/internal/fixtures"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		BaseURL:           "http://localhost:4200",
		APIURL:            "http://localhost:8080",
		AuthStateDir:      filepath.Join(t.TempDir(), "auth-states"),
		ActionTimeout:     5 * time.Second,
		NavigationTimeout: 10 * time.Second,
	}
}

func TestStatePath_RoleToFileMapping(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("dir", "family-user.json"), StatePath("dir", RoleFamily))
	assert.Equal(t, filepath.Join("dir", "admin-user.json"), StatePath("dir", RoleAdmin))
	assert.Equal(t, filepath.Join("dir", "association-user.json"), StatePath("dir", RoleAssociation))
}

func TestStatePath_UnknownRoleFallsBackToFamily(t *testing.T) {
	t.Parallel()

	// An unmapped role should never fabricate a new file name.
	assert.Equal(t, StatePath("dir", RoleFamily), StatePath("dir", Role("typo")))
}

func TestRoles_CoverEveryStateFile(t *testing.T) {
	t.Parallel()

	require.Len(t, Roles(), len(stateFiles))
	seen := map[string]bool{}
	for _, role := range Roles() {
		path := StatePath("dir", role)
		assert.Falsef(t, seen[path], "roles %v share state file %s", Roles(), path)
		seen[path] = true
	}
}

func TestCredentials_MatchFixtureRoles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fixtures.FamilyUser, RoleFamily.Credentials())
	assert.Equal(t, fixtures.AdminUser, RoleAdmin.Credentials())
	assert.Equal(t, fixtures.AssociationUser, RoleAssociation.Credentials())
}

func TestClean_Idempotent(t *testing.T) {
	cfg := testConfig(t)
	m := NewManager(cfg)

	// Directory absent: Clean must still succeed.
	require.NoError(t, m.Clean())

	// Create a fake stale state and clean it.
	require.NoError(t, os.MkdirAll(cfg.AuthStateDir, 0o755))
	stale := StatePath(cfg.AuthStateDir, RoleFamily)
	require.NoError(t, os.WriteFile(stale, []byte(`{"cookies":[]}`), 0o600))

	require.NoError(t, m.Clean())
	_, err := os.Stat(cfg.AuthStateDir)
	assert.True(t, os.IsNotExist(err), "state directory should be gone")

	require.NoError(t, m.Clean())
}

func TestNewContext_WithoutSavedStateFailsFast(t *testing.T) {
	cfg := testConfig(t)
	m := NewManager(cfg)

	_, err := m.NewContext(nil, RoleFamily)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no saved auth state")
	assert.Contains(t, err.Error(), string(RoleFamily))
}
