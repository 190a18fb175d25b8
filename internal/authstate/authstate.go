// Package authstate amortizes interactive logins across the suite: one
// real browser login per role, persisted as a Playwright storage-state
// file, then reused by every spec through a pre-seeded context.
//
// The state files are an explicit, versioned-by-run artifact: the
// teardown deletes the directory so a later run can never start from a
// stale session.
package authstate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/familyhobbies/webapp-e2e/internal/config"
	"github.com/familyhobbies/webapp-e2e/internal/fixtures"
	"github.com/familyhobbies/webapp-e2e/internal/obs"
	"github.com/familyhobbies/webapp-e2e/internal/pages"
)

// Role keys the session cache. Using an enum instead of building file
// paths from strings makes a role typo a compile error, not a silently
// missing session.
type Role string

const (
	RoleFamily      Role = "family"
	RoleAdmin       Role = "admin"
	RoleAssociation Role = "association"
)

var stateFiles = map[Role]string{
	RoleFamily:      "family-user.json",
	RoleAdmin:       "admin-user.json",
	RoleAssociation: "association-user.json",
}

// Roles lists every cached role.
func Roles() []Role {
	return []Role{RoleFamily, RoleAdmin, RoleAssociation}
}

// Credentials returns the seed user for a role.
func (r Role) Credentials() fixtures.TestUser {
	switch r {
	case RoleAdmin:
		return fixtures.AdminUser
	case RoleAssociation:
		return fixtures.AssociationUser
	default:
		return fixtures.FamilyUser
	}
}

// StatePath returns the storage-state file for a role under dir.
func StatePath(dir string, role Role) string {
	name, ok := stateFiles[role]
	if !ok {
		name = stateFiles[RoleFamily]
	}
	return filepath.Join(dir, name)
}

// Manager owns the storage-state directory. Specs only read through
// NewContext; writes happen in the once-per-run bootstrap.
type Manager struct {
	cfg *config.Config
	log *slog.Logger

	mu    sync.Mutex
	saved map[Role]bool
}

// NewManager builds a Manager over the configured state directory.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		cfg:   cfg,
		log:   obs.Pkg("authstate"),
		saved: make(map[Role]bool),
	}
}

// AuthenticateAndSave performs a real UI login in a throwaway context
// and persists the resulting cookies and local storage to statePath.
// No retries: a login failure here means the stack is broken, and the
// caller treats it as fatal for the run.
func (m *Manager) AuthenticateAndSave(browser playwright.Browser, email, password, statePath string) error {
	if err := os.MkdirAll(filepath.Dir(statePath), 0o755); err != nil {
		return fmt.Errorf("create auth-state directory: %w", err)
	}

	ctx, err := browser.NewContext()
	if err != nil {
		return fmt.Errorf("open login context: %w", err)
	}
	defer ctx.Close()
	ctx.SetDefaultTimeout(m.cfg.ActionTimeoutMS())
	ctx.SetDefaultNavigationTimeout(m.cfg.NavigationTimeoutMS())

	page, err := ctx.NewPage()
	if err != nil {
		return fmt.Errorf("open login page: %w", err)
	}

	login := pages.NewLoginPage(page, m.cfg.BaseURL)
	if err := login.Goto(); err != nil {
		return err
	}
	if err := login.Login(email, password); err != nil {
		return err
	}

	if _, err := ctx.StorageState(statePath); err != nil {
		return fmt.Errorf("persist storage state to %s: %w", statePath, err)
	}
	m.log.Info("saved auth state", "email", email, "path", statePath)
	return nil
}

// AuthenticateFamilyUser saves the family-role session.
func (m *Manager) AuthenticateFamilyUser(browser playwright.Browser) error {
	return m.authenticateRole(browser, RoleFamily)
}

// AuthenticateAdminUser saves the admin-role session.
func (m *Manager) AuthenticateAdminUser(browser playwright.Browser) error {
	return m.authenticateRole(browser, RoleAdmin)
}

// AuthenticateAssociationUser saves the association-role session.
func (m *Manager) AuthenticateAssociationUser(browser playwright.Browser) error {
	return m.authenticateRole(browser, RoleAssociation)
}

func (m *Manager) authenticateRole(browser playwright.Browser, role Role) error {
	user := role.Credentials()
	return m.AuthenticateAndSave(browser, user.Email, user.Password, StatePath(m.cfg.AuthStateDir, role))
}

// EnsureRole saves the role's session once per run; later calls are
// no-ops. Safe under parallel callers.
func (m *Manager) EnsureRole(browser playwright.Browser, role Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved[role] {
		return nil
	}
	if err := m.authenticateRole(browser, role); err != nil {
		return err
	}
	m.saved[role] = true
	return nil
}

// NewContext opens a browser context pre-seeded from the role's saved
// storage state, the fast path every spec uses instead of logging in.
func (m *Manager) NewContext(browser playwright.Browser, role Role) (playwright.BrowserContext, error) {
	statePath := StatePath(m.cfg.AuthStateDir, role)
	if _, err := os.Stat(statePath); err != nil {
		return nil, fmt.Errorf("no saved auth state for role %s (run EnsureRole first): %w", role, err)
	}

	ctx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		StorageStatePath: playwright.String(statePath),
	})
	if err != nil {
		return nil, fmt.Errorf("open context for role %s: %w", role, err)
	}
	ctx.SetDefaultTimeout(m.cfg.ActionTimeoutMS())
	ctx.SetDefaultNavigationTimeout(m.cfg.NavigationTimeoutMS())
	return ctx, nil
}

// Clean removes the whole state directory. Idempotent: a missing
// directory is success, and the run guard resets so a later bootstrap
// re-authenticates.
func (m *Manager) Clean() error {
	m.mu.Lock()
	m.saved = make(map[Role]bool)
	m.mu.Unlock()

	if err := os.RemoveAll(m.cfg.AuthStateDir); err != nil {
		return fmt.Errorf("remove auth-state directory: %w", err)
	}
	return nil
}
