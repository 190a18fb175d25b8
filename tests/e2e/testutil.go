// Package e2e drives the Family Hobbies Manager web app end to end:
// real browser, real gateway, seeded data. The suite environment is a
// process-wide singleton so Playwright and the per-role auth states
// are paid for once per run.
package e2e

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/familyhobbies/webapp-e2e/internal/a11y"
	"github.com/familyhobbies/webapp-e2e/internal/authstate"
	"github.com/familyhobbies/webapp-e2e/internal/config"
	"github.com/familyhobbies/webapp-e2e/internal/gateway"
	"github.com/familyhobbies/webapp-e2e/internal/obs"
)

var log = obs.Pkg("e2e")

// suiteEnv holds everything the specs share.
type suiteEnv struct {
	Config  *config.Config
	Gateway *gateway.Client
	Auth    *authstate.Manager
	Scanner *a11y.Scanner

	pw      *playwright.Playwright
	browser playwright.Browser

	// stackUp is set by TestMain after the health checks pass.
	stackUp   bool
	stackNote string
}

var (
	suiteOnce sync.Once
	suite     *suiteEnv
	suiteErr  error
)

// initSuite builds the shared environment. Errors here mean Playwright
// itself is unusable; stack reachability is TestMain's concern.
func initSuite() (*suiteEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, err
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	return &suiteEnv{
		Config:  cfg,
		Gateway: gateway.New(cfg),
		Auth:    authstate.NewManager(cfg),
		Scanner: a11y.NewScanner(cfg.AxeScriptURL),
		pw:      pw,
		browser: browser,
	}, nil
}

// Suite returns the shared environment, skipping the test when
// Playwright (or its browsers) are not installed on this machine.
func Suite(t *testing.T) *suiteEnv {
	t.Helper()
	suiteOnce.Do(func() { suite, suiteErr = initSuite() })
	if suiteErr != nil {
		t.Skip("browser environment unavailable:", suiteErr)
	}
	return suite
}

// RequireStack skips the test when the application stack was not
// reachable during global setup.
func RequireStack(t *testing.T) *suiteEnv {
	t.Helper()
	env := Suite(t)
	if !env.stackUp {
		t.Skip("application stack unreachable:", env.stackNote)
	}
	return env
}

// Page opens a page in a context pre-authenticated for role. The
// context (and every page in it) is closed when the test ends.
func Page(t *testing.T, role authstate.Role) playwright.Page {
	t.Helper()
	env := RequireStack(t)

	if err := env.Auth.EnsureRole(env.browser, role); err != nil {
		t.Fatalf("authenticate role %s: %v", role, err)
	}
	ctx, err := env.Auth.NewContext(env.browser, role)
	if err != nil {
		t.Fatalf("open context for role %s: %v", role, err)
	}
	t.Cleanup(func() { _ = ctx.Close() })

	page, err := ctx.NewPage()
	if err != nil {
		t.Fatalf("open page for role %s: %v", role, err)
	}
	return page
}

// PageAnon opens a page in a fresh, unauthenticated context.
func PageAnon(t *testing.T) playwright.Page {
	t.Helper()
	env := RequireStack(t)

	ctx, err := env.browser.NewContext()
	if err != nil {
		t.Fatalf("open anonymous context: %v", err)
	}
	ctx.SetDefaultTimeout(env.Config.ActionTimeoutMS())
	ctx.SetDefaultNavigationTimeout(env.Config.NavigationTimeoutMS())
	t.Cleanup(func() { _ = ctx.Close() })

	page, err := ctx.NewPage()
	if err != nil {
		t.Fatalf("open anonymous page: %v", err)
	}
	return page
}

// testContext returns a context bounded to the test's remaining life,
// capped at 30s for gateway calls.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func (e *suiteEnv) shutdown() {
	if e == nil {
		return
	}
	if err := e.Auth.Clean(); err != nil {
		log.Warn("auth-state cleanup failed", "error", err)
	}
	e.Gateway.Close()
	if e.browser != nil {
		_ = e.browser.Close()
	}
	if e.pw != nil {
		_ = e.pw.Stop()
	}
}
