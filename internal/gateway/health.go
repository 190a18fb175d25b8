package gateway

import (
	"context"
	"net/http"

	"github.com/familyhobbies/webapp-e2e/internal/errs"
	"github.com/familyhobbies/webapp-e2e/internal/fixtures"
)

// Backend services with optional per-service health endpoints. These
// are probed best-effort; only the gateway aggregate check is a hard
// requirement.
var HealthCheckedServices = []string{"auth", "associations", "payments", "notifications"}

// CheckFrontend verifies the frontend origin serves the SPA shell.
func (c *Client) CheckFrontend(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.checkURL(ctx, c.frontendURL+"/")
}

// CheckGatewayHealth verifies the gateway aggregate health endpoint.
// A failure here means nothing behind it can work; the suite aborts.
func (c *Client) CheckGatewayHealth(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.checkURL(ctx, c.baseURL+"/actuator/health")
}

// CheckServiceHealth probes one backend service's health endpoint.
func (c *Client) CheckServiceHealth(ctx context.Context, service string) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.checkURL(ctx, c.baseURL+"/api/v1/"+service+"/health")
}

func (c *Client) checkURL(ctx context.Context, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errs.Wrap(errs.Internal, "build health request for "+target, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(errs.GatewayHTTP, target+" is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.Newf(errs.GatewayHTTP, "%s returned %d", target, resp.StatusCode)
	}
	return nil
}

// ProbeSeedLogin attempts a login with the seed family credentials as
// an indirect seed-data integrity check. A failure is reported but the
// run continues: the browser login specs will tell the full story.
func (c *Client) ProbeSeedLogin(ctx context.Context) error {
	user := fixtures.FamilyUser
	_, err := c.Authenticate(ctx, user.Email, user.Password)
	return err
}
