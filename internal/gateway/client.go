// Package gateway is the authenticated REST client the specs use to
// talk to the API gateway directly, bypassing the browser. It covers
// setup, verification, cleanup and the HelloAsso webhook trapdoor.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/familyhobbies/webapp-e2e/internal/config"
	"github.com/familyhobbies/webapp-e2e/internal/errs"
	"github.com/familyhobbies/webapp-e2e/internal/fixtures"
	"github.com/familyhobbies/webapp-e2e/internal/obs"
)

// Test-marker headers the gateway uses to bypass HelloAsso signature
// verification. Server side, both must be present.
const (
	webhookSignatureHeader = "X-HelloAsso-Signature"
	webhookSignatureValue  = "e2e-test-signature"
	webhookTestHeader      = "X-E2E-Test"
)

// Session is the immutable credential returned by Authenticate. Passing
// it explicitly (instead of mutating client state) lets one Client
// serve parallel specs under different principals.
type Session struct {
	Email string
	token string
}

// Valid reports whether the session carries a token.
func (s Session) Valid() bool {
	return s.token != ""
}

// Client performs REST operations against the gateway.
type Client struct {
	baseURL     string
	frontendURL string
	httpClient  *http.Client
	log         *slog.Logger
}

// New builds a ready-to-use client. There is no separate init step: a
// Client that exists is initialized, and the zero Client is rejected by
// every call.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:     cfg.APIURL,
		frontendURL: cfg.BaseURL,
		httpClient:  &http.Client{Timeout: cfg.HTTPTimeout},
		log:         obs.Pkg("gateway"),
	}
}

func (c *Client) ready() error {
	if c == nil || c.httpClient == nil {
		return errs.New(errs.Uninitialized, "gateway client not initialized: use gateway.New")
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Authenticate exchanges credentials for a bearer session.
func (c *Client) Authenticate(ctx context.Context, email, password string) (Session, error) {
	if err := c.ready(); err != nil {
		return Session{}, err
	}

	status, body, err := c.do(ctx, http.MethodPost, "/api/auth/login", Session{}, loginRequest{
		Email:    email,
		Password: password,
	}, nil)
	if err != nil {
		return Session{}, err
	}
	if status < 200 || status > 299 {
		return Session{}, errs.Newf(errs.Unauthenticated,
			"login rejected for %s: status %d: %s", email, status, bodySnippet(body))
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Session{}, errs.Wrap(errs.GatewayHTTP, "login response is not JSON", err)
	}
	if resp.Token == "" {
		return Session{}, errs.Newf(errs.Unauthenticated, "login response for %s carried no token", email)
	}
	return Session{Email: email, token: resp.Token}, nil
}

// Get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, sess Session, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, sess, nil, out)
}

// Post performs an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, sess Session, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, sess, body, out)
}

// Delete performs an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, sess Session, path string) error {
	return c.call(ctx, http.MethodDelete, path, sess, nil, nil)
}

func (c *Client) call(ctx context.Context, method, path string, sess Session, body, out any) error {
	if err := c.ready(); err != nil {
		return err
	}
	if !sess.Valid() {
		return errs.Newf(errs.Unauthenticated, "%s %s requires an authenticated session", method, path)
	}

	status, respBody, err := c.do(ctx, method, path, sess, body, nil)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return errs.Newf(errs.GatewayHTTP, "%s %s returned %d: %s", method, path, status, bodySnippet(respBody))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errs.Wrap(errs.GatewayHTTP, fmt.Sprintf("%s %s: response is not JSON", method, path), err)
	}
	return nil
}

// do issues the request and returns raw status and body; callers own
// status interpretation. extraHeaders may be nil.
func (c *Client) do(ctx context.Context, method, path string, sess Session, body any, extraHeaders http.Header) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, errs.Wrap(errs.Internal, fmt.Sprintf("%s %s: encode request body", method, path), err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, errs.Wrap(errs.Internal, fmt.Sprintf("%s %s: build request", method, path), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "fr-FR")
	if sess.Valid() {
		req.Header.Set("Authorization", "Bearer "+sess.token)
	}
	for key, values := range extraHeaders {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	c.log.Debug("gateway request",
		"method", method,
		"path", path,
		"headers", obs.FormatHeadersForLog(req.Header),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errs.Wrap(errs.GatewayHTTP, fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errs.Wrap(errs.GatewayHTTP, fmt.Sprintf("%s %s: read response", method, path), err)
	}
	return resp.StatusCode, respBody, nil
}

// WebhookEvent is the HelloAsso-shaped body the gateway expects.
type WebhookEvent struct {
	EventID   string `json:"eventId"`
	EventType string `json:"eventType"`
	Data      any    `json:"data"`
}

// SimulateHelloAssoWebhook posts a payment-provider-shaped event with
// the test-marker headers, advancing payment state without a real
// provider round trip. No session: webhooks are unauthenticated by
// nature, the markers are the trapdoor.
func (c *Client) SimulateHelloAssoWebhook(ctx context.Context, eventType string, data any) error {
	if err := c.ready(); err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set(webhookSignatureHeader, webhookSignatureValue)
	headers.Set(webhookTestHeader, "true")

	event := WebhookEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		Data:      data,
	}
	status, body, err := c.do(ctx, http.MethodPost, "/api/webhooks/helloasso", Session{}, event, headers)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return errs.Newf(errs.GatewayHTTP,
			"POST /api/webhooks/helloasso returned %d: %s", status, bodySnippet(body))
	}
	return nil
}

type paymentResource struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// PaymentStatus reads back a payment's current status.
func (c *Client) PaymentStatus(ctx context.Context, sess Session, paymentID string) (string, error) {
	var payment paymentResource
	if err := c.Get(ctx, sess, "/api/payments/"+paymentID, &payment); err != nil {
		return "", err
	}
	return payment.Status, nil
}

// VerifyPaymentStatus asserts a payment's status field equals expected.
func (c *Client) VerifyPaymentStatus(ctx context.Context, sess Session, paymentID, expected string) error {
	got, err := c.PaymentStatus(ctx, sess, paymentID)
	if err != nil {
		return err
	}
	if got != expected {
		return errs.Newf(errs.GatewayHTTP, "payment %s status is %q, want %q", paymentID, got, expected)
	}
	return nil
}

// WaitForPaymentStatus polls the payment until its status matches or
// the deadline passes. This replaces fixed sleeps after webhook
// simulation: the gateway processes events asynchronously.
func (c *Client) WaitForPaymentStatus(ctx context.Context, sess Session, paymentID, expected string, deadline time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	last := ""
	for {
		got, err := c.PaymentStatus(ctx, sess, paymentID)
		if err == nil {
			if got == expected {
				return nil
			}
			last = got
		}

		select {
		case <-ctx.Done():
			return errs.Newf(errs.Timeout,
				"payment %s did not reach status %q within %s (last seen %q)",
				paymentID, expected, deadline, last)
		case <-ticker.C:
		}
	}
}

type unreadCountResponse struct {
	Count int `json:"count"`
}

// UnreadNotificationCount returns the unread-notification badge value.
func (c *Client) UnreadNotificationCount(ctx context.Context, sess Session) (int, error) {
	var resp unreadCountResponse
	if err := c.Get(ctx, sess, "/api/notifications/unread/count", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// ExportTicket is the gateway's acknowledgement of an RGPD data export.
type ExportTicket struct {
	ExportID string `json:"exportId"`
	Status   string `json:"status"`
}

// RequestDataExport triggers the RGPD personal-data export.
func (c *Client) RequestDataExport(ctx context.Context, sess Session) (ExportTicket, error) {
	var ticket ExportTicket
	if err := c.Post(ctx, sess, "/api/users/me/export", nil, &ticket); err != nil {
		return ExportTicket{}, err
	}
	return ticket, nil
}

// DeleteTestUser removes a user created during a spec, via the admin
// surface. It authenticates as the seed admin for just this call;
// because sessions are values, the caller's own session is untouched.
func (c *Client) DeleteTestUser(ctx context.Context, email string) error {
	admin := fixtures.AdminUser
	sess, err := c.Authenticate(ctx, admin.Email, admin.Password)
	if err != nil {
		return errs.Wrap(errs.Unauthenticated, "admin elevation for user cleanup failed", err)
	}
	return c.Delete(ctx, sess, "/api/admin/users/by-email/"+url.PathEscape(email))
}

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	c.httpClient.CloseIdleConnections()
}

func bodySnippet(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		// Back up to a rune boundary so accented gateway messages
		// are never cut mid-character.
		cut := 200
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "..."
	}
	if text == "" {
		return "(empty body)"
	}
	return text
}
