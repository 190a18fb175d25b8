package obs

import (
	"net/http"
	"strings"
	"testing"
)

func TestIsSensitiveLogField(t *testing.T) {
	t.Parallel()

	sensitive := []string{
		"Authorization",
		"X-HelloAsso-Signature",
		"Set-Cookie",
		"x-api-token",
		"PASSWORD",
	}
	for _, key := range sensitive {
		if !IsSensitiveLogField(key) {
			t.Errorf("expected %q to be sensitive", key)
		}
	}

	plain := []string{"Content-Type", "Accept-Language", "X-E2E-Test"}
	for _, key := range plain {
		if IsSensitiveLogField(key) {
			t.Errorf("expected %q to be plain", key)
		}
	}
}

func TestFormatHeadersForLog_RedactsAndSorts(t *testing.T) {
	t.Parallel()

	headers := http.Header{}
	headers.Set("Authorization", "Bearer secret-token")
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept-Language", "fr-FR")

	got := FormatHeadersForLog(headers)
	if strings.Contains(got, "secret-token") {
		t.Fatalf("token leaked into log text: %s", got)
	}
	if !strings.Contains(got, "Authorization=[REDACTED]") {
		t.Fatalf("authorization not redacted: %s", got)
	}
	if !strings.Contains(got, "Accept-Language=fr-FR") {
		t.Fatalf("plain header missing: %s", got)
	}
	if got == "{}" {
		t.Fatal("expected non-empty header text")
	}

	if FormatHeadersForLog(nil) != "{}" {
		t.Fatal("nil headers should format as {}")
	}
}
