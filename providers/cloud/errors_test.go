package cloud

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAPIErrorMessageCarriesStatusAndBody(t *testing.T) {
	err := apiError("openai", 429, []byte(`{"error":"slow down"}`))
	if err.Kind != KindAPI {
		t.Errorf("expected KindAPI, got %q", err.Kind)
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("message must include the status, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "slow down") {
		t.Errorf("message must include the body, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "openai") {
		t.Errorf("message should name the provider, got %q", err.Error())
	}
}

func TestAPIErrorUnreadableBodyPlaceholder(t *testing.T) {
	err := apiError("openai", 500, nil)
	if !strings.Contains(err.Error(), unreadableBody) {
		t.Errorf("expected placeholder for unreadable bodies, got %q", err.Error())
	}
}

func TestAPIErrorFlattensHTMLBody(t *testing.T) {
	body := []byte("<html><head><title>502</title></head><body><h1>Bad gateway</h1><p>The upstream is unavailable.</p></body></html>")
	err := apiError("openrouter", 502, body)
	if strings.Contains(err.Error(), "<body>") {
		t.Errorf("HTML markup should be flattened out of the message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Bad gateway") {
		t.Errorf("the page's text should survive flattening, got %q", err.Error())
	}
}

func TestAsErrorUnwrapsThroughWrapping(t *testing.T) {
	inner := apiError("openai", 401, []byte("no"))
	wrapped := fmt.Errorf("operation failed: %w", inner)

	e, ok := AsError(wrapped)
	if !ok {
		t.Fatal("expected AsError to find the *Error through wrapping")
	}
	if e.Status != 401 {
		t.Errorf("expected status 401, got %d", e.Status)
	}

	if status, ok := IsAPI(wrapped); !ok || status != 401 {
		t.Errorf("expected IsAPI to report 401, got %d %v", status, ok)
	}
}

func TestErrorUnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &Error{Kind: KindTransport, Message: "request failed", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestIsMissingCredential(t *testing.T) {
	if !IsMissingCredential(&Error{Kind: KindMissingCredential}) {
		t.Error("expected true for a missing-credential error")
	}
	if IsMissingCredential(errors.New("other")) {
		t.Error("expected false for unrelated errors")
	}
}
