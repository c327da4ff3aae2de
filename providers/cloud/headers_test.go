package cloud

import (
	"testing"
)

func TestBuildHeadersCommonSet(t *testing.T) {
	h, err := BuildHeaders(Descriptor{ID: "openai", BaseURL: "https://api.openai.com/v1"}, "sk-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.Get("Content-Type") != "application/json" {
		t.Errorf("expected JSON content type, got %q", h.Get("Content-Type"))
	}
	if h.Get("Referer") == "" {
		t.Error("expected Referer header identifying the client")
	}
	if h.Get("User-Agent") == "" {
		t.Error("expected User-Agent header")
	}
	if h.Get("X-Title") == "" {
		t.Error("expected X-Title header")
	}
}

func TestBuildHeadersBearerScheme(t *testing.T) {
	h, err := BuildHeaders(Descriptor{ID: "openrouter", BaseURL: "https://openrouter.ai/api/v1"}, "sk-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := h.Get("Authorization"); got != "Bearer sk-test" {
		t.Errorf("expected 'Bearer sk-test', got %q", got)
	}
	if h.Get("x-api-key") != "" {
		t.Errorf("bearer providers must not get x-api-key, got %q", h.Get("x-api-key"))
	}
	if h.Get("anthropic-version") != "" {
		t.Error("bearer providers must not get anthropic-version")
	}
}

func TestBuildHeadersAnthropicScheme(t *testing.T) {
	h, err := BuildHeaders(Descriptor{ID: "anthropic", BaseURL: "https://api.anthropic.com/v1"}, "sk-ant")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := h.Get("x-api-key"); got != "sk-ant" {
		t.Errorf("expected x-api-key 'sk-ant', got %q", got)
	}
	if got := h.Get("anthropic-version"); got != "2023-06-01" {
		t.Errorf("expected anthropic-version '2023-06-01', got %q", got)
	}
	if h.Get("Authorization") != "" {
		t.Errorf("anthropic must not get a bearer Authorization header, got %q", h.Get("Authorization"))
	}
}

func TestBuildHeadersExplicitSchemeOverridesID(t *testing.T) {
	// A provider that is Anthropic-compatible but not named "anthropic".
	h, err := BuildHeaders(Descriptor{ID: "my-proxy", BaseURL: "https://proxy.local", Auth: AuthAnthropic}, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Get("x-api-key") != "key" {
		t.Error("explicit AuthAnthropic should win over the ID heuristic")
	}
	if h.Get("Authorization") != "" {
		t.Error("explicit AuthAnthropic must not add a bearer header")
	}
}

func TestBuildHeadersEmptyKeyAddsNoAuth(t *testing.T) {
	for _, id := range []string{"openai", "anthropic", "groq"} {
		h, err := BuildHeaders(Descriptor{ID: id, BaseURL: "https://example.com"}, "")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", id, err)
		}
		if h.Get("Authorization") != "" {
			t.Errorf("%s: empty key must not produce an Authorization header", id)
		}
		if h.Get("x-api-key") != "" {
			t.Errorf("%s: empty key must not produce an x-api-key header", id)
		}
	}
}

func TestBuildHeadersRejectsControlCharacters(t *testing.T) {
	_, err := BuildHeaders(Descriptor{ID: "openai", BaseURL: "https://example.com"}, "bad\nkey")
	if err == nil {
		t.Fatal("expected an error for a key with a control character")
	}
	e, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *cloud.Error, got %T", err)
	}
	if e.Kind != KindInvalidHeader {
		t.Errorf("expected KindInvalidHeader, got %q", e.Kind)
	}
}
