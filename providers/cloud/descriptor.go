package cloud

import "strings"

// AuthScheme selects how an API key is attached to outgoing requests.
// It is a closed set: every provider uses exactly one scheme, never both.
type AuthScheme int

const (
	// AuthDefault resolves the scheme from the descriptor ID: "anthropic"
	// maps to AuthAnthropic, everything else to AuthBearer. It exists so
	// descriptors loaded from plain {id, base_url} configuration keep
	// working without naming a scheme explicitly.
	AuthDefault AuthScheme = iota

	// AuthBearer sends "Authorization: Bearer <key>".
	AuthBearer

	// AuthAnthropic sends "x-api-key: <key>" plus the pinned
	// "anthropic-version" header. Anthropic does not use Bearer tokens.
	AuthAnthropic
)

// Descriptor identifies a chat-completion provider: a stable ID, the API
// base URL, and the auth scheme used for requests. Descriptors are supplied
// by configuration external to this package and are treated as immutable.
type Descriptor struct {
	ID      string     `json:"id"`
	BaseURL string     `json:"base_url"`
	Auth    AuthScheme `json:"-"`
}

// Scheme returns the effective auth scheme, resolving [AuthDefault] from
// the descriptor ID.
func (d Descriptor) Scheme() AuthScheme {
	if d.Auth != AuthDefault {
		return d.Auth
	}
	if d.ID == "anthropic" {
		return AuthAnthropic
	}
	return AuthBearer
}

// normalizedBaseURL strips any trailing slashes so endpoint paths can be
// appended without producing "//". Applied exactly once per operation.
func (d Descriptor) normalizedBaseURL() string {
	return strings.TrimRight(d.BaseURL, "/")
}

// DefaultProviders returns descriptors for well-known OpenAI-compatible
// endpoints (plus Anthropic). The slice is freshly allocated on every call;
// callers may modify their copy freely.
func DefaultProviders() []Descriptor {
	return []Descriptor{
		{ID: "openai", BaseURL: "https://api.openai.com/v1"},
		{ID: "anthropic", BaseURL: "https://api.anthropic.com/v1", Auth: AuthAnthropic},
		{ID: "openrouter", BaseURL: "https://openrouter.ai/api/v1"},
		{ID: "groq", BaseURL: "https://api.groq.com/openai/v1"},
		{ID: "mistral", BaseURL: "https://api.mistral.ai/v1"},
		{ID: "ollama", BaseURL: "http://localhost:11434/v1"},
	}
}

// LookupProvider finds a well-known descriptor by ID.
func LookupProvider(id string) (Descriptor, bool) {
	for _, d := range DefaultProviders() {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}
