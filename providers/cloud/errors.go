package cloud

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/kanokid/Handy-cloud-models/internal/utils"
)

// Kind is a stable error classification, independent of provider and
// message wording. Callers branch on Kind, never on message text.
type Kind string

const (
	// KindMissingCredential is a user-actionable configuration error:
	// an operation that requires an API key was called without one.
	// Detected before any network I/O.
	KindMissingCredential Kind = "missing_credential"

	// KindInvalidHeader means the API key contains bytes that are illegal
	// in an HTTP header value, so no request could be built from it.
	KindInvalidHeader Kind = "invalid_header"

	// KindClientBuild means the HTTP client itself could not be
	// constructed. Fatal for the call, not retryable.
	KindClientBuild Kind = "client_build"

	// KindTransport is a network-level failure (DNS, connect, timeout).
	// No HTTP status was received; safe for the caller to retry.
	KindTransport Kind = "transport"

	// KindAPI means the remote service rejected the request with a
	// non-success status. Status and the remote error text are carried.
	KindAPI Kind = "api"

	// KindParse means the remote returned a success status but a body
	// that does not match the expected shape.
	KindParse Kind = "parse"
)

// Error is the single error container for this package.
//
// Message always includes the remote status code and remote-supplied error
// text when available, so surfacing Error() to an end user is actionable
// without further unwrapping. Raw preserves the unmodified response body
// for API and parse failures.
type Error struct {
	Kind     Kind
	Provider string
	Status   int
	Message  string
	Raw      []byte
	Cause    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("cloud")
	if e.Provider != "" {
		b.WriteString(" ")
		b.WriteString(e.Provider)
	}
	b.WriteString(": ")
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		b.WriteString(string(e.Kind))
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// AsError unwraps err to this package's *Error, if it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsMissingCredential reports whether err is the pre-flight "no API key
// configured" failure, which a UI should resolve by prompting for a key
// rather than by retrying.
func IsMissingCredential(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindMissingCredential
}

// IsAPI reports whether err carries a remote HTTP rejection, and returns
// the status code when it does.
func IsAPI(err error) (int, bool) {
	e, ok := AsError(err)
	if !ok || e.Kind != KindAPI {
		return 0, false
	}
	return e.Status, true
}

const unreadableBody = "failed to read error response"

// apiError builds the KindAPI error for a non-success response. The body is
// included verbatim in the message (truncated for sanity); HTML error pages
// from gateways and proxies are flattened to readable text first.
func apiError(provider string, status int, body []byte) *Error {
	text := bodyText(body)
	return &Error{
		Kind:     KindAPI,
		Provider: provider,
		Status:   status,
		Message:  fmt.Sprintf("API request failed with status %d: %s", status, utils.TruncateStringDefault(text)),
		Raw:      body,
	}
}

// transcriptionAPIError prefers the OpenAI {"error": {"message": ...}}
// envelope when the body carries one, falling back to the raw status+body
// form otherwise.
func transcriptionAPIError(status int, body []byte) *Error {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return &Error{
			Kind:    KindAPI,
			Status:  status,
			Message: fmt.Sprintf("OpenAI API error (status %d): %s", status, envelope.Error.Message),
			Raw:     body,
		}
	}
	text := bodyText(body)
	return &Error{
		Kind:    KindAPI,
		Status:  status,
		Message: fmt.Sprintf("cloud transcription failed (status %d): %s", status, utils.TruncateStringDefault(text)),
		Raw:     body,
	}
}

// bodyText renders a response body for inclusion in an error message.
// A nil body means the read itself failed; a placeholder keeps the message
// informative. HTML bodies are converted to markdown and collapsed so a
// gateway error page doesn't flood the message with markup.
func bodyText(body []byte) string {
	if body == nil {
		return unreadableBody
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "(empty response body)"
	}
	if looksLikeHTML(text) {
		if markdown, err := htmltomarkdown.ConvertString(text); err == nil {
			if flat := strings.Join(strings.Fields(markdown), " "); flat != "" {
				return flat
			}
		}
	}
	return text
}

func looksLikeHTML(text string) bool {
	lower := strings.ToLower(text)
	return strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html") || strings.Contains(lower, "<body")
}
