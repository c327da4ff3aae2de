package cloud

import (
	"net/http"

	"golang.org/x/net/http/httpguts"
)

const (
	clientReferer   = "https://github.com/kanokid/Handy-cloud-models"
	clientUserAgent = "Handy/1.0 (+https://github.com/kanokid/Handy-cloud-models)"
	clientTitle     = "Handy"

	// anthropicVersion pins the wire format independently of the URL,
	// required on every Anthropic request.
	anthropicVersion = "2023-06-01"
)

// BuildHeaders produces the default header set for requests to the given
// provider: JSON content type, client identification (Referer, User-Agent,
// X-Title), and the auth header matching the provider's scheme.
//
// An empty apiKey attaches no auth header at all; the request goes out
// unauthenticated and the remote service is expected to reject it with an
// API-level error. A key containing bytes illegal in an HTTP header value
// fails with [KindInvalidHeader] before any request is built.
func BuildHeaders(d Descriptor, apiKey string) (http.Header, error) {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	h.Set("Referer", clientReferer)
	h.Set("User-Agent", clientUserAgent)
	h.Set("X-Title", clientTitle)

	if apiKey == "" {
		return h, nil
	}
	if !httpguts.ValidHeaderFieldValue(apiKey) {
		return nil, &Error{
			Kind:     KindInvalidHeader,
			Provider: d.ID,
			Message:  "invalid API key header value: key contains characters not allowed in an HTTP header",
		}
	}

	switch d.Scheme() {
	case AuthAnthropic:
		h.Set("x-api-key", apiKey)
		h.Set("anthropic-version", anthropicVersion)
	default:
		h.Set("Authorization", "Bearer "+apiKey)
	}
	return h, nil
}
