package cloud

import (
	"net/http"

	"github.com/google/uuid"
)

// Client is an HTTP client bound to one provider descriptor, with the
// provider's default headers pre-attached to every request so call sites
// never repeat header logic. Build one with [NewClient].
//
// A Client holds no mutable state and is safe for concurrent use.
type Client struct {
	descriptor Descriptor
	headers    http.Header
	httpClient *http.Client
}

// headerTransport attaches default headers and a per-request X-Request-ID
// before delegating to the underlying RoundTripper. Headers already present
// on a request are left untouched.
type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	for key, values := range t.headers {
		if out.Header.Get(key) != "" {
			continue
		}
		for _, v := range values {
			out.Header.Add(key, v)
		}
	}
	if out.Header.Get("X-Request-ID") == "" {
		out.Header.Set("X-Request-ID", uuid.NewString())
	}
	return t.base.RoundTrip(out)
}

// NewClient composes [BuildHeaders] into a reusable client for the given
// provider. Construction failures (an unusable API key, a missing base
// transport) are fatal for the call and not retryable.
func NewClient(d Descriptor, apiKey string) (*Client, error) {
	headers, err := BuildHeaders(d, apiKey)
	if err != nil {
		return nil, err
	}
	base := http.DefaultTransport
	if base == nil {
		return nil, &Error{
			Kind:     KindClientBuild,
			Provider: d.ID,
			Message:  "failed to build HTTP client: no default transport available",
		}
	}
	return &Client{
		descriptor: d,
		headers:    headers,
		httpClient: &http.Client{Transport: &headerTransport{base: base, headers: headers}},
	}, nil
}

// WithHTTPClient rebinds the provider's default headers onto hc's transport
// and returns the client so calls can be chained. Useful for injecting
// custom timeouts or test doubles.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped := *hc
	wrapped.Transport = &headerTransport{base: base, headers: c.headers}
	c.httpClient = &wrapped
	return c
}

// Descriptor returns the provider descriptor this client was built for.
func (c *Client) Descriptor() Descriptor {
	return c.descriptor
}
