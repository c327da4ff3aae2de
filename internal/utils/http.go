package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
)

// DoJSON performs a single HTTP round trip with an optional JSON body and
// returns the response status code together with the raw response body.
//
// Error-handling strategy:
//   - Request construction, marshalling and network failures return a
//     non-nil error with status 0; no response was received.
//   - A non-2xx status is NOT an error here. The caller owns API-error
//     classification and needs both the status and the body for it.
//   - A failure while reading the body of a received response is logged and
//     reported as a nil body with the status intact, so the caller can
//     still classify the outcome by status and substitute a placeholder.
//
// The response body is always closed; close errors are logged without
// overriding the primary result.
func DoJSON(ctx context.Context, client *http.Client, method, url string, header http.Header, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("error marshaling request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("error creating request: %w", err)
	}
	mergeHeader(req.Header, header)

	return send(client, req, url)
}

// DoMultipart posts a multipart form to url. The build callback writes the
// form's parts; the form is fully assembled in memory before the request is
// sent so Content-Length is known. Response semantics match [DoJSON].
func DoMultipart(ctx context.Context, client *http.Client, url string, header http.Header, build func(w *multipart.Writer) error) (int, []byte, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := build(form); err != nil {
		return 0, nil, fmt.Errorf("error building multipart form: %w", err)
	}
	if err := form.Close(); err != nil {
		return 0, nil, fmt.Errorf("error finalizing multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return 0, nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	mergeHeader(req.Header, header)

	return send(client, req, url)
}

func send(client *http.Client, req *http.Request, url string) (int, []byte, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer func(body io.ReadCloser) {
		if closeErr := body.Close(); closeErr != nil {
			// Log the close error, but don't override the main result.
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", url)
		}
	}(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		slog.Warn("failed to read response body", "error", err.Error(), "url", url, "status", res.StatusCode)
		return res.StatusCode, nil, nil
	}
	return res.StatusCode, respBody, nil
}

func mergeHeader(dst, src http.Header) {
	for key, values := range src {
		dst.Del(key)
		for _, v := range values {
			dst.Add(key, v)
		}
	}
}
