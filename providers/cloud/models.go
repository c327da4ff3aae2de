package cloud

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kaptinlin/jsonrepair"

	"github.com/kanokid/Handy-cloud-models/internal/utils"
)

// FetchModels queries the provider's model-listing endpoint and returns the
// model IDs in the order the server sent them, without deduplication.
//
// Two response shapes are accepted: the OpenAI form
// {"data": [{"id": ...} | {"name": ...}, ...]} and a bare JSON array of
// strings. Entries matching neither field are skipped, and a structurally
// unknown top-level shape yields an empty slice rather than an error —
// model listing is an optional enhancement, so shape variance across
// third-party providers must not fail the call.
func (c *Client) FetchModels(ctx context.Context) ([]string, error) {
	url := c.descriptor.normalizedBaseURL() + "/models"
	slog.Debug("fetching models", "url", url)

	status, raw, err := utils.DoJSON(ctx, c.httpClient, http.MethodGet, url, nil, nil)
	if err != nil {
		return nil, &Error{
			Kind:     KindTransport,
			Provider: c.descriptor.ID,
			Message:  "failed to fetch models: " + err.Error(),
			Cause:    err,
		}
	}
	if status < 200 || status >= 300 {
		return nil, apiError(c.descriptor.ID, status, raw)
	}

	parsed, err := decodeLenient(raw)
	if err != nil {
		return nil, &Error{
			Kind:     KindParse,
			Provider: c.descriptor.ID,
			Message:  "failed to parse model list response: " + err.Error(),
			Raw:      raw,
			Cause:    err,
		}
	}
	return normalizeModelList(parsed), nil
}

// FetchModels is the one-shot form of [Client.FetchModels].
func FetchModels(ctx context.Context, d Descriptor, apiKey string) ([]string, error) {
	client, err := NewClient(d, apiKey)
	if err != nil {
		return nil, err
	}
	return client.FetchModels(ctx)
}

// decodeLenient decodes raw as generic JSON, running it through jsonrepair
// when strict decoding fails. Some self-hosted gateways emit technically
// invalid JSON (trailing commas, unquoted keys) that is still perfectly
// interpretable.
func decodeLenient(raw []byte) (any, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(raw))
		if repairErr != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
			return nil, err
		}
	}
	return parsed, nil
}

// normalizeModelList applies the accepted shapes in order, falling through
// to an empty list when none matches. Input order is preserved.
func normalizeModelList(parsed any) []string {
	models := make([]string, 0)

	switch v := parsed.(type) {
	case map[string]any:
		data, ok := v["data"].([]any)
		if !ok {
			return models
		}
		for _, entry := range data {
			obj, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			if id, ok := obj["id"].(string); ok {
				models = append(models, id)
			} else if name, ok := obj["name"].(string); ok {
				models = append(models, name)
			}
		}
	case []any:
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				models = append(models, s)
			}
		}
	}
	return models
}
