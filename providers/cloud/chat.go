package cloud

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kanokid/Handy-cloud-models/internal/utils"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatChoiceMessage `json:"message"`
}

type chatChoiceMessage struct {
	Content *string `json:"content"`
}

// SendChatCompletion sends a single-turn prompt to the provider's
// OpenAI-compatible chat-completions endpoint and returns the first
// choice's content.
//
// The comma-ok result distinguishes "the API answered but supplied no
// content" (false, nil error) from failure: providers legitimately return
// empty choices, for example after safety filtering, and that is a
// successful outcome here.
func (c *Client) SendChatCompletion(ctx context.Context, model, prompt string) (string, bool, error) {
	url := c.descriptor.normalizedBaseURL() + "/chat/completions"
	slog.Debug("sending chat completion request", "url", url, "model", model)

	body := chatCompletionRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}

	status, raw, err := utils.DoJSON(ctx, c.httpClient, http.MethodPost, url, nil, body)
	if err != nil {
		return "", false, &Error{
			Kind:     KindTransport,
			Provider: c.descriptor.ID,
			Message:  "HTTP request failed: " + err.Error(),
			Cause:    err,
		}
	}
	if status < 200 || status >= 300 {
		return "", false, apiError(c.descriptor.ID, status, raw)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return "", false, &Error{
			Kind:     KindParse,
			Provider: c.descriptor.ID,
			Message:  "failed to parse API response: " + err.Error(),
			Raw:      raw,
			Cause:    err,
		}
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == nil {
		return "", false, nil
	}
	return *completion.Choices[0].Message.Content, true, nil
}

// SendChatCompletion is the one-shot form: it builds a throwaway [Client]
// for the descriptor and key, then performs the call.
func SendChatCompletion(ctx context.Context, d Descriptor, apiKey, model, prompt string) (string, bool, error) {
	client, err := NewClient(d, apiKey)
	if err != nil {
		return "", false, err
	}
	return client.SendChatCompletion(ctx, model, prompt)
}
