package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/kanokid/Handy-cloud-models/internal/utils"
	"github.com/kanokid/Handy-cloud-models/internal/wavio"
)

// TranscriptionSampleRate is the fixed sample rate of the mono audio
// stream accepted by [TranscribeCloud].
const TranscriptionSampleRate = 16000

// TranscribeCloud sends audio to OpenAI's transcription API and returns the
// transcribed text.
//
// The samples (one mono channel at [TranscriptionSampleRate]) are encoded
// into an in-memory 16-bit PCM WAV buffer and uploaded as a multipart form
// with a "file" part and a "model" field. This endpoint is not
// provider-polymorphic: auth is always the Bearer scheme. An empty apiKey
// fails with [KindMissingCredential] before any encoding or network work.
func TranscribeCloud(ctx context.Context, apiKey, baseURL, model string, samples []float32) (string, error) {
	if apiKey == "" {
		return "", &Error{
			Kind:    KindMissingCredential,
			Message: "OpenAI API key is missing. Please add it in the Advanced settings.",
		}
	}
	if !httpguts.ValidHeaderFieldValue(apiKey) {
		return "", &Error{
			Kind:    KindInvalidHeader,
			Message: "invalid API key header value: key contains characters not allowed in an HTTP header",
		}
	}

	url := strings.TrimRight(baseURL, "/") + "/audio/transcriptions"
	slog.Debug("sending cloud transcription request", "url", url, "samples", len(samples))

	wavBytes, err := wavio.Encode(samples, TranscriptionSampleRate)
	if err != nil {
		return "", fmt.Errorf("failed to encode audio: %w", err)
	}

	header := make(http.Header)
	header.Set("Authorization", "Bearer "+apiKey)

	status, raw, err := utils.DoMultipart(ctx, nil, url, header, func(form *multipart.Writer) error {
		part, err := form.CreatePart(wavPartHeader("file", "audio.wav"))
		if err != nil {
			return err
		}
		if _, err := part.Write(wavBytes); err != nil {
			return err
		}
		return form.WriteField("model", model)
	})
	if err != nil {
		return "", &Error{
			Kind:    KindTransport,
			Message: "cloud transcription request failed: " + err.Error(),
			Cause:   err,
		}
	}
	if status < 200 || status >= 300 {
		return "", transcriptionAPIError(status, raw)
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", &Error{
			Kind:    KindParse,
			Message: "failed to parse cloud transcription response: " + err.Error(),
			Raw:     raw,
			Cause:   err,
		}
	}
	return result.Text, nil
}

// wavPartHeader builds the MIME header for the file part. The stock
// CreateFormFile helper hardcodes application/octet-stream; the
// transcription endpoint wants the real audio/wav content type.
func wavPartHeader(field, filename string) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	h.Set("Content-Type", "audio/wav")
	return h
}
