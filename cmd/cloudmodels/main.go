// Command cloudmodels is a small manual-verification CLI for the cloud
// client layer. It reads its configuration from the environment (a .env
// file is honored via godotenv):
//
//	CLOUD_PROVIDER  well-known provider id (default "openai")
//	CLOUD_BASE_URL  override for the provider base URL
//	CLOUD_API_KEY   API key
//	CLOUD_MODEL     model name
//
// Usage:
//
//	cloudmodels models
//	cloudmodels chat <prompt>
//	cloudmodels transcribe <file.wav>
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kanokid/Handy-cloud-models/internal/wavio"
	"github.com/kanokid/Handy-cloud-models/providers/cloud"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: cloudmodels <models|chat|transcribe> [args]")
		os.Exit(2)
	}

	descriptor := resolveDescriptor()
	apiKey := os.Getenv("CLOUD_API_KEY")
	model := os.Getenv("CLOUD_MODEL")
	ctx := context.Background()

	switch os.Args[1] {
	case "models":
		models, err := cloud.FetchModels(ctx, descriptor, apiKey)
		if err != nil {
			slog.Error("failed to fetch models", "provider", descriptor.ID, "error", err)
			os.Exit(1)
		}
		for _, m := range models {
			fmt.Println(m)
		}

	case "chat":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: cloudmodels chat <prompt>")
			os.Exit(2)
		}
		prompt := strings.Join(os.Args[2:], " ")
		content, ok, err := cloud.SendChatCompletion(ctx, descriptor, apiKey, model, prompt)
		if err != nil {
			slog.Error("chat completion failed", "provider", descriptor.ID, "error", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Println("(the API returned no content)")
			return
		}
		fmt.Println(content)

	case "transcribe":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: cloudmodels transcribe <file.wav>")
			os.Exit(2)
		}
		samples, err := loadWavSamples(os.Args[2])
		if err != nil {
			slog.Error("failed to load audio", "file", os.Args[2], "error", err)
			os.Exit(1)
		}
		text, err := cloud.TranscribeCloud(ctx, apiKey, descriptor.BaseURL, model, samples)
		if err != nil {
			slog.Error("transcription failed", "error", err)
			os.Exit(1)
		}
		fmt.Println(text)

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(2)
	}
}

func resolveDescriptor() cloud.Descriptor {
	id := os.Getenv("CLOUD_PROVIDER")
	if id == "" {
		id = "openai"
	}
	descriptor, ok := cloud.LookupProvider(id)
	if !ok {
		descriptor = cloud.Descriptor{ID: id}
	}
	if baseURL := os.Getenv("CLOUD_BASE_URL"); baseURL != "" {
		descriptor.BaseURL = baseURL
	}
	return descriptor
}

// loadWavSamples reads a mono 16-bit WAV file and converts it back to the
// float sample stream the transcription operation expects.
func loadWavSamples(path string) ([]float32, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info, err := wavio.Decode(b)
	if err != nil {
		return nil, err
	}
	if info.NumChannels != 1 {
		return nil, fmt.Errorf("expected mono audio, got %d channels", info.NumChannels)
	}
	if info.SampleRate != cloud.TranscriptionSampleRate {
		slog.Warn("unexpected sample rate, sending as-is", "rate", info.SampleRate)
	}
	return wavio.ToFloat32(info.Samples), nil
}
