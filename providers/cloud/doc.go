// Package cloud is a provider-agnostic client layer for heterogeneous cloud
// AI HTTP APIs: OpenAI-compatible and Anthropic-compatible chat-completion
// endpoints, the model-listing endpoint, and OpenAI's audio-transcription
// endpoint. It normalizes the providers' divergent authentication schemes,
// request shapes, and response shapes into a small uniform surface.
//
// The three operations — [SendChatCompletion], [FetchModels] and
// [TranscribeCloud] — are stateless, independent request/response calls.
// Each constructs its own [Client] (or reuses one supplied by the caller)
// and performs exactly one HTTP round trip; they may be invoked concurrently
// without coordination. Cancellation and deadlines are imposed externally
// through the [context.Context] passed to each call.
//
// Failures are reported as [*Error] values with a stable [Kind]
// classification, and always carry the remote status code and the remote
// service's own error text when one was available.
package cloud
