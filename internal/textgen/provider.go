package textgen

import "context"

// Provider is the boundary to a text-generation backend. Consumers send a
// plain-text prompt and get back whatever raw text the model produced;
// no structure is guaranteed. Turning that text into something usable is
// the caller's job.
type Provider interface {
	// Complete sends the prompt and returns the raw completion.
	// Backends that cannot honor a sampling parameter ignore it.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// SamplingParams are the decoding knobs forwarded to the backend.
type SamplingParams struct {
	// MaxNewTokens caps the completion length.
	MaxNewTokens int

	// DoSample disables greedy decoding when true.
	DoSample bool

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64

	// TopP is the nucleus sampling cutoff.
	TopP float64

	// TopK limits sampling to the K most likely tokens. 0 disables.
	TopK int

	// RepetitionPenalty discourages the model from looping. 1.0 disables.
	RepetitionPenalty float64

	// Seed fixes the backend's sampler. -1 means unseeded.
	Seed int
}

// Request describes one completion call.
type Request struct {
	Prompt string
	Params SamplingParams
}

// Response holds the backend's output.
type Response struct {
	// Text is the raw completion. Untrusted, model-produced text.
	Text string

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string

	// Usage reports token consumption when the backend provides it.
	Usage Usage
}

// Usage tracks token consumption for a single request. Local backends
// that don't report usage leave this zeroed.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
