package quizgen

import "github.com/abhisek/kanjiz/internal/textgen"

// Config controls the sampling parameters sent with every generation
// request.
type Config struct {
	// MaxNewTokens is the token budget for the completion.
	MaxNewTokens int

	// DoSample disables greedy decoding when true.
	DoSample bool

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// TopP is the nucleus sampling cutoff.
	TopP float64

	// TopK limits sampling to the K most likely tokens. 0 disables.
	TopK int

	// RepetitionPenalty discourages looping output. 1.0 disables.
	RepetitionPenalty float64

	// Seed fixes the backend sampler. -1 means unseeded.
	Seed int
}

// DefaultConfig returns the standard sampling parameters.
func DefaultConfig() Config {
	return Config{
		MaxNewTokens:      200,
		DoSample:          false,
		Temperature:       0.6,
		TopP:              0.9,
		TopK:              0,
		RepetitionPenalty: 1.1,
		Seed:              -1,
	}
}

// samplingParams converts the config into the provider parameter set.
func (c Config) samplingParams() textgen.SamplingParams {
	return textgen.SamplingParams{
		MaxNewTokens:      c.MaxNewTokens,
		DoSample:          c.DoSample,
		Temperature:       c.Temperature,
		TopP:              c.TopP,
		TopK:              c.TopK,
		RepetitionPenalty: c.RepetitionPenalty,
		Seed:              c.Seed,
	}
}
