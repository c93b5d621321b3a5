package textgen

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// WebUIProvider targets a locally hosted text-generation-webui (or
// KoboldCpp-compatible) server. It is the only backend that honors the
// full sampling parameter set, including repetition penalty and seed.
type WebUIProvider struct {
	client *resty.Client
	model  string
}

// webuiRequest mirrors the server's /api/v1/generate body.
type webuiRequest struct {
	Prompt            string  `json:"prompt"`
	MaxNewTokens      int     `json:"max_new_tokens"`
	DoSample          bool    `json:"do_sample"`
	Temperature       float64 `json:"temperature"`
	TopP              float64 `json:"top_p"`
	TopK              int     `json:"top_k"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
	Seed              int     `json:"seed"`
}

type webuiResponse struct {
	Results []struct {
		Text string `json:"text"`
	} `json:"results"`
}

// NewWebUIProvider creates a provider for a local generation server.
func NewWebUIProvider(cfg WebUIConfig) (*WebUIProvider, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("webui base URL is required")
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json")

	model := cfg.Model
	if model == "" {
		model = "local"
	}

	return &WebUIProvider{client: client, model: model}, nil
}

func (p *WebUIProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	body := webuiRequest{
		Prompt:            req.Prompt,
		MaxNewTokens:      req.Params.MaxNewTokens,
		DoSample:          req.Params.DoSample,
		Temperature:       req.Params.Temperature,
		TopP:              req.Params.TopP,
		TopK:              req.Params.TopK,
		RepetitionPenalty: req.Params.RepetitionPenalty,
		Seed:              req.Params.Seed,
	}

	var out webuiResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post("/api/v1/generate")
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}

	if resp.IsError() {
		switch {
		case resp.StatusCode() == http.StatusTooManyRequests:
			return nil, &ErrRateLimit{Err: fmt.Errorf("webui returned %s", resp.Status())}
		default:
			return nil, &ErrProviderUnavailable{Err: fmt.Errorf("webui returned %s", resp.Status())}
		}
	}

	if len(out.Results) == 0 {
		return nil, &ErrEmptyCompletion{Err: fmt.Errorf("no results in webui response")}
	}

	return &Response{
		Text:       out.Results[0].Text,
		Model:      p.model,
		StopReason: "end",
	}, nil
}

func (p *WebUIProvider) ModelID() string {
	return p.model
}
