package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"stratgen/internal/llm"
)

type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *genai.Client
}

type Option func(*Client)

// WithBaseURL points the client at a different API endpoint, such as a proxy.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// New does not contact the service. The underlying genai client is built on
// first use so that construction failures surface from Complete.
func New(apiKey, model string, opts ...Option) *Client {
	c := &Client{
		apiKey: apiKey,
		model:  model,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Name() string {
	return "gemini:" + c.model
}

func (c *Client) ensureClient(ctx context.Context) (*genai.Client, error) {
	if c.client != nil {
		return c.client, nil
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	cfg := &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if c.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c.client = client
	return client, nil
}

func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	client, err := c.ensureClient(ctx)
	if err != nil {
		return nil, err
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		var role genai.Role = genai.RoleUser
		if m.Role == llm.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	var genCfg *genai.GenerateContentConfig
	if req.Temperature.IsSome() {
		genCfg = &genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(req.Temperature.Unwrap())),
		}
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, genCfg)
	if err != nil {
		return nil, fmt.Errorf("generate content with %s: %w", c.model, err)
	}
	if resp == nil {
		return nil, llm.ErrNoResponse
	}

	var finish string
	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
		finish = string(resp.Candidates[0].FinishReason)
	}

	return &llm.CompletionResponse{
		Message: llm.Message{
			Role:    llm.RoleAssistant,
			Content: decodeText(resp),
		},
		FinishReason: finish,
	}, nil
}

func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	client, err := c.ensureClient(ctx)
	if err != nil {
		return nil, err
	}
	var names []string
	for model, err := range client.Models.All(ctx) {
		if err != nil {
			return names, fmt.Errorf("list models: %w", err)
		}
		names = append(names, modelName(model))
	}
	return names, nil
}

func modelName(m *genai.Model) string {
	switch {
	case m == nil:
		return ""
	case m.Name != "":
		return m.Name
	case m.DisplayName != "":
		return m.DisplayName
	default:
		return fmt.Sprintf("%+v", *m)
	}
}
