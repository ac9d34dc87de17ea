package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"stratgen/internal/llm"
)

const DefaultBaseURL = "http://localhost:11434"

type Client struct {
	baseURL string
	model   string
	client  *http.Client
}

func New(baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

func (c *Client) Name() string {
	return "ollama:" + c.model
}

func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	messages := make([]Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, Message{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	chatReq := ChatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
	}
	if req.Temperature.IsSome() {
		chatReq.Options = map[string]any{
			"temperature": req.Temperature.Unwrap(),
		}
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama error %d: %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &llm.CompletionResponse{
		Message: llm.Message{
			Role:    llm.RoleAssistant,
			Content: chatResp.Message.Content,
		},
		FinishReason: chatResp.DoneReason,
	}, nil
}
