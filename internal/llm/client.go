package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/moznion/go-optional"
)

var ErrNoResponse = errors.New("provider returned no response")

type Client struct {
	provider Provider
}

func New(provider Provider) *Client {
	return &Client{provider: provider}
}

func (c *Client) Provider() Provider {
	return c.provider
}

// Complete sends a single user prompt to the provider. It makes exactly one
// attempt and converts a provider panic into an error.
func (c *Client) Complete(ctx context.Context, prompt string, opts ...CompletionOption) (resp *CompletionResponse, err error) {
	req := CompletionRequest{
		Messages: []Message{
			{Role: RoleUser, Content: prompt},
		},
	}

	for _, opt := range opts {
		opt(&req)
	}

	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = fmt.Errorf("%s provider panic: %v", c.provider.Name(), r)
		}
	}()

	resp, err = c.provider.Complete(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrNoResponse
	}
	return resp, nil
}

type CompletionOption func(*CompletionRequest)

func WithTemperature(temp float64) CompletionOption {
	return func(req *CompletionRequest) {
		req.Temperature = optional.Some(temp)
	}
}
