package llm

import "context"

type Provider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// ModelLister is implemented by providers that can enumerate the models
// visible to the configured credential.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}
