package generator

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"stratgen/internal/artifact"
	"stratgen/internal/llm"
	"stratgen/internal/llm/prompts"
)

// Generator turns a caller prompt into a marker-delimited code artifact. With
// no provider it only ever emits the fallback.
type Generator struct {
	client      *llm.Client
	instruction string
	timeout     time.Duration
	callOpts    []llm.CompletionOption
	logger      *zap.Logger
	errOut      io.Writer
}

type Option func(*Generator)

func WithInstruction(instruction string) Option {
	return func(g *Generator) {
		g.instruction = instruction
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(g *Generator) {
		g.timeout = timeout
	}
}

// WithTemperature sets the sampling temperature sent with the provider call.
// Without it the provider's own default applies.
func WithTemperature(temp float64) Option {
	return func(g *Generator) {
		g.callOpts = append(g.callOpts, llm.WithTemperature(temp))
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithErrorOutput sets where the GENAI ERROR diagnostic line goes.
func WithErrorOutput(w io.Writer) Option {
	return func(g *Generator) {
		g.errOut = w
	}
}

func New(provider llm.Provider, opts ...Option) *Generator {
	g := &Generator{
		instruction: prompts.DefaultInstruction(),
		logger:      zap.NewNop(),
		errOut:      io.Discard,
	}
	if provider != nil {
		g.client = llm.New(provider)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate never fails: any provider error degrades to the fallback, which
// depends on raw alone.
func (g *Generator) Generate(ctx context.Context, raw string) string {
	if g.client == nil {
		g.logger.Debug("no provider configured, using fallback")
		return artifact.Fallback(raw)
	}

	text, err := g.complete(ctx, prompts.Assemble(raw, g.instruction))
	if err != nil {
		g.logger.Error("provider call failed, using fallback",
			zap.String("provider", g.client.Provider().Name()),
			zap.Error(err))
		_, _ = fmt.Fprintf(g.errOut, "GENAI ERROR: %v\n", err)
		return artifact.Fallback(raw)
	}

	if !artifact.HasMarkers(text) {
		g.logger.Debug("provider output missing markers, wrapping")
	}
	return artifact.Normalize(text)
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.logger.Debug("calling provider",
		zap.String("provider", g.client.Provider().Name()),
		zap.Int("prompt_len", len(prompt)))

	resp, err := g.client.Complete(ctx, prompt, g.callOpts...)
	if err != nil {
		return "", err
	}
	return resp.Message.Content, nil
}
