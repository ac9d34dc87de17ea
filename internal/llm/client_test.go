package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	response *CompletionResponse
	err      error
	panicVal any
	requests []CompletionRequest
}

func (m *mockProvider) Name() string {
	return "mock"
}

func (m *mockProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	m.requests = append(m.requests, req)
	if m.panicVal != nil {
		panic(m.panicVal)
	}
	return m.response, m.err
}

func TestClientComplete(t *testing.T) {
	mock := &mockProvider{
		response: &CompletionResponse{
			Message: Message{Role: RoleAssistant, Content: "Hello!"},
		},
	}

	client := New(mock)
	resp, err := client.Complete(context.Background(), "Hi there", WithTemperature(0.2))
	require.NoError(t, err)
	assert.Equal(t, "Hello!", resp.Message.Content)

	require.Len(t, mock.requests, 1)
	req := mock.requests[0]
	assert.Equal(t, []Message{{Role: RoleUser, Content: "Hi there"}}, req.Messages)
	require.True(t, req.Temperature.IsSome())
	assert.InDelta(t, 0.2, req.Temperature.Unwrap(), 1e-9)
}

func TestClientCompleteMakesSingleAttempt(t *testing.T) {
	mock := &mockProvider{err: errors.New("unavailable")}

	_, err := New(mock).Complete(context.Background(), "prompt")
	require.EqualError(t, err, "unavailable")
	assert.Len(t, mock.requests, 1)
}

func TestClientCompleteNilResponse(t *testing.T) {
	_, err := New(&mockProvider{}).Complete(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrNoResponse)
}

func TestClientCompleteRecoversPanic(t *testing.T) {
	mock := &mockProvider{panicVal: "nil map write"}

	resp, err := New(mock).Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "mock provider panic: nil map write")
}
