package llm

import "github.com/moznion/go-optional"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Messages    []Message
	Temperature optional.Option[float64]
}

type CompletionResponse struct {
	Message      Message
	FinishReason string
}
