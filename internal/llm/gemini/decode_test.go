package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestDecodeTextPrefersResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText("###CODE_START###\nx = 1\n###CODE_END###", genai.RoleModel)},
		},
	}

	assert.Equal(t, "###CODE_START###\nx = 1\n###CODE_END###", decodeText(resp))
}

func TestCandidateTextSkipsThoughtsAndEmptyCandidates(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			nil,
			{Content: nil},
			{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "thinking...", Thought: true},
				{Text: "first "},
			}}},
			{Content: &genai.Content{Parts: []*genai.Part{
				nil,
				{Text: "second"},
			}}},
		},
	}

	assert.Equal(t, "first second", candidateText(resp))
}

func TestDecodeTextFallsBackToRawEncoding(t *testing.T) {
	resp := &genai.GenerateContentResponse{ModelVersion: "gemini-test-001"}

	text := decodeText(resp)
	assert.NotEmpty(t, text)
	assert.Contains(t, text, "gemini-test-001")
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "models/gemini-pro-latest", modelName(&genai.Model{Name: "models/gemini-pro-latest", DisplayName: "Gemini Pro"}))
	assert.Equal(t, "Gemini Pro", modelName(&genai.Model{DisplayName: "Gemini Pro"}))
	assert.Equal(t, "", modelName(nil))
}
