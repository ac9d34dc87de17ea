package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"google.golang.org/genai"
)

type textDecoder func(*genai.GenerateContentResponse) string

// decoders are tried in order; the first non-empty result wins.
var decoders = []textDecoder{
	responseText,
	candidateText,
	rawText,
}

func decodeText(resp *genai.GenerateContentResponse) string {
	for _, decode := range decoders {
		if text := decode(resp); text != "" {
			return text
		}
	}
	return ""
}

func responseText(resp *genai.GenerateContentResponse) string {
	return resp.Text()
}

// candidateText collects text from every candidate, not just the first one.
func candidateText(resp *genai.GenerateContentResponse) string {
	texts := lo.FlatMap(resp.Candidates, func(c *genai.Candidate, _ int) []string {
		if c == nil || c.Content == nil {
			return nil
		}
		return lo.FilterMap(c.Content.Parts, func(p *genai.Part, _ int) (string, bool) {
			if p == nil || p.Thought {
				return "", false
			}
			return p.Text, p.Text != ""
		})
	})
	return strings.Join(texts, "")
}

func rawText(resp *genai.GenerateContentResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf("%+v", *resp)
	}
	return string(data)
}
