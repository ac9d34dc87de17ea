package artifact

import (
	_ "embed"
	"strings"
	"text/template"
	"unicode/utf8"
)

// MaxPromptLen caps the echoed prompt, in characters.
const MaxPromptLen = 200

//go:embed fallback.py.tmpl
var fallbackSource string

var fallbackTemplate = template.Must(template.New("fallback").Parse(fallbackSource))

type fallbackData struct {
	Start  string
	End    string
	Prompt string
}

var newlines = strings.NewReplacer("\r", " ", "\n", " ")

// Sanitize trims the prompt, flattens it to one line and truncates it to
// MaxPromptLen characters.
func Sanitize(prompt string) string {
	s := strings.TrimSpace(prompt)
	s = newlines.Replace(s)
	if utf8.RuneCountInString(s) > MaxPromptLen {
		s = string([]rune(s)[:MaxPromptLen])
	}
	return s
}

// Fallback renders the deterministic artifact for prompt. The same prompt
// always yields the same bytes.
func Fallback(prompt string) string {
	var b strings.Builder
	err := fallbackTemplate.Execute(&b, fallbackData{
		Start:  StartMarker,
		End:    EndMarker,
		Prompt: stripMarkers(Sanitize(prompt)),
	})
	if err != nil {
		// Only string fields are rendered, so execution cannot fail.
		panic(err)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
