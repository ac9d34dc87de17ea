package prompts

import (
	_ "embed"
	"io"
	"os"
	"strings"
)

//go:embed instruction.md
var defaultInstruction string

// DefaultInstruction is the suffix that pins the expected output shape: a
// run_strategy function wrapped in the artifact markers and nothing else.
func DefaultInstruction() string {
	return strings.TrimSpace(defaultInstruction)
}

func LoadTemplate(path string, fallback string) string {
	if path == "" {
		return fallback
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	return strings.TrimSpace(string(contents))
}

// Assemble joins the caller text and the instruction with a newline. The
// caller text is passed through untouched.
func Assemble(raw, instruction string) string {
	return raw + "\n" + instruction
}

// ReadInput drains r. A read failure yields an empty prompt along with the
// error so the caller can log it.
func ReadInput(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
