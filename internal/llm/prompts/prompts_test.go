package prompts

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestDefaultInstruction(t *testing.T) {
	got := DefaultInstruction()
	want := "Please generate a Python trading strategy. The code must define a function named " +
		"run_strategy(historical_data: pd.DataFrame) -> list. Wrap the code between " +
		"###CODE_START### and ###CODE_END###. Only output the code block and nothing else."
	if got != want {
		t.Fatalf("unexpected instruction:\n%q", got)
	}
}

func TestAssemble(t *testing.T) {
	out := Assemble("buy the dip", DefaultInstruction())
	if !strings.HasPrefix(out, "buy the dip\nPlease generate") {
		t.Fatalf("expected raw text then newline then instruction, got %q", out)
	}

	out = Assemble("", "suffix")
	if out != "\nsuffix" {
		t.Fatalf("expected empty caller text to be kept, got %q", out)
	}

	out = Assemble("  keep\n  spacing  ", "suffix")
	if out != "  keep\n  spacing  \nsuffix" {
		t.Fatalf("expected caller text to pass through untouched, got %q", out)
	}
}

func TestLoadTemplate_UsesFileOverride(t *testing.T) {
	tempFile, err := os.CreateTemp("", "instruction-*.md")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	defer func() {
		_ = os.Remove(tempFile.Name())
	}()

	if _, err := tempFile.WriteString("custom instruction\n"); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	if err := tempFile.Close(); err != nil {
		t.Fatalf("close temp: %v", err)
	}

	out := LoadTemplate(tempFile.Name(), "fallback")
	if out != "custom instruction" {
		t.Fatalf("expected custom instruction, got %q", out)
	}
}

func TestLoadTemplate_MissingFileFallsBack(t *testing.T) {
	if out := LoadTemplate("/nonexistent/instruction.md", "fallback"); out != "fallback" {
		t.Fatalf("expected fallback, got %q", out)
	}
	if out := LoadTemplate("", "fallback"); out != "fallback" {
		t.Fatalf("expected fallback for empty path, got %q", out)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin closed")
}

func TestReadInput(t *testing.T) {
	got, err := ReadInput(strings.NewReader("line one\nline two\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "line one\nline two\n" {
		t.Fatalf("unexpected input %q", got)
	}

	got, err = ReadInput(failingReader{})
	if err == nil {
		t.Fatalf("expected read error to be reported")
	}
	if got != "" {
		t.Fatalf("expected empty prompt on read failure, got %q", got)
	}

	got, err = ReadInput(nil)
	if err != nil || got != "" {
		t.Fatalf("expected empty prompt for nil reader, got %q, %v", got, err)
	}
}
