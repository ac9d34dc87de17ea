package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvSetsValues(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, ".env")
	content := "GEMINI_API_KEY=abc123\nOLLAMA_MODEL=llama3\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	unsetEnv(t, "GEMINI_API_KEY")
	unsetEnv(t, "OLLAMA_MODEL")
	defer unsetEnv(t, "GEMINI_API_KEY")
	defer unsetEnv(t, "OLLAMA_MODEL")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv error: %v", err)
	}

	if got := os.Getenv("GEMINI_API_KEY"); got != "abc123" {
		t.Fatalf("expected key to be set, got %q", got)
	}
	if got := os.Getenv("OLLAMA_MODEL"); got != "llama3" {
		t.Fatalf("expected model to be set, got %q", got)
	}
}

func TestLoadDotEnvDoesNotOverrideExisting(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, ".env")
	content := "GEMINI_API_KEY=from_file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	if err := os.Setenv("GEMINI_API_KEY", "from_env"); err != nil {
		t.Fatalf("set env: %v", err)
	}
	defer unsetEnv(t, "GEMINI_API_KEY")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv error: %v", err)
	}

	if got := os.Getenv("GEMINI_API_KEY"); got != "from_env" {
		t.Fatalf("expected env to win, got %q", got)
	}
}

func TestLoadDotEnvIfPresentIgnoresMissingFile(t *testing.T) {
	loadDotEnvIfPresent(filepath.Join(t.TempDir(), "nope.env"))
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset env: %v", err)
	}
}
