package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/moznion/go-optional"
	"gopkg.in/yaml.v3"
)

const DefaultModel = "models/gemini-pro-latest"

type Provider string

const (
	ProviderNone   Provider = "none"
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

type Config struct {
	Model           string
	InstructionPath string
	Timeout         time.Duration
	Temperature     optional.Option[float64]
	Verbose         bool
	GeminiAPIKey    string
	GeminiBaseURL   string
	OllamaModel     string
	OllamaBaseURL   string
	AlpacaKey       string
	AlpacaSecret    string
}

// Options carries command-line overrides. Zero values mean "not set".
type Options struct {
	Path    string
	EnvFile string
	Model   string
	Timeout time.Duration
	Verbose bool
}

type fileConfig struct {
	Model           string        `yaml:"model"`
	InstructionPath string        `yaml:"instruction_path"`
	Timeout         time.Duration `yaml:"timeout"`
	Temperature     *float64      `yaml:"temperature"`
	GeminiBaseURL   string        `yaml:"gemini_base_url"`
	OllamaModel     string        `yaml:"ollama_model"`
	OllamaBaseURL   string        `yaml:"ollama_base_url"`
}

// Load resolves the configuration from defaults, an optional YAML file, the
// environment and finally the command-line options, in increasing precedence.
func Load(opts Options) (Config, error) {
	cfg := Config{Model: DefaultModel}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	loadDotEnvIfPresent(envFile)

	path := opts.Path
	if path == "" {
		path = os.Getenv("STRATGEN_CONFIG")
	}
	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return cfg, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if opts.Model != "" {
		cfg.Model = opts.Model
	}
	if opts.Timeout != 0 {
		cfg.Timeout = opts.Timeout
	}
	cfg.Verbose = opts.Verbose

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Provider reports which remote provider the credentials select. A Gemini key
// always wins over a configured Ollama model.
func (c Config) Provider() Provider {
	if c.GeminiAPIKey != "" {
		return ProviderGemini
	}
	if c.OllamaModel != "" {
		return ProviderOllama
	}
	return ProviderNone
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if fc.Model != "" {
		cfg.Model = fc.Model
	}
	if fc.InstructionPath != "" {
		cfg.InstructionPath = fc.InstructionPath
	}
	if fc.Timeout != 0 {
		cfg.Timeout = fc.Timeout
	}
	if fc.Temperature != nil {
		cfg.Temperature = optional.Some(*fc.Temperature)
	}
	if fc.GeminiBaseURL != "" {
		cfg.GeminiBaseURL = fc.GeminiBaseURL
	}
	if fc.OllamaModel != "" {
		cfg.OllamaModel = fc.OllamaModel
	}
	if fc.OllamaBaseURL != "" {
		cfg.OllamaBaseURL = fc.OllamaBaseURL
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.AlpacaKey = os.Getenv("APCA_API_KEY_ID")
	cfg.AlpacaSecret = os.Getenv("APCA_API_SECRET_KEY")
	if v := os.Getenv("STRATGEN_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.OllamaModel = v
	}
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		cfg.OllamaBaseURL = v
	}
}

func loadDotEnvIfPresent(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = loadDotEnv(path)
}

// loadDotEnv never overrides variables that are already set.
func loadDotEnv(path string) error {
	return godotenv.Load(path)
}

func validate(cfg Config) error {
	if cfg.Model == "" {
		return errors.New("model must not be empty")
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %s", cfg.Timeout)
	}
	if cfg.Temperature.IsSome() && cfg.Temperature.Unwrap() < 0 {
		return fmt.Errorf("temperature must be >= 0, got %v", cfg.Temperature.Unwrap())
	}
	return nil
}
