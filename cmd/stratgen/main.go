package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stratgen/internal/config"
	"stratgen/internal/generator"
	"stratgen/internal/llm/prompts"
)

type app struct {
	opts   config.Options
	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "stratgen",
		Short: "Generate a trading strategy code snippet from a prompt",
		Long: `stratgen reads a strategy idea from standard input and prints a Python
run_strategy function wrapped between ###CODE_START### and ###CODE_END###.

When GEMINI_API_KEY (or OLLAMA_MODEL) is set the code is requested from the
model; otherwise, or if the call fails, a built-in mean-reversion strategy is
printed instead.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.opts)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runGenerate,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.Path, "config", "", "path to a YAML config file (or STRATGEN_CONFIG)")
	flags.StringVar(&a.opts.EnvFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.StringVar(&a.opts.Model, "model", "", "model identifier (default "+config.DefaultModel+")")
	flags.DurationVar(&a.opts.Timeout, "timeout", 0, "bound on the provider call, 0 for none")
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newModelsCmd(a), newBacktestCmd(a))
	return root
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	raw, err := prompts.ReadInput(cmd.InOrStdin())
	if err != nil {
		a.logger.Debug("reading prompt failed, using empty prompt", zap.Error(err))
	}

	instruction := prompts.LoadTemplate(a.cfg.InstructionPath, prompts.DefaultInstruction())
	genOpts := []generator.Option{
		generator.WithInstruction(instruction),
		generator.WithTimeout(a.cfg.Timeout),
		generator.WithLogger(a.logger),
		generator.WithErrorOutput(cmd.ErrOrStderr()),
	}
	if a.cfg.Temperature.IsSome() {
		genOpts = append(genOpts, generator.WithTemperature(a.cfg.Temperature.Unwrap()))
	}
	gen := generator.New(newProvider(a.cfg), genOpts...)

	start := time.Now()
	out := gen.Generate(cmd.Context(), raw)
	a.logger.Debug("artifact generated",
		zap.String("provider", string(a.cfg.Provider())),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("bytes", len(out)))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
