package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stratgen/internal/llm"
)

func newModelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models available to the configured credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := newProvider(a.cfg)
			if provider == nil {
				return errors.New("GEMINI_API_KEY is not set")
			}
			lister, ok := provider.(llm.ModelLister)
			if !ok {
				return fmt.Errorf("provider %s cannot list models", provider.Name())
			}

			names, err := lister.ListModels(cmd.Context())
			if err != nil {
				return err
			}
			a.logger.Debug("listed models", zap.Int("count", len(names)))
			for _, name := range names {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "MODEL: %s\n", name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
