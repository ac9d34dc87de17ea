package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stratgen/internal/journal"
	"stratgen/internal/md"
	"stratgen/internal/strategy"
)

const dateLayout = "2006-01-02"

type backtestOptions struct {
	csvPath string
	symbol  string
	start   string
	end     string
	out     string
}

func newBacktestCmd(a *app) *cobra.Command {
	var opts backtestOptions

	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Replay the built-in fallback strategy over a price series",
		Long: `Runs the same mean-reversion rules as the fallback run_strategy over a
price series and writes one JSON object per completed trade.

Prices come from a CSV file with a close column (--csv) or from Alpaca daily
bars (--symbol, needs APCA_API_KEY_ID and APCA_API_SECRET_KEY).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bars, source, err := a.loadBars(opts)
			if err != nil {
				return err
			}

			var strat strategy.Strategy = strategy.NewMeanReversion()
			trades := strat.Run(bars)

			runID := journal.NewRunID()
			var log *journal.TradeLog
			if opts.out != "" {
				log, err = journal.OpenTradeLog(opts.out, runID, source)
				if err != nil {
					return fmt.Errorf("open trade log: %w", err)
				}
			} else {
				log = journal.NewTradeLog(cmd.OutOrStdout(), runID, source)
			}

			total := decimal.Zero
			for _, trade := range trades {
				if err := log.Append(trade); err != nil {
					_ = log.Close()
					return err
				}
				total = total.Add(trade.PnL)
			}
			if err := log.Close(); err != nil {
				return fmt.Errorf("close trade log: %w", err)
			}

			a.logger.Info("backtest complete",
				zap.String("run_id", runID),
				zap.String("source", source),
				zap.Int("bars", len(bars)),
				zap.Int("trades", len(trades)),
				zap.String("pnl", total.String()))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.csvPath, "csv", "", "CSV file with a close column")
	flags.StringVar(&opts.symbol, "symbol", "", "symbol to fetch from Alpaca")
	flags.StringVar(&opts.start, "start", "", "first day to fetch, YYYY-MM-DD")
	flags.StringVar(&opts.end, "end", "", "last day to fetch, YYYY-MM-DD (default today)")
	flags.StringVar(&opts.out, "out", "", "append trades to this file instead of stdout")
	cmd.MarkFlagsMutuallyExclusive("csv", "symbol")
	cmd.MarkFlagsOneRequired("csv", "symbol")

	return cmd
}

func (a *app) loadBars(opts backtestOptions) ([]md.Bar, string, error) {
	if opts.csvPath != "" {
		file, err := os.Open(opts.csvPath)
		if err != nil {
			return nil, "", fmt.Errorf("open csv: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		bars, err := md.LoadCSV(file)
		if err != nil {
			return nil, "", err
		}
		return bars, opts.csvPath, nil
	}

	if a.cfg.AlpacaKey == "" || a.cfg.AlpacaSecret == "" {
		return nil, "", errors.New("APCA_API_KEY_ID and APCA_API_SECRET_KEY are required with --symbol")
	}
	if opts.start == "" {
		return nil, "", errors.New("--start is required with --symbol")
	}
	start, err := time.Parse(dateLayout, opts.start)
	if err != nil {
		return nil, "", fmt.Errorf("parse --start: %w", err)
	}
	end := time.Now().UTC()
	if opts.end != "" {
		end, err = time.Parse(dateLayout, opts.end)
		if err != nil {
			return nil, "", fmt.Errorf("parse --end: %w", err)
		}
	}
	if end.Before(start) {
		return nil, "", fmt.Errorf("--end %s is before --start %s", opts.end, opts.start)
	}

	a.logger.Debug("fetching bars", zap.String("symbol", opts.symbol), zap.Time("start", start), zap.Time("end", end))
	bars, err := md.NewAlpacaSource(a.cfg.AlpacaKey, a.cfg.AlpacaSecret).Bars(opts.symbol, start, end)
	if err != nil {
		return nil, "", err
	}
	return bars, "alpaca:" + opts.symbol, nil
}
