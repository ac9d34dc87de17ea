package strategy

import (
	"github.com/shopspring/decimal"

	"stratgen/internal/md"
)

// MeanReversion is the Go rendition of the fallback run_strategy: buy when
// the close is more than 1% below its trailing mean, sell after MaxHoldBars
// bars or once the close is back above the mean.
type MeanReversion struct {
	Window         int
	EntryThreshold float64 // fractional deviation from the mean, e.g. -0.01
	MaxHoldBars    int
	Contracts      int
}

func NewMeanReversion() MeanReversion {
	return MeanReversion{
		Window:         10,
		EntryThreshold: -0.01,
		MaxHoldBars:    5,
		Contracts:      1,
	}
}

type openPosition struct {
	trade    Trade
	entryIdx int
}

// Run scans bars once, holding at most one position. A position still open
// after the last bar is dropped.
func (m MeanReversion) Run(bars []md.Bar) []Trade {
	trades := []Trade{}
	if len(bars) == 0 || m.Window <= 0 {
		return trades
	}

	buffer := md.NewRingBuffer(m.Window)
	var position *openPosition

	for i, bar := range bars {
		buffer.Add(bar.Close)
		mean := buffer.TrailingMean(m.Window)

		if position == nil {
			if mean.IsSome() {
				ma := mean.Unwrap()
				if (bar.Close-ma)/ma < m.EntryThreshold {
					position = &openPosition{
						trade: Trade{
							EntryDate:  bar.Label(),
							EntryPrice: decimal.NewFromFloat(bar.Close),
							Contracts:  m.Contracts,
						},
						entryIdx: i,
					}
				}
			}
			continue
		}

		held := i - position.entryIdx
		recovered := mean.IsSome() && bar.Close > mean.Unwrap()
		if held >= m.MaxHoldBars || recovered {
			trade := position.trade
			trade.ExitDate = bar.Label()
			trade.ExitPrice = decimal.NewFromFloat(bar.Close)
			trade.PnL = trade.ExitPrice.Sub(trade.EntryPrice)
			trade.Bars = held
			trades = append(trades, trade)
			position = nil
		}
	}

	return trades
}
