package strategy

import (
	"github.com/shopspring/decimal"

	"stratgen/internal/md"
)

// Trade is one completed round trip. JSON keys match the dict keys used by
// the generated Python strategy.
type Trade struct {
	EntryDate  string          `json:"Entry Date"`
	EntryPrice decimal.Decimal `json:"Entry Price"`
	Contracts  int             `json:"Contracts"`
	ExitDate   string          `json:"Exit Date"`
	ExitPrice  decimal.Decimal `json:"Exit Price"`
	PnL        decimal.Decimal `json:"PnL"`
	Bars       int             `json:"Bars"`
}

type Strategy interface {
	Run(bars []md.Bar) []Trade
}
