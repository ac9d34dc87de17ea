package md

import (
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/moznion/go-optional"
)

type barsGetter interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

// AlpacaSource fetches historical daily bars from Alpaca market data.
type AlpacaSource struct {
	client barsGetter
}

func NewAlpacaSource(apiKey, apiSecret string) *AlpacaSource {
	return &AlpacaSource{
		client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
		}),
	}
}

func (s *AlpacaSource) Bars(symbol string, start, end time.Time) ([]Bar, error) {
	raw, err := s.client.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     start,
		End:       end,
	})
	if err != nil {
		return nil, fmt.Errorf("get bars for %s: %w", symbol, err)
	}

	bars := make([]Bar, 0, len(raw))
	for _, b := range raw {
		ts := b.Timestamp.UTC()
		bars = append(bars, Bar{
			Time:  optional.Some(ts),
			Key:   ts.Format(time.RFC3339),
			Close: b.Close,
		})
	}
	return bars, nil
}
