package md

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/moznion/go-optional"
	"github.com/samber/lo"
)

var ErrNoCloseColumn = errors.New("csv has no close column")

var timeColumns = []string{"date", "datetime", "time", "timestamp"}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// LoadCSV reads a headed CSV price series. A close column is required; the
// first date/datetime/time/timestamp column, if any, keys the rows. Without
// one, rows are keyed by their zero-based position.
func LoadCSV(r io.Reader) ([]Bar, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}

	names := df.Names()
	closeCol, ok := lo.Find(names, func(name string) bool {
		return normalizeColumn(name) == "close"
	})
	if !ok {
		return nil, ErrNoCloseColumn
	}
	timeCol, hasTime := lo.Find(names, func(name string) bool {
		return lo.Contains(timeColumns, normalizeColumn(name))
	})

	closes := df.Col(closeCol).Records()
	var keys []string
	if hasTime {
		keys = df.Col(timeCol).Records()
	}

	bars := make([]Bar, 0, len(closes))
	for i, raw := range closes {
		price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse close %q: %w", i+1, raw, err)
		}
		bar := Bar{Key: strconv.Itoa(i), Close: price, Time: optional.None[time.Time]()}
		if hasTime {
			bar.Key = strings.TrimSpace(keys[i])
			bar.Time = parseTime(bar.Key)
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func normalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func parseTime(value string) optional.Option[time.Time] {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return optional.Some(t)
		}
	}
	return optional.None[time.Time]()
}
