package md

import (
	"time"

	"github.com/moznion/go-optional"
)

type Bar struct {
	Time  optional.Option[time.Time]
	Key   string
	Close float64
}

// Label identifies the bar in trade records: RFC 3339 when the bar carries a
// time, otherwise its raw key.
func (b Bar) Label() string {
	if b.Time.IsSome() {
		return b.Time.Unwrap().Format(time.RFC3339)
	}
	return b.Key
}
