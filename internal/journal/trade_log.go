package journal

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"stratgen/internal/strategy"
)

type Record struct {
	RunID  string `json:"run_id"`
	Source string `json:"source,omitempty"`
	strategy.Trade
}

// TradeLog appends completed trades as newline-delimited JSON.
type TradeLog struct {
	runID  string
	source string
	closer io.Closer
	writer *bufio.Writer
	mu     sync.Mutex
}

func NewTradeLog(w io.Writer, runID, source string) *TradeLog {
	return &TradeLog{
		runID:  runID,
		source: source,
		writer: bufio.NewWriter(w),
	}
}

func OpenTradeLog(path, runID, source string) (*TradeLog, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log := NewTradeLog(file, runID, source)
	log.closer = file
	return log, nil
}

func (l *TradeLog) Append(trade strategy.Trade) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	payload, err := json.Marshal(Record{RunID: l.runID, Source: l.source, Trade: trade})
	if err != nil {
		return fmt.Errorf("marshal trade: %w", err)
	}
	if _, err := l.writer.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("write trade: %w", err)
	}
	return l.writer.Flush()
}

func (l *TradeLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.writer.Flush(); err != nil {
		if l.closer != nil {
			_ = l.closer.Close()
		}
		return err
	}
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func NewRunID() string {
	timestamp := time.Now().UTC().Format("20060102T150405")
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return timestamp
	}
	return timestamp + "-" + hex.EncodeToString(randomBytes)
}
