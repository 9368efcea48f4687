// Copyright 2024-2026 Aiku AI

package connector

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// logBuffer is a goroutine-safe writer for capturing log output.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// newTestConverter builds a converter with the default config, applying
// modify before validation.
func newTestConverter(t *testing.T, modify func(*Config)) *Converter {
	t.Helper()
	cfg := DefaultConfig()
	if modify != nil {
		modify(&cfg)
	}
	cv, err := NewConverter(cfg, nopLogger())
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	return cv
}
