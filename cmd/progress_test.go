package cmd

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/khanhnv2901/pqcheck/internal/pqc"
)

// syncBuffer guards a bytes.Buffer shared with the printer goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestProgressPrinterLifecycle(t *testing.T) {
	var out syncBuffer
	printer := newProgressPrinter(&out, 0, "probe")
	if printer.total != 1 {
		t.Fatalf("expected total to be clamped to 1, got %d", printer.total)
	}

	printer.Start()
	printer.Increment(pqc.Green, false, 0.5)
	printer.Increment(pqc.Red, true, 1.0)
	printer.Stop()

	output := out.String()
	if !strings.Contains(output, "Progress: 2/2") {
		t.Fatalf("expected summary progress, got %q", output)
	}
	if !strings.Contains(output, "Green:1") || !strings.Contains(output, "Red:1") || !strings.Contains(output, "Err:1") {
		t.Fatalf("expected verdict counts in output, got %q", output)
	}
	if !strings.Contains(output, "Avg:0.75s") {
		t.Fatalf("expected average duration in output, got %q", output)
	}
}

func TestProgressPrinterStopWithoutStart(t *testing.T) {
	var out syncBuffer
	printer := newProgressPrinter(&out, 1, "lookup")
	printer.Increment(pqc.Yellow, false, 2)

	done := make(chan struct{})
	go func() {
		printer.Stop()
		printer.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked without Start")
	}
	if !strings.Contains(out.String(), "Progress: 1/1") {
		t.Fatalf("expected final progress line, got %q", out.String())
	}
}
