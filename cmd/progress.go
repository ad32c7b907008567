package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/khanhnv2901/pqcheck/internal/pqc"
)

type progressPrinter struct {
	out      io.Writer
	name     string
	mu       sync.Mutex
	total    int
	verdicts map[pqc.Readiness]int
	failed   int
	duration float64
	updates  chan struct{}
	done     chan struct{}
	stopped  chan struct{}
	started  bool
	stopOnce sync.Once
}

func newProgressPrinter(out io.Writer, total int, name string) *progressPrinter {
	if total <= 0 {
		total = 1
	}
	return &progressPrinter{
		out:      out,
		total:    total,
		name:     name,
		verdicts: make(map[pqc.Readiness]int),
		updates:  make(chan struct{}, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (p *progressPrinter) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true
	go p.loop()
}

func (p *progressPrinter) Increment(verdict pqc.Readiness, failed bool, duration float64) {
	p.mu.Lock()
	p.verdicts[verdict]++
	if failed {
		p.failed++
	}
	p.duration += duration
	p.mu.Unlock()

	select {
	case p.updates <- struct{}{}:
	default:
	}
}

// Stop ends the refresh loop started by Start and prints the final line.
func (p *progressPrinter) Stop() {
	first := false
	p.stopOnce.Do(func() {
		first = true
		close(p.done)
	})
	if !first {
		return
	}
	p.mu.Lock()
	started := p.started
	p.started = true
	p.mu.Unlock()
	if started {
		<-p.stopped
	}
	fmt.Fprintf(p.out, "\r%s\r", strings.Repeat(" ", 80))
	p.print()
	fmt.Fprintln(p.out)
}

func (p *progressPrinter) loop() {
	defer close(p.stopped)
	ticker := time.NewTicker(300 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-p.updates:
			p.print()
		case <-ticker.C:
			p.print()
		case <-p.done:
			return
		}
	}
}

func (p *progressPrinter) print() {
	p.mu.Lock()
	green := p.verdicts[pqc.Green]
	yellow := p.verdicts[pqc.Yellow]
	red := p.verdicts[pqc.Red]
	failed := p.failed
	dur := p.duration
	completed := green + yellow + red
	if completed > p.total {
		p.total = completed
	}
	total := p.total
	p.mu.Unlock()

	percent := (float64(completed) / float64(total)) * 100
	avg := 0.0
	if completed > 0 {
		avg = dur / float64(completed)
	}

	fmt.Fprintf(p.out, "\r[%s] Progress: %d/%d (%.1f%%) Green:%d Yellow:%d Red:%d Err:%d Avg:%.2fs",
		p.name, completed, total, percent, green, yellow, red, failed, avg)
}
