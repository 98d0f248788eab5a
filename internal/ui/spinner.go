package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"golang.org/x/term"
)

// frameInterval is how often the spinner cell is redrawn.
const frameInterval = 100 * time.Millisecond

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner renders a one-cell busy animation while a blocking call is
// outstanding. It carries no data; the only shared state with the
// caller is the cancellation signal.
type Spinner struct {
	out          io.Writer
	enabled      bool
	manageCursor bool
	isRunning    bool
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	mu           sync.RWMutex
}

// NewSpinner creates a spinner writing to out. Used directly in tests;
// production code goes through NewTerminalSpinner.
func NewSpinner(out io.Writer) *Spinner {
	return &Spinner{out: out, enabled: true}
}

// NewTerminalSpinner binds a spinner to stdout. On a non-interactive
// stdout the spinner is disabled outright; a missing terminal must
// never affect the call it decorates.
func NewTerminalSpinner() *Spinner {
	s := &Spinner{out: os.Stdout}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		s.enabled = true
		s.manageCursor = true
	}
	return s
}

// Start begins the animation. Calling Start on a running or disabled
// spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.isRunning {
		return
	}

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.isRunning = true
	if s.manageCursor {
		cursor.Hide()
	}

	s.wg.Add(1)
	go s.animate()
}

// Stop halts the animation, erases the spinner cell and restores the
// cursor. Safe to call repeatedly and on a spinner that never ran;
// callers defer it so the line is cleared on every outcome path.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cancel()
	s.wg.Wait()
	s.isRunning = false

	fmt.Fprint(s.out, "\r\033[K")
	if s.manageCursor {
		cursor.Show()
	}
}

func (s *Spinner) animate() {
	defer s.wg.Done()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			fmt.Fprintf(s.out, "\r%s", frames[frame%len(frames)])
			frame++
		}
	}
}

// IsRunning reports whether the animation goroutine is live.
func (s *Spinner) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}
