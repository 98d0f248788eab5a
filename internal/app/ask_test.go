package app

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/howto-cli/howto/internal/llm"
	"github.com/howto-cli/howto/internal/prompt"
	"github.com/howto-cli/howto/internal/ui"
)

type stubProvider struct {
	reply *llm.Reply
	err   error
	delay time.Duration

	mu        sync.Mutex
	gotPrompt string
}

func (s *stubProvider) Generate(ctx context.Context, p string) (*llm.Reply, error) {
	s.mu.Lock()
	s.gotPrompt = p
	s.mu.Unlock()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.reply, s.err
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// visible reduces a capture to what a terminal would actually show:
// each carriage return discards the pending segment.
func visible(captured string) string {
	segments := strings.Split(captured, "\r")
	var b strings.Builder
	for _, seg := range segments {
		seg = strings.TrimPrefix(seg, "\033[K")
		if strings.ContainsAny(seg, "\n") {
			b.WriteString(seg)
		}
	}
	return b.String()
}

func run(t *testing.T, provider llm.Provider, args []string) (code int, out, errOut *lockedBuffer) {
	t.Helper()
	out = &lockedBuffer{}
	errOut = &lockedBuffer{}
	presenter := ui.NewPresenterWithWriters(out, errOut)
	spinner := ui.NewSpinner(out)
	code = Ask(context.Background(), provider, presenter, spinner, args)
	return code, out, errOut
}

func TestAskSuccess(t *testing.T) {
	provider := &stubProvider{reply: &llm.Reply{Text: "➜ use `tar -xzf`"}}

	code, out, errOut := run(t, provider, []string{"extract", "a", "tarball"})

	if code != 0 {
		t.Errorf("success should exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "tar -xzf") {
		t.Errorf("answer should reach stdout, got %q", out.String())
	}
	if strings.Contains(out.String(), "`") {
		t.Errorf("backticks should be stripped, got %q", out.String())
	}
	if errOut.String() != "" {
		t.Errorf("success should not touch stderr, got %q", errOut.String())
	}

	provider.mu.Lock()
	got := provider.gotPrompt
	provider.mu.Unlock()
	if !strings.HasPrefix(got, prompt.Instruction) {
		t.Error("provider should receive the instruction-prefixed prompt")
	}
	if !strings.HasSuffix(got, "extract a tarball") {
		t.Errorf("provider should receive the joined question, got %q", got)
	}
}

func TestAskDegraded(t *testing.T) {
	provider := &stubProvider{reply: &llm.Reply{Text: llm.NoResponseText, Degraded: true}}

	// Degraded replies are deterministic: same input, same placeholder.
	for i := 0; i < 2; i++ {
		code, out, errOut := run(t, provider, []string{"anything"})

		if code != 0 {
			t.Errorf("degraded reply should exit 0, got %d", code)
		}
		if !strings.Contains(out.String(), llm.NoResponseText) {
			t.Errorf("placeholder should reach stdout, got %q", out.String())
		}
		if errOut.String() != "" {
			t.Errorf("degraded reply should not touch stderr, got %q", errOut.String())
		}
	}
}

func TestAskAPIError(t *testing.T) {
	provider := &stubProvider{err: &llm.APIError{Code: 403, Message: "bad key"}}

	code, out, errOut := run(t, provider, []string{"why"})

	if code != 1 {
		t.Errorf("API error should exit 1, got %d", code)
	}
	got := errOut.String()
	if !strings.Contains(got, "403") || !strings.Contains(got, "bad key") {
		t.Errorf("stderr should carry code and message, got %q", got)
	}
	if !strings.Contains(got, "why") {
		t.Errorf("stderr should echo the prompt, got %q", got)
	}
	if visible(out.String()) != "" {
		t.Errorf("no success text on stdout for an API error, got %q", visible(out.String()))
	}
}

func TestAskTransportError(t *testing.T) {
	provider := &stubProvider{err: &llm.TransportError{Cause: context.DeadlineExceeded}}

	code, out, errOut := run(t, provider, []string{"anything"})

	if code != 1 {
		t.Errorf("transport error should exit 1, got %d", code)
	}
	if !strings.Contains(errOut.String(), "request failed") {
		t.Errorf("stderr should carry the transport diagnostic, got %q", errOut.String())
	}
	if visible(out.String()) != "" {
		t.Errorf("no success text on stdout for a transport error, got %q", visible(out.String()))
	}
}

func TestAskSpinnerLeavesNoTrace(t *testing.T) {
	// Let the spinner draw a few frames, then check nothing of it
	// survives in the visible output.
	provider := &stubProvider{
		reply: &llm.Reply{Text: "➜ answer"},
		delay: 350 * time.Millisecond,
	}

	code, out, _ := run(t, provider, []string{"slow", "question"})

	if code != 0 {
		t.Fatalf("expected success, got exit %d", code)
	}

	shown := visible(out.String())
	for _, frame := range []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"} {
		if strings.Contains(shown, frame) {
			t.Errorf("spinner frame %q survived in visible output %q", frame, shown)
		}
	}
	if !strings.Contains(shown, "answer") {
		t.Errorf("answer should survive in visible output, got %q", shown)
	}
}
