package ui

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/howto-cli/howto/internal/config"
	"github.com/howto-cli/howto/internal/llm"
)

// Presenter owns all final terminal output. Answers and the degraded
// placeholder go to out; every diagnostic goes to errOut.
type Presenter struct {
	out    io.Writer
	errOut io.Writer
}

// NewPresenter creates a presenter bound to the standard streams.
func NewPresenter() *Presenter {
	return NewPresenterWithWriters(os.Stdout, os.Stderr)
}

// NewPresenterWithWriters creates a presenter with explicit streams,
// used by tests to capture output.
func NewPresenterWithWriters(out, errOut io.Writer) *Presenter {
	return &Presenter{out: out, errOut: errOut}
}

// ShowAnswer prints a successful answer. Backtick emphasis is
// stripped: the target is a plain terminal line, not rendered
// markdown.
func (p *Presenter) ShowAnswer(text string) {
	pterm.DefaultBasicText.WithWriter(p.out).Println(StripMarkup(strings.TrimSpace(text)))
}

// ShowDegraded prints the textless-success placeholder. It rides the
// success stream because a degraded reply is not an error.
func (p *Presenter) ShowDegraded(text string) {
	pterm.DefaultBasicText.WithWriter(p.out).Println(text)
}

// ShowCredentialError reports a validation failure with its
// remediation hints.
func (p *Presenter) ShowCredentialError(verr *config.ValidationError) {
	pterm.Error.WithWriter(p.errOut).Printfln("%s: %s", verr.Field, verr.Message)
	if hint := verr.Hint(); hint != "" {
		pterm.Info.WithWriter(p.errOut).Println(hint)
	}
}

// ShowTransportError reports a network-level failure.
func (p *Presenter) ShowTransportError(terr *llm.TransportError) {
	pterm.Error.WithWriter(p.errOut).Printfln("request failed: %v", terr.Cause)
	pterm.Info.WithWriter(p.errOut).Println("check your network connection and try again")
}

// ShowAPIError reports a structured service error and echoes the
// prompt that triggered it, so the failing input is recoverable from
// the transcript.
func (p *Presenter) ShowAPIError(apiErr *llm.APIError, promptText string) {
	pterm.Error.WithWriter(p.errOut).Printfln("API error %d: %s", apiErr.Code, apiErr.Message)
	pterm.DefaultBasicText.WithWriter(p.errOut).Println("prompt was:\n" + promptText)
}

// ShowError reports any failure outside the known taxonomy.
func (p *Presenter) ShowError(err error) {
	pterm.Error.WithWriter(p.errOut).Println(err.Error())
}

// StripMarkup removes backtick emphasis from answer text.
func StripMarkup(s string) string {
	return strings.ReplaceAll(s, "`", "")
}
