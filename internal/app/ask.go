// Package app wires the ask pipeline: build the prompt, run the
// remote call behind a spinner, render the outcome.
package app

import (
	"context"
	"errors"

	"github.com/howto-cli/howto/internal/llm"
	"github.com/howto-cli/howto/internal/logging"
	"github.com/howto-cli/howto/internal/prompt"
	"github.com/howto-cli/howto/internal/ui"
)

// Ask runs one question through the pipeline and returns the process
// exit code: 0 for a real or degraded answer, 1 for transport and API
// failures. Credential validation happens before Ask is reached.
func Ask(ctx context.Context, provider llm.Provider, presenter *ui.Presenter, spinner *ui.Spinner, args []string) int {
	promptText := prompt.Build(args)

	spinner.Start()
	// The deferred Stop guarantees the line is cleared even if a
	// render path below panics; Stop is idempotent.
	defer spinner.Stop()

	reply, err := provider.Generate(ctx, promptText)

	// No final text may be written while the spinner still owns the
	// line.
	spinner.Stop()

	if err != nil {
		var apiErr *llm.APIError
		var transportErr *llm.TransportError
		switch {
		case errors.As(err, &apiErr):
			presenter.ShowAPIError(apiErr, promptText)
		case errors.As(err, &transportErr):
			presenter.ShowTransportError(transportErr)
		default:
			presenter.ShowError(err)
		}
		return 1
	}

	if reply.Degraded {
		logging.Get().Debug("service returned a textless success body")
		presenter.ShowDegraded(reply.Text)
		return 0
	}

	presenter.ShowAnswer(reply.Text)
	return 0
}
