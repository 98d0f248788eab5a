package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/howto-cli/howto/internal/app"
	"github.com/howto-cli/howto/internal/config"
	"github.com/howto-cli/howto/internal/llm/gemini"
	"github.com/howto-cli/howto/internal/logging"
	"github.com/howto-cli/howto/internal/ui"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var flagDebug bool

var rootCmd = &cobra.Command{
	Use:   "howto [question...]",
	Short: "Terse command-line answers from Gemini",
	Long: `howto sends the rest of the command line to Gemini and prints a
single concise, CLI-oriented answer.

Set ` + config.EnvAPIKey + ` in your environment (or a .env file) first.`,
	Example: `  howto list files sorted by size
  howto undo the last git commit`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logging.EnableDebug()
		}
		os.Exit(run(args))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the howto version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

// run executes one invocation and returns its exit code. The
// credential is validated before any client exists, so a bad key
// never reaches the network.
func run(args []string) int {
	presenter := ui.NewPresenter()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		if verr, ok := err.(*config.ValidationError); ok {
			presenter.ShowCredentialError(verr)
		} else {
			presenter.ShowError(err)
		}
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := gemini.NewClient(cfg)
	spinner := ui.NewTerminalSpinner()

	return app.Ask(ctx, provider, presenter, spinner, args)
}

func main() {
	// A .env next to the invocation is a convenience; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging on stderr")
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
