// Package cli implements the barragoon command-line interface.
//
// Commands are built with Cobra around an [App] that carries the loaded
// configuration and the position library. Dependencies are injected through
// the App so tests can run commands against fixed state without touching
// the user's config or library files.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"barragoon/internal/config"
	"barragoon/internal/library"
)

// App carries the dependencies shared by all commands.
type App struct {
	// Config is the loaded configuration.
	Config *config.Config

	// Library is the position library.
	Library *library.Library

	// Logger receives server and diagnostic output.
	Logger zerolog.Logger

	// In is the input stream for the play command. Defaults to os.Stdin.
	In io.Reader
}

// NewApp builds an App from discovered configuration.
func NewApp() (*App, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	return &App{
		Config:  cfg,
		Library: library.New(library.ResolvePath(cfg.Library.Path)),
		Logger:  zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
		In:      os.Stdin,
	}, nil
}

// NewRootCommand builds the root command with all subcommands attached.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "barragoon",
		Short:         "Barragoon game engine",
		Long:          "An engine for the Barragoon board game: move generation,\nposition display, a line protocol for GUIs and a small web server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newPlayCommand(app))
	rootCmd.AddCommand(newShowCommand(app))
	rootCmd.AddCommand(newMovesCommand(app))
	rootCmd.AddCommand(newServeCommand(app))
	rootCmd.AddCommand(newPositionsCommand(app))
	rootCmd.AddCommand(newVersionCommand(app))

	return rootCmd
}

// Execute is the entry point: it builds the app, runs the root command and
// returns the process exit code.
func Execute() int {
	app, err := NewApp()
	if err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	rootCmd := NewRootCommand(app)
	if err := rootCmd.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return code
		}
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	return 0
}
