package cli

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"barragoon/internal/config"
	"barragoon/internal/library"
)

// newTestApp builds an App with default config, a library in a temp
// directory and the given input for the play command.
func newTestApp(t *testing.T, input string) *App {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Output.Style = "ascii"
	cfg.Output.Color = false

	return &App{
		Config:  cfg,
		Library: library.New(filepath.Join(t.TempDir(), "positions.yaml")),
		Logger:  zerolog.New(io.Discard),
		In:      strings.NewReader(input),
	}
}

// runCommand executes the root command with args and returns its combined
// output and error.
func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCommand(app)
	var out strings.Builder
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}
