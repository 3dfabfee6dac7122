package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"barragoon/internal/buildinfo"
)

func newVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the engine version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			name := app.Config.Engine.Name
			if name == "" {
				name = buildinfo.EngineName
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", name, buildinfo.Version())
		},
	}
}
