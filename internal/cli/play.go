package cli

import (
	"github.com/spf13/cobra"

	"barragoon/internal/ubi"
)

func newPlayCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Run the engine on standard input",
		Long: `Run the engine as a UBI protocol session on standard input and
output. This is the mode a GUI or match runner uses to talk to
the engine. The session ends on "exit" or end of input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := ubi.NewNamedHandler(app.Config.Engine.Name, app.Config.Engine.Author)
			return h.Loop(cmd.Context(), app.In, cmd.OutOrStdout())
		},
	}
}
