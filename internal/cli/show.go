package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCommand(app *App) *cobra.Command {
	var fen string

	cmd := &cobra.Command{
		Use:   "show [position]",
		Short: "Display a board position",
		Long: `Display a board position in the terminal.

The position argument is a library name (default "startpos").
Use --fen to display a literal FEN instead.

Example:
  barragoon show
  barragoon show --fen "7/7/7/7/3Z3/7/7/7/7 b"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			g, err := app.loadGame(name, fen)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), app.renderer().Render(g))
			fmt.Fprintf(cmd.OutOrStdout(), "Turn: %s\n", g.Turn())
			return nil
		},
	}

	cmd.Flags().StringVar(&fen, "fen", "", "position as a FEN string")

	return cmd
}
