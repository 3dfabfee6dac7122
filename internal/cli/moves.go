package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMovesCommand(app *App) *cobra.Command {
	var fen string

	cmd := &cobra.Command{
		Use:   "moves [position]",
		Short: "List the legal moves in a position",
		Long: `List all legal moves for the side to move, one per line.

The position argument is a library name (default "startpos").
Use --fen to analyze a literal FEN instead.`,
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

			moves := g.ValidMoves()
			for _, m := range moves {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d legal moves for %s\n", len(moves), g.Turn())
			return nil
		},
	}

	cmd.Flags().StringVar(&fen, "fen", "", "position as a FEN string")

	return cmd
}
