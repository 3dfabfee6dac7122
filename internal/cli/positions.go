package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPositionsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Manage the position library",
		Long: `Manage the named position library. Positions are stored as FEN
strings in a YAML file; "startpos" and "empty" are built in.`,
	}

	cmd.AddCommand(newPositionsListCommand(app))
	cmd.AddCommand(newPositionsSaveCommand(app))
	cmd.AddCommand(newPositionsDeleteCommand(app))

	return cmd
}

func newPositionsListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.Library.List()
			if err != nil {
				return err
			}

			for _, name := range names {
				fen, err := app.Library.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", name, fen)
			}
			return nil
		},
	}
}

func newPositionsSaveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <fen>",
		Short: "Save a position under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Library.Save(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[0])
			return nil
		},
	}
}

func newPositionsDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Library.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
