package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"barragoon/internal/server"
)

func newServeCommand(app *App) *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve games over HTTP",
		Long: `Start the web server. Games are created and played through a JSON
API and rendered as HTML boards. Sessions live in memory only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if host == "" {
				host = app.Config.Server.Host
			}
			if port == 0 {
				port = app.Config.Server.Port
			}

			srv := server.New(app.Logger, app.Config.Server.PublicDir)
			addr := fmt.Sprintf("%s:%d", host, port)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "interface to bind (overrides config)")
	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (overrides config)")

	return cmd
}
