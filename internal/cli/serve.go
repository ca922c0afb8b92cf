package cli

import (
	"log/slog"

	app "github.com/rocketscienceinc/tictactoe-solo/internal"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/spf13/cobra"
)

func newServeCmd(logger *slog.Logger, conf *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the game API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunApp(logger, conf)
		},
	}
}
