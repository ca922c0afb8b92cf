package cli

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/spf13/cobra"
)

// terminalPlayerID keys the statistics of games played in the terminal.
const terminalPlayerID = "terminal"

// NewRootCmd creates the root command.
func NewRootCmd(logger *slog.Logger, conf *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Single-player tic-tac-toe against a bot",
		Long: `tictactoe plays tic-tac-toe against an easy, medium or hard bot.

Play in the terminal with "play", or serve the JSON API with "serve".
Finished games are counted in a local statistics file and, when reachable, in Redis.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd(logger, conf))
	rootCmd.AddCommand(newPlayCmd(logger, conf))
	rootCmd.AddCommand(newStatsCmd(conf))

	return rootCmd
}
