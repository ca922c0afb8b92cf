package cli

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/spf13/cobra"
)

func newStatsCmd(conf *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics of games played in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := repository.NewFileStatsRepository(conf.Stats.LocalPath).GetByPlayerID(cmd.Context(), terminalPlayerID)
			if err != nil {
				return fmt.Errorf("failed to load stats: %w", err)
			}

			printStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
}

func printStats(out io.Writer, stats *entity.Stats) {
	fmt.Fprintf(out, "Wins:         %d\n", stats.Wins)
	fmt.Fprintf(out, "Losses:       %d\n", stats.Losses)
	fmt.Fprintf(out, "Draws:        %d\n", stats.Draws)
	fmt.Fprintf(out, "Games played: %d\n", stats.GamesPlayed)
}
