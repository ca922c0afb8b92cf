package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type fileStats struct {
	mu   sync.Mutex
	path string
}

// NewFileStatsRepository - keeps counters of all players in one local JSON file.
func NewFileStatsRepository(path string) StatsRepository {
	return &fileStats{
		path: path,
	}
}

func (that *fileStats) Increment(_ context.Context, playerID string, outcome entity.Outcome) error {
	if !outcome.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrUnknownOutcome, outcome)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	all, err := that.read()
	if err != nil {
		return err
	}

	stats := all[playerID]
	stats.Add(outcome)
	all[playerID] = stats

	return that.write(all)
}

func (that *fileStats) GetByPlayerID(_ context.Context, playerID string) (*entity.Stats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	all, err := that.read()
	if err != nil {
		return nil, err
	}

	stats := all[playerID]

	return &stats, nil
}

func (that *fileStats) read() (map[string]entity.Stats, error) {
	all := make(map[string]entity.Stats)

	data, err := os.ReadFile(that.path)
	if errors.Is(err, os.ErrNotExist) {
		return all, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	if err = json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return all, nil
}

// write replaces the file atomically through a temporary sibling.
func (that *fileStats) write(all map[string]entity.Stats) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(that.path), 0o755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}

	tmp := that.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}

	if err = os.Rename(tmp, that.path); err != nil {
		return fmt.Errorf("failed to replace stats file: %w", err)
	}

	return nil
}
