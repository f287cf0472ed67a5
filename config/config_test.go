package config

import (
	"os"
	"path/filepath"
	"testing"

	"coins/game"
	"coins/searcher"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	a, err := cfg.Game.Assignment()
	require.NoError(t, err)
	require.Equal(t, game.Alice, a.First())
	require.Equal(t, searcher.Optimal, a.Kind(game.Alice))
	require.Equal(t, searcher.Greedy, a.Kind(game.Bob))
}

func TestLoad(t *testing.T) {
	t.Run("file overrides only the keys it sets", func(t *testing.T) {
		path := writeConfig(t, `
game:
  coins: [1, 2, 3]
  first: bob
  strategies:
    alice: minimize
    bob: largest-coin
experiments:
  games: 4
  sink: sqlite
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, cfg.Game.Coins)
		require.Equal(t, 4, cfg.Experiments.Games)
		require.Equal(t, "sqlite", cfg.Experiments.Sink)
		require.Equal(t, 10, cfg.Experiments.MaxCoin)
		require.Equal(t, "info", cfg.Logging.Level)
		require.Len(t, cfg.Game.Strategies, 2)

		a, err := cfg.Game.Assignment()
		require.NoError(t, err)
		require.Equal(t, game.Bob, a.First())
		require.Equal(t, searcher.MinimizeOpponent, a.Kind(game.Alice))
		require.Equal(t, searcher.Greedy, a.Kind(game.Bob))
	})

	t.Run("strategies default when the file sets none", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "logging:\n  level: debug\n"))
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.Logging.Level)
		require.Equal(t, Default().Game.Strategies, cfg.Game.Strategies)
	})

	t.Run("unknown strategy is an invalid assignment", func(t *testing.T) {
		_, err := Load(writeConfig(t, "game:\n  strategies:\n    alice: random\n    bob: greedy\n"))
		require.ErrorIs(t, err, game.ErrInvalidAssignment)
	})

	t.Run("player assigned twice is an invalid assignment", func(t *testing.T) {
		_, err := Load(writeConfig(t, "game:\n  strategies:\n    Alice: optimal\n    alice: greedy\n    bob: greedy\n"))
		require.ErrorIs(t, err, game.ErrInvalidAssignment)
	})

	t.Run("missing player strategy is an invalid assignment", func(t *testing.T) {
		_, err := Load(writeConfig(t, "game:\n  strategies:\n    alice: optimal\n"))
		require.ErrorIs(t, err, game.ErrInvalidAssignment)
	})

	t.Run("bad experiment settings are rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, "experiments:\n  games: 0\n"))
		require.Error(t, err)

		_, err = Load(writeConfig(t, "experiments:\n  sink: parquet\n"))
		require.Error(t, err)

		_, err = Load(writeConfig(t, "logging:\n  format: xml\n"))
		require.Error(t, err)
	})

	t.Run("malformed yaml and missing files fail", func(t *testing.T) {
		_, err := Load(writeConfig(t, "game: [\n"))
		require.Error(t, err)

		_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestStrategyKinds(t *testing.T) {
	kinds, err := ExperimentsConfig{Kinds: []string{"optimal", "greedy"}}.StrategyKinds()
	require.NoError(t, err)
	require.Equal(t, []searcher.Kind{searcher.Optimal, searcher.Greedy}, kinds)

	_, err = ExperimentsConfig{}.StrategyKinds()
	require.ErrorIs(t, err, game.ErrInvalidAssignment)
}
