package config

import (
	"errors"
	"fmt"
	"os"

	"coins/game"
	"coins/meta"
	"coins/searcher"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Game        GameConfig        `yaml:"game"`
	Logging     LoggingConfig     `yaml:"logging"`
	Experiments ExperimentsConfig `yaml:"experiments"`
}

type GameConfig struct {
	Coins      []int             `yaml:"coins"`
	First      string            `yaml:"first"`
	Strategies map[string]string `yaml:"strategies"` // Player name to strategy kind
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

type ExperimentsConfig struct {
	// Games played per matchup
	Games int `yaml:"games"`
	// Coins in each random row
	RowLength    int      `yaml:"row_length"`
	MaxCoin      int      `yaml:"max_coin"`
	Seed         uint64   `yaml:"seed"`
	Kinds        []string `yaml:"kinds"`
	Sink         string   `yaml:"sink"` // csv or sqlite
	OutputDir    string   `yaml:"output_dir"`
	Database     string   `yaml:"database"`
	ScalingSizes []int    `yaml:"scaling_sizes"`
}

// Default is the reference scenario: Alice (optimal) first against Bob (greedy).
func Default() Config {
	return Config{
		Game: GameConfig{
			Coins: append([]int(nil), meta.REFERENCE_COINS...),
			First: game.Alice.String(),
			Strategies: map[string]string{
				game.Alice.String(): searcher.Optimal.String(),
				game.Bob.String():   searcher.Greedy.String(),
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Experiments: ExperimentsConfig{
			Games:        10,
			RowLength:    len(meta.REFERENCE_COINS),
			MaxCoin:      10,
			Seed:         1,
			Kinds:        []string{searcher.Greedy.String(), searcher.Optimal.String(), searcher.MinimizeOpponent.String()},
			Sink:         "csv",
			OutputDir:    "experiments/results",
			Database:     "experiments/results/experiments.db",
			ScalingSizes: []int{4, 8, 12},
		},
	}
}

// Load reads path over the defaults, so a file only needs the keys it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	defaults := cfg.Game.Strategies
	cfg.Game.Strategies = nil // A configured map replaces the defaults instead of merging into them
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Game.Strategies == nil {
		cfg.Game.Strategies = defaults
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Game.Assignment(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return c.Experiments.Validate()
}

// Assignment resolves the configured player names and strategy kinds.
func (g GameConfig) Assignment(options ...searcher.Option) (searcher.Assignment, error) {
	first, err := game.ParsePlayer(g.First)
	if err != nil {
		return searcher.Assignment{}, err
	}
	kinds := make(map[game.Player]searcher.Kind, len(g.Strategies))
	for name, kindName := range g.Strategies {
		player, err := game.ParsePlayer(name)
		if err != nil {
			return searcher.Assignment{}, err
		}
		if _, ok := kinds[player]; ok {
			return searcher.Assignment{}, fmt.Errorf("%w: %v is assigned more than once", game.ErrInvalidAssignment, player)
		}
		kind, err := searcher.ParseKind(kindName)
		if err != nil {
			return searcher.Assignment{}, err
		}
		kinds[player] = kind
	}
	return searcher.Assign(first, kinds, options...)
}

func (e ExperimentsConfig) Validate() error {
	if e.Games <= 0 {
		return errors.New("experiments.games must be > 0")
	}
	if e.RowLength < 0 {
		return errors.New("experiments.row_length must be >= 0")
	}
	if e.MaxCoin <= 0 {
		return errors.New("experiments.max_coin must be > 0")
	}
	if _, err := e.StrategyKinds(); err != nil {
		return err
	}
	switch e.Sink {
	case "csv", "sqlite":
	default:
		return fmt.Errorf("unknown experiments.sink %q", e.Sink)
	}
	for _, n := range e.ScalingSizes {
		if n <= 0 {
			return fmt.Errorf("experiments.scaling_sizes must be > 0, got %d", n)
		}
	}
	return nil
}

func (e ExperimentsConfig) StrategyKinds() ([]searcher.Kind, error) {
	if len(e.Kinds) == 0 {
		return nil, fmt.Errorf("%w: experiments.kinds is empty", game.ErrInvalidAssignment)
	}
	kinds := make([]searcher.Kind, 0, len(e.Kinds))
	for _, name := range e.Kinds {
		kind, err := searcher.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
