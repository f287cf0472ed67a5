package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"coins/config"
	"coins/engine"
	"coins/experiments"
	"coins/game"
	"coins/gamemaster"
	"coins/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	scenarioID := flag.Int("scenario", 0, "Scenario to play (1-6), 0 plays the configured game")
	first := flag.String("first", "", "Who will be Player 1 (Alice/Bob)")
	coins := flag.String("coins", "", "Comma separated coin row, overrides the config")
	logLevel := flag.String("log-level", "", "Log level, overrides the config")
	experiment := flag.String("experiment", "", "Run an experiment instead of a game: matchup or throughput")
	listScenarios := flag.Bool("scenarios", false, "List the scenarios and exit")
	flag.Parse()

	if *listScenarios {
		for _, s := range experiments.Scenarios {
			fmt.Printf("  %d: %s\n", s.ID, s.Label)
		}
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = *loaded
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := setupLogging(cfg.Logging, os.Stderr); err != nil {
		fatal(err)
	}

	if *coins != "" {
		row, err := parseCoins(*coins)
		if err != nil {
			fatal(err)
		}
		cfg.Game.Coins = row
	}

	switch *experiment {
	case "":
	case "matchup":
		if err := runMatchupExperiment(cfg.Experiments); err != nil {
			fatal(err)
		}
		return
	case "throughput":
		if _, err := experiments.RunThroughputExperiment(cfg.Experiments); err != nil {
			fatal(err)
		}
		return
	default:
		fatal(fmt.Errorf("unknown experiment %q", *experiment))
	}

	label := "configured game"
	if *scenarioID != 0 {
		scenario, err := experiments.ScenarioByID(*scenarioID)
		if err != nil {
			fatal(err)
		}
		label = fmt.Sprintf("%d: %s", scenario.ID, scenario.Label)
		cfg.Game.Strategies = map[string]string{
			game.Alice.String(): scenario.Alice.String(),
			game.Bob.String():   scenario.Bob.String(),
		}
	}
	if *first != "" {
		cfg.Game.First = *first
	}
	if _, err := game.ParsePlayer(cfg.Game.First); err != nil {
		fmt.Println("Invalid choice. Defaulting to Alice as Player 1.")
		cfg.Game.First = game.Alice.String()
	}

	a, err := cfg.Game.Assignment()
	if err != nil {
		fatal(err)
	}
	if err := narrate(os.Stdout, label, cfg.Game.Coins, a); err != nil {
		fatal(err)
	}
}

// narrate plays the game through a game master and prints each published update.
func narrate(w io.Writer, label string, coins []int, a searcher.Assignment) error {
	fmt.Fprintf(w, "\nScenario %s\n", label)
	fmt.Fprintf(w, "Player 1: %v (%v)\n", a.First(), a.Kind(a.First()))
	fmt.Fprintf(w, "Player 2: %v (%v)\n\n", a.First().Opponent(), a.Kind(a.First().Opponent()))

	engine.WarnScalingLimit(len(coins), a)

	master := gamemaster.NewMaster(coins, a)
	state, getUpdate := master.Init()
	for !master.GameOver() {
		if _, err := master.Advance(); err != nil {
			return err
		}
		for u, ok := getUpdate(); ok; u, ok = getUpdate() {
			printTurn(w, u)
			state = u.State
		}
	}

	scores, err := engine.FinalScores(state)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Game over!")
	fmt.Fprintf(w, "Final Scores => Alice: %d , Bob: %d\n", scores.Of(game.Alice), scores.Of(game.Bob))
	if winner := state.Winner(); winner != "" {
		fmt.Fprintf(w, "Winner: %s\n", winner)
	} else {
		fmt.Fprintln(w, "Draw")
	}
	return nil
}

func printTurn(w io.Writer, u gamemaster.Update) {
	t := u.Turn
	fmt.Fprintf(w, "Turn %d: %v chooses %d from the %v.\n", t.Number, t.Mover, t.Coin, t.Move)
	fmt.Fprintf(w, "Remaining coins: %v\n", []int(t.Remaining))
	fmt.Fprintf(w, "Scores => Alice: %d , Bob: %d\n\n", t.Scores.Of(game.Alice), t.Scores.Of(game.Bob))
}

func runMatchupExperiment(cfg config.ExperimentsConfig) error {
	writer, err := experiments.OpenWriter(cfg, "matchup")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	defer writer.Close()

	_, err = experiments.RunMatchupExperiment(cfg, writer)
	return err
}

func parseCoins(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ' ' })
	row := make([]int, 0, len(fields))
	for _, field := range fields {
		coin, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid coin %q: %w", field, err)
		}
		row = append(row, coin)
	}
	return row, nil
}

func setupLogging(cfg config.LoggingConfig, w io.Writer) error {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	}
	return nil
}

func fatal(err error) {
	log.Error().Err(err).Msg("coins failed")
	os.Exit(1)
}
