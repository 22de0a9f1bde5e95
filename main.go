package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"lighthouses/communication"
	"lighthouses/engine"
	"lighthouses/game"
	"lighthouses/meta"
	"lighthouses/player"
)

// Replays scripted games: each positional argument is a file with one JSON
// command per line for the player seated at that index.
func main() {
	mapPath := flag.String("map", "", "Map file")
	rulesPath := flag.String("rules", "", "Optional YAML rules overriding the defaults")
	rounds := flag.Int("rounds", meta.ROUNDS, "Number of rounds to play")
	moveTimeout := flag.Duration("move-timeout", meta.MOVE_TIMEOUT_MS*time.Millisecond, "Time an actor may take per turn")
	verbose := flag.Bool("v", false, "Log every rejected command")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	scores, err := run(*mapPath, *rulesPath, flag.Args(), *rounds, *moveTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	for i, score := range scores {
		fmt.Printf("%s: %d\n", filepath.Base(flag.Arg(i)), score)
	}
}

func run(mapPath, rulesPath string, scripts []string, rounds int, moveTimeout time.Duration) ([]int, error) {
	m, err := game.LoadMap(mapPath)
	if err != nil {
		return nil, err
	}
	rules := game.DefaultRules()
	if rulesPath != "" {
		if rules, err = game.LoadRules(rulesPath); err != nil {
			return nil, err
		}
	}
	board, err := game.NewBoard(m, rules, len(scripts))
	if err != nil {
		return nil, err
	}

	actors := make([]communication.Actor, len(scripts))
	for i, path := range scripts {
		if actors[i], err = loadScript(path); err != nil {
			return nil, err
		}
	}

	e, err := engine.New(board, actors, engine.WithRounds(rounds), engine.WithMoveTimeout(moveTimeout))
	if err != nil {
		return nil, err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := e.Init(ctx); err != nil {
		return nil, err
	}
	return e.Run(ctx)
}

func loadScript(path string) (*player.Scripted, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	var commands []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			commands = append(commands, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return player.NewScripted(filepath.Base(path), commands...), nil
}
