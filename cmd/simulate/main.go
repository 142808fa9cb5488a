// Command simulate runs the play-resolution engine through full games
// for statistical validation: many independent games in parallel, each
// reproducible from the base seed, with aggregate scoring, yardage and
// turnover statistics reported at the end.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/gridironlab/playsim/internal/roster"
	"github.com/gridironlab/playsim/internal/sim"
	"github.com/gridironlab/playsim/internal/tuning"
)

type config struct {
	Games     int    `env:"SIM_GAMES" envDefault:"1000"`
	Workers   int    `env:"SIM_WORKERS" envDefault:"4"`
	Seed      uint64 `env:"SIM_SEED" envDefault:"1"`
	TablesDir string `env:"SIM_TABLES_DIR"`
	League    string `env:"SIM_LEAGUE" envDefault:"default"`
	Team      string `env:"SIM_TEAM"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	tables := sim.DefaultTables()
	if cfg.TablesDir != "" {
		loader := tuning.NewLoader(cfg.TablesDir)
		raw, err := loader.LoadMerged(cfg.League, cfg.Team)
		if err != nil {
			return fmt.Errorf("load tables: %w", err)
		}
		tables, err = tuning.Apply(raw, tables)
		if err != nil {
			return fmt.Errorf("apply tables: %w", err)
		}
		logger.Info("tuning loaded", "dir", cfg.TablesDir, "league", cfg.League, "team", cfg.Team, "version", raw.Version)
	}

	params := sim.GameParams{
		Tables: tables,
		Home:   fixtureRoster("home", cfg.Seed),
		Away:   fixtureRoster("away", cfg.Seed+1),
		Seed:   cfg.Seed,
	}

	logger.Info("starting monte carlo", "games", cfg.Games, "workers", cfg.Workers, "seed", cfg.Seed)

	report, err := sim.RunMonteCarlo(params, cfg.Games, cfg.Workers)
	if err != nil {
		return err
	}

	logger.Info("monte carlo complete",
		"games", report.Games,
		"points_mean", report.Points.Mean,
		"points_stddev", report.Points.StdDev,
		"points_p50", report.Points.P50,
		"points_p90", report.Points.P90,
		"plays_mean", report.Plays.Mean,
		"turnovers_mean", report.Turnovers.Mean,
		"yards_per_play", report.YardsPerPlay,
		"fg_pct", report.FGPct,
	)
	return nil
}

// fixtureRoster builds a league-average roster with a deterministic
// spread of ratings. Real rosters come from the external generator; the
// harness only needs plausible inputs.
func fixtureRoster(name string, seed uint64) *roster.Roster {
	rng := sim.NewSeededRNG(seed)
	spread := func() int {
		return 38 + int(rng.Float64()*25)
	}
	player := func(pos roster.Position, label string) *roster.Player {
		return &roster.Player{
			Name:  name + " " + label,
			Pos:   pos,
			Slots: [3]int{spread(), spread(), spread()},
		}
	}
	return &roster.Roster{
		Players: map[roster.Position][]*roster.Player{
			roster.Quarterback:  {player(roster.Quarterback, "QB1")},
			roster.RunningBack:  {player(roster.RunningBack, "RB1")},
			roster.WideReceiver: {player(roster.WideReceiver, "WR1")},
			roster.TightEnd:     {player(roster.TightEnd, "TE1")},
			roster.Cornerback:   {player(roster.Cornerback, "CB1")},
			roster.Kicker:       {player(roster.Kicker, "K1")},
			roster.Punter:       {player(roster.Punter, "P1")},
		},
		OffensiveLineRating: spread(),
		DefensiveLineRating: spread(),
		OffCoordinator:      spread(),
		DefCoordinator:      spread(),
	}
}
