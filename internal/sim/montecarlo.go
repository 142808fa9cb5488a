package sim

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/gridironlab/playsim/internal/roster"
	"github.com/gridironlab/playsim/internal/rules"
)

// GameParams describes one simulated game for statistical validation.
type GameParams struct {
	Tables Tables
	Home   *roster.Roster
	Away   *roster.Roster
	Seed   uint64

	// MaxPlays caps pathological games (e.g. endless ties); 0 uses a
	// generous default.
	MaxPlays int
}

// GameSummary aggregates one game's outcomes.
type GameSummary struct {
	HomePoints int
	AwayPoints int
	Plays      int
	NetYards   int
	Turnovers  int // interceptions and lost fumbles, not punts
	FGAttempts int
	FGMade     int
	Quarters   int
}

// Stats summarizes integer samples.
type Stats struct {
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64

	Samples []int
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// Report summarizes a Monte Carlo run across many games.
type Report struct {
	Games        int
	Points       Stats // combined points per game
	Plays        Stats
	Turnovers    Stats
	YardsPerPlay float64
	FGPct        float64
}

// SimulateGame plays out one full game with a deliberately naive call
// policy. The policy lives here, inside the validation harness; real
// play selection belongs to the external decision layer.
func SimulateGame(params GameParams) (GameSummary, error) {
	rng := NewSeededRNG(params.Seed)
	resolver, err := NewResolver(params.Tables, rng)
	if err != nil {
		return GameSummary{}, err
	}

	maxPlays := params.MaxPlays
	if maxPlays <= 0 {
		maxPlays = 400
	}

	state := rules.Kickoff(rules.Away)
	var summary GameSummary

	for state.InProgress && summary.Plays < maxPlays {
		offense, defense := params.Home, params.Away
		if state.Possession == rules.Away {
			offense, defense = params.Away, params.Home
		}

		call := naiveOffensiveCall(state, rng)
		scheme := naiveDefensiveCall(rng)

		result, err := resolver.Resolve(call, scheme, offense, defense, state)
		if err != nil {
			return GameSummary{}, err
		}

		// A touchdown's point-after is kicked before possession flips,
		// so fold its points into the touchdown result.
		if result.Score && result.Points == 6 {
			try := resolver.resolveExtraPoint(offense)
			result.Points += try.Points
		}

		summary.Plays++
		switch result.Type {
		case rules.Rush, rules.Pass:
			summary.NetYards += result.Yards
			if result.Turnover {
				summary.Turnovers++
			}
		case rules.FieldGoal:
			summary.FGAttempts++
			if result.Score {
				summary.FGMade++
			}
		}

		state = rules.AdvanceDowns(state, result)
		state = rules.TickClock(state, result)

		if rules.QuarterEnded(state) {
			if rules.ShouldEnd(state) {
				state.InProgress = false
				break
			}
			state = rules.StartNextQuarter(state)
		}
	}

	summary.HomePoints = state.HomeScore
	summary.AwayPoints = state.AwayScore
	summary.Quarters = state.Quarter
	return summary, nil
}

// RunMonteCarlo fans games out across a worker pool. Each game derives
// its own seed from the base seed, so a run is reproducible end to end
// while games stay independent.
func RunMonteCarlo(params GameParams, games, workers int) (Report, error) {
	if games <= 0 {
		return Report{}, nil
	}
	if workers <= 0 {
		workers = 1
	}

	summaries := make([]GameSummary, games)
	errs := make([]error, games)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				p := params
				p.Seed = deriveSeed(params.Seed, uint64(i))
				summaries[i], errs[i] = SimulateGame(p)
			}
		}()
	}
	for i := 0; i < games; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return Report{}, fmt.Errorf("game %d: %w", i, err)
		}
	}

	points := make([]int, games)
	plays := make([]int, games)
	turnovers := make([]int, games)
	var yards, totalPlays, fgAtt, fgMade int
	for i, s := range summaries {
		points[i] = s.HomePoints + s.AwayPoints
		plays[i] = s.Plays
		turnovers[i] = s.Turnovers
		yards += s.NetYards
		totalPlays += s.Plays
		fgAtt += s.FGAttempts
		fgMade += s.FGMade
	}

	report := Report{
		Games:     games,
		Points:    calcStats(points),
		Plays:     calcStats(plays),
		Turnovers: calcStats(turnovers),
	}
	if totalPlays > 0 {
		report.YardsPerPlay = float64(yards) / float64(totalPlays)
	}
	if fgAtt > 0 {
		report.FGPct = float64(fgMade) / float64(fgAtt)
	}
	return report, nil
}

// deriveSeed mixes the game index into the base seed (splitmix64 step).
func deriveSeed(base, i uint64) uint64 {
	z := base + (i+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

var runMenu = []RunPlay{RunInside, RunOutside, RunDraw, RunSweep, RunQBKeeper, RunReadOption}

var passMenu = []PassPlay{PassScreen, PassShort, PassMedium, PassDeep, PassPlayAction}

func naiveOffensiveCall(state rules.GameState, rng RandomSource) PlayCall {
	dist := 100 - state.FieldPosition

	if state.Down == 4 {
		switch {
		case dist+17 <= 55:
			return SpecialCall(SpecialFieldGoal)
		case state.YardsToGo <= 2 && state.FieldPosition >= 55:
			return RunCall(RunInside)
		default:
			return SpecialCall(SpecialPunt)
		}
	}

	// Desperation heave late in the game.
	if state.Clock < 15*time.Second && dist > 45 && state.Quarter >= 4 {
		return PassCall(PassHailMary)
	}

	if rng.Float64() < 0.45 {
		return RunCall(runMenu[between(rng, 0, len(runMenu)-1)])
	}
	return PassCall(passMenu[between(rng, 0, len(passMenu)-1)])
}

var defenseMenu = []DefensivePlay{
	DefenseBalanced, DefenseBalanced, DefenseBlitz,
	DefensePass, DefenseRun, DefensePrevent, DefenseStackTheBox,
}

func naiveDefensiveCall(rng RandomSource) DefensivePlay {
	return defenseMenu[between(rng, 0, len(defenseMenu)-1)]
}
