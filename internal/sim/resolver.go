package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/gridironlab/playsim/internal/roster"
	"github.com/gridironlab/playsim/internal/rules"
)

var (
	ErrUnknownPlay = errors.New("unknown play subtype")
	ErrNoCategory  = errors.New("play call has no category")
)

// goalLineDistance is the distance to the opponent goal at or inside
// which the conservative goal-line table replaces the subtype table.
const goalLineDistance = 5

// Resolver turns play calls into play results. It holds no game state:
// every resolution is a pure function of the call, the rosters, the
// situation and the injected random source.
type Resolver struct {
	tables Tables
	rng    RandomSource
}

// NewResolver validates the tuning tables once and returns a resolver
// bound to the given random source.
func NewResolver(tables Tables, rng RandomSource) (*Resolver, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("resolver tables: %w", err)
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Resolver{tables: tables, rng: rng}, nil
}

// Tables exposes the resolver's effective tuning constants.
func (r *Resolver) Tables() Tables { return r.tables }

// Resolve produces the final result for one play: base resolution by
// offensive subtype, then the defensive scheme's modifier pass.
func (r *Resolver) Resolve(call PlayCall, scheme DefensivePlay, offense, defense *roster.Roster, state rules.GameState) (rules.PlayResult, error) {
	base, err := r.ResolveBase(call, offense, defense, state)
	if err != nil {
		return rules.PlayResult{}, err
	}
	return r.ApplyDefense(base, call, scheme, state)
}

// ResolveBase produces the pre-modifier result for the offensive call.
func (r *Resolver) ResolveBase(call PlayCall, offense, defense *roster.Roster, state rules.GameState) (rules.PlayResult, error) {
	switch call.Category {
	case CategoryRun:
		return r.resolveRun(call, offense, defense, state)
	case CategoryPass:
		return r.resolvePass(call, offense, defense, state)
	case CategorySpecial:
		return r.resolveSpecial(call, offense, state)
	case CategoryKneel:
		return rules.PlayResult{
			Type:    rules.Kneel,
			Yards:   between(r.rng, -1, 0),
			Elapsed: secondsBetween(r.rng, 38, 44),
		}, nil
	case CategorySpike:
		return rules.PlayResult{
			Type:      rules.Spike,
			Elapsed:   secondsBetween(r.rng, 2, 3),
			StopClock: true,
		}, nil
	}
	return rules.PlayResult{}, ErrNoCategory
}

func (r *Resolver) resolveRun(call PlayCall, offense, defense *roster.Roster, state rules.GameState) (rules.PlayResult, error) {
	profile, ok := r.tables.Run[call.Run]
	if !ok {
		return rules.PlayResult{}, fmt.Errorf("%w: run %q", ErrUnknownPlay, call.Run)
	}

	carrier := call.Skill
	if carrier == nil {
		carrier = offense.Starter(profile.CarrierPos)
	}

	adv := Advantage([]Weighted{
		{Rating: carrier.Rating(profile.CarrierAttr), Weight: profile.SkillWeight},
		{Rating: offense.LineRating(), Weight: profile.LineWeight},
	}, defense.FrontRating(), offense.Coordinator(true), profile.Advantage)

	table := profile.Table
	if distanceToGoal(state) <= goalLineDistance {
		table = r.tables.GoalLine
	}

	_, yards, err := table.Sample(percent(r.rng), adv, r.rng)
	if err != nil {
		return rules.PlayResult{}, err
	}

	result := rules.PlayResult{
		Type:     rules.Rush,
		Yards:    clampYards(yards, state),
		Elapsed:  secondsBetween(r.rng, profile.TimeMin, profile.TimeMax),
		Turnover: chance(profile.FumbleProb, r.rng),
	}
	if carrier != nil {
		result.Primary = carrier.Name
	}
	r.deriveFlags(&result, state, profile.StopClockProb)
	return result, nil
}

func (r *Resolver) resolvePass(call PlayCall, offense, defense *roster.Roster, state rules.GameState) (rules.PlayResult, error) {
	profile, ok := r.tables.Pass[call.Pass]
	if !ok {
		return rules.PlayResult{}, fmt.Errorf("%w: pass %q", ErrUnknownPlay, call.Pass)
	}

	qb := call.QB
	if qb == nil {
		qb = offense.Starter(roster.Quarterback)
	}
	target := call.Skill
	if target == nil {
		target = offense.Starter(profile.TargetPos)
	}
	defender := call.Defender
	if defender == nil {
		defender = defense.Starter(roster.Cornerback)
	}

	var adv float64
	if !profile.Fixed {
		adv = Advantage([]Weighted{
			{Rating: qb.Rating(roster.Accuracy), Weight: profile.QBWeight},
			{Rating: target.Rating(profile.TargetAttr), Weight: profile.ReceiverWeight},
		}, defender.Rating(roster.Coverage), offense.Coordinator(true), profile.Advantage)
	}

	goalLine := distanceToGoal(state) <= goalLineDistance
	table := profile.Table
	incompleteBucket := 0
	if goalLine {
		// Compressed field: the conservative table applies regardless of
		// subtype, and its zero-yard bucket stands in for incompletions.
		table = r.tables.GoalLine
		incompleteBucket = 1
	}

	bucket, yards, err := table.Sample(percent(r.rng), adv, r.rng)
	if err != nil {
		return rules.PlayResult{}, err
	}

	result := rules.PlayResult{
		Type:     rules.Pass,
		Elapsed:  secondsBetween(r.rng, profile.TimeMin, profile.TimeMax),
		Turnover: chance(profile.IntProb, r.rng),
	}
	if qb != nil {
		result.Primary = qb.Name
	}
	if target != nil {
		result.Target = target.Name
	}
	if defender != nil {
		result.Defender = defender.Name
	}

	if result.Turnover {
		// Intercepted at the spot of the throw.
		r.deriveFlags(&result, state, 0)
		return result, nil
	}

	if bucket == incompleteBucket {
		result.StopClock = true
		return result, nil
	}

	result.Yards = clampYards(yards, state)
	r.deriveFlags(&result, state, profile.CompletionStopProb)
	return result, nil
}

// deriveFlags recomputes the score, first-down and stop-clock flags from
// the final yardage, clearing whatever a previous pass set so a modified
// result cannot keep stale flags. stopProb is the subtype-specific chance
// that a non-scoring, non-turnover play still stops the clock.
func (r *Resolver) deriveFlags(result *rules.PlayResult, state rules.GameState, stopProb float64) {
	result.Score = false
	result.FirstDown = false
	result.Points = 0
	if result.Turnover {
		result.StopClock = true
		return
	}
	if result.Yards >= distanceToGoal(state) {
		result.Score = true
		result.Points = 6
		result.StopClock = true
		return
	}
	if result.Yards >= state.YardsToGo {
		result.FirstDown = true
	}
	result.StopClock = chance(stopProb, r.rng)
}

// distanceToGoal is the yards between the ball and the opponent goal.
func distanceToGoal(state rules.GameState) int {
	return 100 - state.FieldPosition
}

// clampYards keeps a sampled outcome on the field: gains stop at the
// opponent goal line, losses at the offense's own.
func clampYards(yards int, state rules.GameState) int {
	if hi := distanceToGoal(state); yards > hi {
		return hi
	}
	if lo := -state.FieldPosition; yards < lo {
		return lo
	}
	return yards
}

func secondsBetween(rng RandomSource, lo, hi int) time.Duration {
	return time.Duration(between(rng, lo, hi)) * time.Second
}
