package sim

import (
	"fmt"
	"math"

	"github.com/gridironlab/playsim/internal/rules"
)

// Defensive matchup constants. One named knob per matrix cell keeps the
// rock-paper-scissors table auditable in a single place.
const (
	blitzSackProb        = 0.30
	blitzSackFumbleProb  = 0.15
	blitzRunStuffProb    = 0.40
	defendPassReduceProb = 0.60
	defendPassReduction  = 0.30
	defendPassPickProb   = 0.08
	defendRunReduceProb  = 0.70
	defendRunReduction   = 0.40
	preventCapProb       = 0.75
	preventBigPlay       = 15
	stackReduceProb      = 0.75
	stackReduction       = 0.50
	stackFloor           = -5
)

// ApplyDefense re-perturbs a base result according to the defensive
// scheme's effectiveness against the offensive category, then recomputes
// the derived flags from the modified yardage. Special teams, kneels,
// spikes and plays that already turned the ball over pass through
// untouched.
func (r *Resolver) ApplyDefense(base rules.PlayResult, call PlayCall, scheme DefensivePlay, state rules.GameState) (rules.PlayResult, error) {
	if call.Category != CategoryRun && call.Category != CategoryPass {
		return base, nil
	}
	if base.Turnover {
		return base, nil
	}

	result := base
	isPass := call.Category == CategoryPass
	completed := isPass && !incomplete(base)

	switch scheme {
	case DefenseBalanced:
		if !isPass || completed {
			result.Yards += between(r.rng, -1, 1)
		}

	case DefenseBlitz:
		if isPass {
			if chance(blitzSackProb, r.rng) {
				result.Yards = between(r.rng, -10, -3)
				result.Turnover = chance(blitzSackFumbleProb, r.rng)
			} else if completed {
				result.Yards += between(r.rng, 2, 7)
			}
		} else {
			if chance(blitzRunStuffProb, r.rng) {
				result.Yards -= between(r.rng, 1, 3)
			} else {
				result.Yards += between(r.rng, 1, 4)
			}
		}

	case DefensePass:
		if isPass {
			if completed && chance(defendPassReduceProb, r.rng) {
				result.Yards -= reduce(result.Yards, defendPassReduction)
			}
			if chance(defendPassPickProb, r.rng) {
				result.Yards = 0
				result.Turnover = true
			}
		} else {
			// Light box concedes ground on the ground.
			result.Yards += between(r.rng, 1, 4)
		}

	case DefenseRun:
		if isPass {
			if completed {
				result.Yards += between(r.rng, 1, 3)
			}
		} else if chance(defendRunReduceProb, r.rng) {
			result.Yards -= reduce(result.Yards, defendRunReduction)
		}

	case DefensePrevent:
		if !isPass || completed {
			switch {
			case result.Yards > preventBigPlay:
				if chance(preventCapProb, r.rng) {
					result.Yards = between(r.rng, 8, preventBigPlay)
				}
			case result.Yards > 0 && result.Yards <= 8:
				result.Yards += between(r.rng, 1, 3)
			}
		}

	case DefenseStackTheBox:
		if isPass {
			if completed {
				if call.Pass == PassDeep || call.Pass == PassHailMary {
					result.Yards += between(r.rng, 3, 10)
				} else {
					result.Yards += between(r.rng, 1, 4)
				}
			}
		} else if chance(stackReduceProb, r.rng) {
			result.Yards -= reduce(result.Yards, stackReduction)
			if result.Yards < stackFloor {
				result.Yards = stackFloor
			}
		}

	default:
		return rules.PlayResult{}, fmt.Errorf("%w: defense %q", ErrUnknownPlay, scheme)
	}

	result.Yards = clampYards(result.Yards, state)

	// Recompute flags from the modified yardage. An untouched
	// incompletion keeps its fixed shape; a sack that replaced one ends
	// in bounds far more often than not.
	switch {
	case result.Turnover:
		r.deriveFlags(&result, state, 0)
	case isPass && !completed && result.Yards == 0:
		result.StopClock = true
	case isPass && !completed:
		r.deriveFlags(&result, state, sackStopProb)
	default:
		r.deriveFlags(&result, state, r.stopProb(call, completed))
	}
	return result, nil
}

// sackStopProb is the stop-clock chance for a sack finishing in bounds.
const sackStopProb = 0.15

// incomplete reports whether a base pass result is an incompletion: no
// yards, no turnover, and the clock stopped unconditionally.
func incomplete(result rules.PlayResult) bool {
	return result.Type == rules.Pass && result.Yards == 0 && !result.Turnover && result.StopClock && !result.Score
}

// stopProb returns the subtype stop-clock probability for flag
// recomputation after a defensive adjustment.
func (r *Resolver) stopProb(call PlayCall, completed bool) float64 {
	if call.Category == CategoryPass {
		if !completed {
			return 1
		}
		if p, ok := r.tables.Pass[call.Pass]; ok {
			return p.CompletionStopProb
		}
		return 0.4
	}
	if p, ok := r.tables.Run[call.Run]; ok {
		return p.StopClockProb
	}
	return 0.15
}

// reduce returns the magnitude to subtract for a fractional reduction of
// a gain; losses are not further reduced.
func reduce(yards int, fraction float64) int {
	if yards <= 0 {
		return 0
	}
	return int(math.Round(float64(yards) * fraction))
}
