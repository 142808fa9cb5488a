package rules

import "time"

// playClockDelay is charged between snaps whenever the previous play left
// the clock running.
const playClockDelay = 25 * time.Second

// TickClock burns the play's elapsed time off the game clock. Plays that
// do not stop the clock additionally pay the between-play delay. The
// clock never goes negative.
func TickClock(state GameState, result PlayResult) GameState {
	if !state.InProgress {
		return state
	}

	elapsed := result.Elapsed
	if !result.StopClock {
		elapsed += playClockDelay
	}

	next := state
	next.Clock = state.Clock - elapsed
	if next.Clock < 0 {
		next.Clock = 0
	}
	return next
}

// QuarterEnded reports whether the current quarter's clock has expired.
func QuarterEnded(state GameState) bool {
	return state.Clock <= 0
}

// StartNextQuarter advances to the following period: 15 minutes through
// the fourth quarter, 10-minute periods in overtime.
func StartNextQuarter(state GameState) GameState {
	next := state
	next.Quarter = state.Quarter + 1
	if next.Quarter <= 4 {
		next.Clock = RegulationQuarter
	} else {
		next.Clock = OvertimePeriod
	}
	return next
}

// ShouldEnd reports whether the game is over: the period clock has
// expired at the end of regulation or of an overtime period with the
// score unequal. A tied game never ends here; it goes to another period.
func ShouldEnd(state GameState) bool {
	if state.Clock > 0 {
		return false
	}
	if state.Quarter < 4 {
		return false
	}
	return state.HomeScore != state.AwayScore
}
