package rules

// AdvanceDowns applies a play result to the down, distance, field position
// and possession fields. It is a pure reducer: the input state is never
// mutated and the returned state is always valid (down 1..4, field
// position 0..100).
//
// Transition order matters: turnovers are resolved before scores, scores
// before ordinary yardage, and a down that would exceed 4 becomes a
// turnover on downs before it can be observed.
func AdvanceDowns(state GameState, result PlayResult) GameState {
	if !state.InProgress {
		return state
	}

	next := state

	if result.Turnover {
		spot := clampFieldPosition(state.FieldPosition + result.Yards)
		next.Possession = state.Possession.Opponent()
		next.FieldPosition = 100 - spot
		next.Down = 1
		next.YardsToGo = 10
		return next
	}

	if result.Score {
		if state.Possession == Home {
			next.HomeScore += result.Points
		} else {
			next.AwayScore += result.Points
		}
		// Kickoff convention: the scored-on team takes over at its own 25.
		next.Possession = state.Possession.Opponent()
		next.FieldPosition = 25
		next.Down = 1
		next.YardsToGo = 10
		return next
	}

	spot := clampFieldPosition(state.FieldPosition + result.Yards)

	if result.Yards >= state.YardsToGo {
		next.Down = 1
		next.YardsToGo = 10
		next.FieldPosition = spot
		return next
	}

	next.Down = state.Down + 1
	next.YardsToGo = state.YardsToGo - result.Yards
	next.FieldPosition = spot

	if next.Down > 4 {
		// Turnover on downs: the defense takes over at the dead-ball spot.
		next.Possession = state.Possession.Opponent()
		next.FieldPosition = 100 - spot
		next.Down = 1
		next.YardsToGo = 10
	}

	return next
}
