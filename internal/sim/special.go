package sim

import (
	"fmt"

	"github.com/gridironlab/playsim/internal/roster"
	"github.com/gridironlab/playsim/internal/rules"
)

func (r *Resolver) resolveSpecial(call PlayCall, offense *roster.Roster, state rules.GameState) (rules.PlayResult, error) {
	switch call.Special {
	case SpecialFieldGoal:
		return r.resolveFieldGoal(offense, state), nil
	case SpecialPunt:
		return r.resolvePunt(offense, state), nil
	case SpecialExtraPoint:
		return r.resolveExtraPoint(offense), nil
	}
	return rules.PlayResult{}, fmt.Errorf("%w: special %q", ErrUnknownPlay, call.Special)
}

// resolveFieldGoal attempts a kick from the current spot. Kick distance
// is the distance to goal plus the end zone and hold depth. A miss or a
// block surrenders the ball at the spot.
func (r *Resolver) resolveFieldGoal(offense *roster.Roster, state rules.GameState) rules.PlayResult {
	kicker := offense.Starter(roster.Kicker)
	distance := distanceToGoal(state) + 17

	result := rules.PlayResult{
		Type:      rules.FieldGoal,
		Elapsed:   secondsBetween(r.rng, 4, 7),
		StopClock: true,
	}
	if kicker != nil {
		result.Primary = kicker.Name
	}

	if chance(r.tables.FieldGoal.BlockProb, r.rng) {
		result.Turnover = true
		return result
	}

	band := r.tables.FieldGoal.Bands[len(r.tables.FieldGoal.Bands)-1]
	for _, b := range r.tables.FieldGoal.Bands {
		if b.MaxDistance > 0 && distance <= b.MaxDistance {
			band = b
			break
		}
	}

	// Kicker skill matters more on longer kicks; coaching adds a sliver.
	p := band.Base + float64(kicker.Rating(roster.KickAccuracy)-50)*band.SkillScale
	p += coachBonus(offense.Coordinator(true)) * 0.004
	if p < 0.02 {
		p = 0.02
	}
	if p > 0.99 {
		p = 0.99
	}

	if chance(p, r.rng) {
		result.Score = true
		result.Points = 3
		return result
	}

	result.Turnover = true
	return result
}

// resolvePunt kicks the ball away. Punts always change possession and
// always stop the clock; the yardage is the net distance, applied
// through the normal turnover field flip. A punt sailing into the end
// zone comes back out to the receiver's 20.
func (r *Resolver) resolvePunt(offense *roster.Roster, state rules.GameState) rules.PlayResult {
	punter := offense.Starter(roster.Punter)
	dist := distanceToGoal(state)

	result := rules.PlayResult{
		Type:      rules.Punt,
		Turnover:  true,
		StopClock: true,
		Elapsed:   secondsBetween(r.rng, 5, 9),
	}
	if punter != nil {
		result.Primary = punter.Name
	}

	if chance(r.tables.Punt.BlockProb, r.rng) {
		result.Yards = between(r.rng, -8, 0)
		return result
	}

	band := r.tables.Punt.Bands[len(r.tables.Punt.Bands)-1]
	for _, b := range r.tables.Punt.Bands {
		if dist >= b.MinDistanceToGoal {
			band = b
			break
		}
	}

	kick := band.Base + between(r.rng, -band.Spread, band.Spread)
	kick += roundAdj(float64(punter.Rating(roster.KickPower)-50) * r.tables.Punt.PowerScale)
	if kick < 5 {
		kick = 5
	}
	if kick >= dist {
		// Touchback: receiving team starts at its own 20.
		kick = dist - 20
		if kick < 0 {
			kick = 0
		}
	}
	result.Yards = kick
	return result
}

// resolveExtraPoint is the point-after try. The caller folds a made try
// into the touchdown's points before advancing state, since possession
// has not yet flipped when the try is kicked.
func (r *Resolver) resolveExtraPoint(offense *roster.Roster) rules.PlayResult {
	kicker := offense.Starter(roster.Kicker)

	p := r.tables.ExtraPointProb + float64(kicker.Rating(roster.KickAccuracy)-50)*0.001
	if p > 0.99 {
		p = 0.99
	}

	result := rules.PlayResult{
		Type:      rules.ExtraPoint,
		StopClock: true,
	}
	if kicker != nil {
		result.Primary = kicker.Name
	}
	if chance(p, r.rng) {
		result.Score = true
		result.Points = 1
	}
	return result
}
