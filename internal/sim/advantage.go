package sim

// Weighted pairs a 0-100 rating with its weight in the offensive mean.
type Weighted struct {
	Rating int
	Weight float64
}

// AdvantageProfile holds the archetype-specific shaping constants: the
// divisor applied to the raw rating differential and the symmetric bound
// the result is clamped to.
type AdvantageProfile struct {
	Scale float64
	Bound float64
}

// coachBonus converts a coordinator rating into a flat 0..4 bonus.
func coachBonus(coordinator int) float64 {
	b := float64(coordinator) / 25
	if b < 0 {
		b = 0
	}
	if b > 4 {
		b = 4
	}
	return b
}

// Advantage blends an offensive unit's ratings against a single defensive
// rating into one bounded matchup modifier. Both scales are centered on
// the league average of 50, so the weighted-mean-minus-defense
// differential is already centered near zero; the coaching bonus then
// nudges it, the archetype scale compresses it, and the clamp keeps
// rating extremes from producing runaway outcomes.
//
// The result is monotonic in every input and positive always means the
// offense is favored.
func Advantage(offense []Weighted, defense, coordinator int, p AdvantageProfile) float64 {
	var sum, weight float64
	for _, w := range offense {
		if w.Weight <= 0 {
			continue
		}
		sum += float64(w.Rating) * w.Weight
		weight += w.Weight
	}
	mean := 50.0
	if weight > 0 {
		mean = sum / weight
	}

	adv := mean - float64(defense) + coachBonus(coordinator)
	if p.Scale > 0 {
		adv /= p.Scale
	}
	if p.Bound > 0 {
		if adv > p.Bound {
			adv = p.Bound
		}
		if adv < -p.Bound {
			adv = -p.Bound
		}
	}
	return adv
}
