package tuning

import (
	"fmt"

	"github.com/gridironlab/playsim/internal/sim"
)

// Apply overlays a validated RawConfig onto a set of engine tables and
// returns the result. Unknown subtype names are errors so a typo in a
// tuning file cannot silently fall back to defaults.
func Apply(cfg RawConfig, base sim.Tables) (sim.Tables, error) {
	if err := ValidateRaw(cfg); err != nil {
		return sim.Tables{}, err
	}

	out := base
	out.Run = copyMap(base.Run)
	out.Pass = copyMap(base.Pass)

	for name, rc := range cfg.Run {
		profile, ok := out.Run[sim.RunPlay(name)]
		if !ok {
			return sim.Tables{}, fmt.Errorf("tuning: unknown run subtype %q", name)
		}
		if rc == nil {
			continue
		}
		if rc.Table != nil {
			profile.Table = toBucketTable(*rc.Table)
		}
		if rc.TimeMin != nil {
			profile.TimeMin = *rc.TimeMin
		}
		if rc.TimeMax != nil {
			profile.TimeMax = *rc.TimeMax
		}
		if rc.FumbleProb != nil {
			profile.FumbleProb = *rc.FumbleProb
		}
		if rc.StopClockProb != nil {
			profile.StopClockProb = *rc.StopClockProb
		}
		out.Run[sim.RunPlay(name)] = profile
	}

	for name, pc := range cfg.Pass {
		profile, ok := out.Pass[sim.PassPlay(name)]
		if !ok {
			return sim.Tables{}, fmt.Errorf("tuning: unknown pass subtype %q", name)
		}
		if pc == nil {
			continue
		}
		if pc.Table != nil {
			profile.Table = toBucketTable(*pc.Table)
		}
		if pc.TimeMin != nil {
			profile.TimeMin = *pc.TimeMin
		}
		if pc.TimeMax != nil {
			profile.TimeMax = *pc.TimeMax
		}
		if pc.IntProb != nil {
			profile.IntProb = *pc.IntProb
		}
		if pc.CompletionStopProb != nil {
			profile.CompletionStopProb = *pc.CompletionStopProb
		}
		out.Pass[sim.PassPlay(name)] = profile
	}

	if cfg.GoalLine != nil {
		out.GoalLine = toBucketTable(*cfg.GoalLine)
	}
	if cfg.FieldGoal != nil {
		if len(cfg.FieldGoal.Bands) > 0 {
			bands := make([]sim.FieldGoalBand, len(cfg.FieldGoal.Bands))
			for i, b := range cfg.FieldGoal.Bands {
				bands[i] = sim.FieldGoalBand{MaxDistance: b.MaxDistance, Base: b.Base, SkillScale: b.SkillScale}
			}
			out.FieldGoal.Bands = bands
		}
		if cfg.FieldGoal.BlockProb != nil {
			out.FieldGoal.BlockProb = *cfg.FieldGoal.BlockProb
		}
	}
	if cfg.Punt != nil {
		if len(cfg.Punt.Bands) > 0 {
			bands := make([]sim.PuntBand, len(cfg.Punt.Bands))
			for i, b := range cfg.Punt.Bands {
				bands[i] = sim.PuntBand{MinDistanceToGoal: b.MinDistanceToGoal, Base: b.Base, Spread: b.Spread}
			}
			out.Punt.Bands = bands
		}
		if cfg.Punt.BlockProb != nil {
			out.Punt.BlockProb = *cfg.Punt.BlockProb
		}
		if cfg.Punt.PowerScale != nil {
			out.Punt.PowerScale = *cfg.Punt.PowerScale
		}
	}
	if cfg.ExtraPointProb != nil {
		out.ExtraPointProb = *cfg.ExtraPointProb
	}

	if err := out.Validate(); err != nil {
		return sim.Tables{}, fmt.Errorf("tuning: applied tables invalid: %w", err)
	}
	return out, nil
}

func toBucketTable(t TableCfg) sim.BucketTable {
	cuts := make([]sim.Cut, len(t.Cuts))
	for i, c := range t.Cuts {
		cuts[i] = sim.Cut{Base: c.Base, Floor: c.Floor, Ceil: c.Ceil, Shift: c.Shift}
	}
	ranges := make([]sim.YardRange, len(t.Ranges))
	for i, r := range t.Ranges {
		if len(r) == 2 {
			ranges[i] = sim.YardRange{Min: r[0], Max: r[1]}
		}
	}
	var stretch []float64
	if len(t.Stretch) > 0 {
		stretch = append([]float64(nil), t.Stretch...)
	}
	return sim.BucketTable{Cuts: cuts, Ranges: ranges, Stretch: stretch}
}
