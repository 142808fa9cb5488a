package tuning

import (
	"fmt"
	"strings"
)

// ValidateRaw checks semantic constraints of a RawConfig before it is
// applied, accumulating every violation into one error.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	for name, run := range cfg.Run {
		prefix := "run." + name
		if run == nil {
			continue
		}
		errs = append(errs, validateTable(prefix+".table", run.Table)...)
		errs = append(errs, validateTimeBand(prefix, run.TimeMin, run.TimeMax)...)
		errs = append(errs, validateProbField(prefix+".fumble_prob", run.FumbleProb)...)
		errs = append(errs, validateProbField(prefix+".stop_clock_prob", run.StopClockProb)...)
	}
	for name, pass := range cfg.Pass {
		prefix := "pass." + name
		if pass == nil {
			continue
		}
		errs = append(errs, validateTable(prefix+".table", pass.Table)...)
		errs = append(errs, validateTimeBand(prefix, pass.TimeMin, pass.TimeMax)...)
		errs = append(errs, validateProbField(prefix+".int_prob", pass.IntProb)...)
		errs = append(errs, validateProbField(prefix+".completion_stop_prob", pass.CompletionStopProb)...)
	}

	errs = append(errs, validateTable("goal_line", cfg.GoalLine)...)

	if cfg.FieldGoal != nil {
		for i, b := range cfg.FieldGoal.Bands {
			if b.Base <= 0 || b.Base >= 1 {
				errs = append(errs, fmt.Sprintf("field_goal.bands[%d].base must be in (0,1)", i))
			}
			if b.SkillScale < 0 {
				errs = append(errs, fmt.Sprintf("field_goal.bands[%d].skill_scale must be >= 0", i))
			}
		}
		errs = append(errs, validateProbField("field_goal.block_prob", cfg.FieldGoal.BlockProb)...)
	}
	if cfg.Punt != nil {
		for i, b := range cfg.Punt.Bands {
			if b.Base <= 0 {
				errs = append(errs, fmt.Sprintf("punt.bands[%d].base must be > 0", i))
			}
			if b.Spread < 0 {
				errs = append(errs, fmt.Sprintf("punt.bands[%d].spread must be >= 0", i))
			}
		}
		errs = append(errs, validateProbField("punt.block_prob", cfg.Punt.BlockProb)...)
	}
	if cfg.ExtraPointProb != nil && (*cfg.ExtraPointProb <= 0 || *cfg.ExtraPointProb >= 1) {
		errs = append(errs, "extra_point_prob must be in (0,1)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("tuning validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateTable(prefix string, t *TableCfg) []string {
	if t == nil {
		return nil
	}
	var errs []string
	if len(t.Ranges) != len(t.Cuts)+1 {
		errs = append(errs, fmt.Sprintf("%s: need exactly one more range than cuts", prefix))
	}
	if len(t.Stretch) != 0 && len(t.Stretch) != len(t.Ranges) {
		errs = append(errs, fmt.Sprintf("%s: stretch length must match ranges", prefix))
	}
	prev := 0
	for i, c := range t.Cuts {
		if c.Floor < 0 || c.Ceil > 100 || c.Floor > c.Ceil {
			errs = append(errs, fmt.Sprintf("%s.cuts[%d]: clamp [%d,%d] invalid", prefix, i, c.Floor, c.Ceil))
		}
		if c.Base < c.Floor || c.Base > c.Ceil {
			errs = append(errs, fmt.Sprintf("%s.cuts[%d]: base %d outside clamp", prefix, i, c.Base))
		}
		if c.Base < prev {
			errs = append(errs, fmt.Sprintf("%s.cuts[%d]: base %d not ascending", prefix, i, c.Base))
		}
		prev = c.Base
	}
	for i, r := range t.Ranges {
		if len(r) != 2 {
			errs = append(errs, fmt.Sprintf("%s.ranges[%d]: must be [min, max]", prefix, i))
			continue
		}
		if r[0] > r[1] {
			errs = append(errs, fmt.Sprintf("%s.ranges[%d]: min above max", prefix, i))
		}
	}
	return errs
}

func validateTimeBand(prefix string, lo, hi *int) []string {
	var errs []string
	if lo != nil && *lo <= 0 {
		errs = append(errs, prefix+".time_min must be > 0")
	}
	if lo != nil && hi != nil && *hi < *lo {
		errs = append(errs, prefix+".time_max must be >= time_min")
	}
	return errs
}

func validateProbField(name string, p *float64) []string {
	if p == nil {
		return nil
	}
	if *p < 0 || *p > 1 {
		return []string{name + " must be in [0,1]"}
	}
	return nil
}
