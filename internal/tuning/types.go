// Package tuning loads outcome-table overrides from YAML so the
// engine's thresholds and yardage ranges can be re-tuned without code
// changes. Files merge default -> league -> team, each layer overriding
// only what it names.
package tuning

// RawConfig mirrors the YAML schema. Pointer fields distinguish "not
// set" from zero values during merging.
type RawConfig struct {
	Version string `yaml:"version"`

	Run  map[string]*RunCfg  `yaml:"run,omitempty"`
	Pass map[string]*PassCfg `yaml:"pass,omitempty"`

	GoalLine  *TableCfg     `yaml:"goal_line,omitempty"`
	FieldGoal *FieldGoalCfg `yaml:"field_goal,omitempty"`
	Punt      *PuntCfg      `yaml:"punt,omitempty"`

	ExtraPointProb *float64 `yaml:"extra_point_prob,omitempty"`

	Notes string `yaml:"notes,omitempty"`
}

// TableCfg replaces a bucket table wholesale when present.
type TableCfg struct {
	Cuts    []CutCfg  `yaml:"cuts"`
	Ranges  [][]int   `yaml:"ranges"` // [min, max] per bucket
	Stretch []float64 `yaml:"stretch,omitempty"`
}

type CutCfg struct {
	Base  int     `yaml:"base"`
	Floor int     `yaml:"floor"`
	Ceil  int     `yaml:"ceil"`
	Shift float64 `yaml:"shift,omitempty"`
}

// RunCfg overrides one run subtype's tunables.
type RunCfg struct {
	Table         *TableCfg `yaml:"table,omitempty"`
	TimeMin       *int      `yaml:"time_min,omitempty"`
	TimeMax       *int      `yaml:"time_max,omitempty"`
	FumbleProb    *float64  `yaml:"fumble_prob,omitempty"`
	StopClockProb *float64  `yaml:"stop_clock_prob,omitempty"`
}

// PassCfg overrides one pass subtype's tunables.
type PassCfg struct {
	Table              *TableCfg `yaml:"table,omitempty"`
	TimeMin            *int      `yaml:"time_min,omitempty"`
	TimeMax            *int      `yaml:"time_max,omitempty"`
	IntProb            *float64  `yaml:"int_prob,omitempty"`
	CompletionStopProb *float64  `yaml:"completion_stop_prob,omitempty"`
}

type FieldGoalCfg struct {
	Bands     []FGBandCfg `yaml:"bands,omitempty"`
	BlockProb *float64    `yaml:"block_prob,omitempty"`
}

type FGBandCfg struct {
	MaxDistance int     `yaml:"max_distance"`
	Base        float64 `yaml:"base"`
	SkillScale  float64 `yaml:"skill_scale"`
}

type PuntCfg struct {
	Bands      []PuntBandCfg `yaml:"bands,omitempty"`
	BlockProb  *float64      `yaml:"block_prob,omitempty"`
	PowerScale *float64      `yaml:"power_scale,omitempty"`
}

type PuntBandCfg struct {
	MinDistanceToGoal int `yaml:"min_distance_to_goal"`
	Base              int `yaml:"base"`
	Spread            int `yaml:"spread"`
}
