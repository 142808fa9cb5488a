package sim

import (
	"fmt"

	"github.com/gridironlab/playsim/internal/roster"
)

// RunProfile is the complete tuning surface for one run subtype.
type RunProfile struct {
	// Advantage inputs: ball-carrier and line weights against the
	// defensive front, shaped by the archetype profile.
	SkillWeight float64
	LineWeight  float64
	Advantage   AdvantageProfile

	CarrierPos  roster.Position
	CarrierAttr roster.Attribute

	Table BucketTable

	TimeMin int // seconds
	TimeMax int

	FumbleProb    float64
	StopClockProb float64 // out-of-bounds finish
}

// PassProfile is the complete tuning surface for one pass subtype.
// Bucket 0 of Table is always the incompletion bucket (zero yards).
type PassProfile struct {
	QBWeight       float64
	ReceiverWeight float64
	Advantage      AdvantageProfile

	TargetPos  roster.Position
	TargetAttr roster.Attribute

	Table BucketTable

	TimeMin int
	TimeMax int

	IntProb            float64
	CompletionStopProb float64

	// Fixed subtypes (Hail Mary) ignore the advantage model entirely.
	Fixed bool
}

// FieldGoalBand is one distance band of the kick success table.
type FieldGoalBand struct {
	MaxDistance int     // inclusive upper bound in yards; last band is open
	Base        float64 // success probability for a league-average kicker
	SkillScale  float64 // probability per rating point above/below 50
}

// FieldGoalTable keys success probability by kick distance
// (100 - fieldPosition + 17).
type FieldGoalTable struct {
	Bands     []FieldGoalBand
	BlockProb float64
}

// PuntBand gives base punt distance and spread for a distance-to-goal band.
type PuntBand struct {
	MinDistanceToGoal int // band applies when distance-to-goal >= this
	Base              int
	Spread            int
}

// PuntTable keys punt distance by field band.
type PuntTable struct {
	Bands      []PuntBand
	BlockProb  float64
	PowerScale float64 // extra yards per punter power point above 50
}

// Tables bundles every tunable constant in the engine. DefaultTables
// returns the canonical realism-adjusted pass; the tuning package can
// override individual entries from YAML without code changes.
type Tables struct {
	Run  map[RunPlay]RunProfile
	Pass map[PassPlay]PassProfile

	// GoalLine replaces the subtype table inside the opponent 5.
	GoalLine BucketTable

	FieldGoal FieldGoalTable
	Punt      PuntTable

	ExtraPointProb float64
}

// Validate checks every table once so sampling never runs on a broken
// configuration.
func (t Tables) Validate() error {
	for sub, p := range t.Run {
		if err := p.Table.Validate(); err != nil {
			return fmt.Errorf("run %s: %w", sub, err)
		}
		if err := validateProb(p.FumbleProb); err != nil {
			return fmt.Errorf("run %s fumble: %w", sub, err)
		}
		if err := validateProb(p.StopClockProb); err != nil {
			return fmt.Errorf("run %s stop clock: %w", sub, err)
		}
		if p.TimeMin <= 0 || p.TimeMax < p.TimeMin {
			return fmt.Errorf("run %s: bad time band [%d, %d]", sub, p.TimeMin, p.TimeMax)
		}
	}
	for sub, p := range t.Pass {
		if err := p.Table.Validate(); err != nil {
			return fmt.Errorf("pass %s: %w", sub, err)
		}
		if err := validateProb(p.IntProb); err != nil {
			return fmt.Errorf("pass %s interception: %w", sub, err)
		}
		if err := validateProb(p.CompletionStopProb); err != nil {
			return fmt.Errorf("pass %s stop clock: %w", sub, err)
		}
		if p.TimeMin <= 0 || p.TimeMax < p.TimeMin {
			return fmt.Errorf("pass %s: bad time band [%d, %d]", sub, p.TimeMin, p.TimeMax)
		}
	}
	if err := t.GoalLine.Validate(); err != nil {
		return fmt.Errorf("goal line: %w", err)
	}
	if len(t.FieldGoal.Bands) == 0 {
		return fmt.Errorf("%w: no field goal bands", ErrInvalidTable)
	}
	for i, b := range t.FieldGoal.Bands {
		if err := validateProb(b.Base); err != nil {
			return fmt.Errorf("field goal band %d: %w", i, err)
		}
	}
	if len(t.Punt.Bands) == 0 {
		return fmt.Errorf("%w: no punt bands", ErrInvalidTable)
	}
	if err := validateProb(t.ExtraPointProb); err != nil {
		return fmt.Errorf("extra point: %w", err)
	}
	return nil
}

// DefaultTables returns the canonical tuning constants.
func DefaultTables() Tables {
	return Tables{
		Run: map[RunPlay]RunProfile{
			RunInside: {
				SkillWeight: 1.0, LineWeight: 1.3,
				Advantage:   AdvantageProfile{Scale: 2.5, Bound: 20},
				CarrierPos:  roster.RunningBack,
				CarrierAttr: roster.Carrying,
				Table: BucketTable{
					Cuts: []Cut{
						{Base: 10, Floor: 4, Ceil: 18, Shift: 0.3},
						{Base: 22, Floor: 12, Ceil: 30, Shift: 0.4},
						{Base: 65, Floor: 50, Ceil: 75, Shift: 0.5},
						{Base: 88, Floor: 80, Ceil: 95, Shift: 0.4},
						{Base: 97, Floor: 93, Ceil: 99, Shift: 0.2},
					},
					Ranges:  []YardRange{{-4, -1}, {0, 0}, {1, 3}, {4, 7}, {8, 15}, {16, 40}},
					Stretch: []float64{0, 0, 0, 0.1, 0.3, 0.5},
				},
				TimeMin: 25, TimeMax: 38,
				FumbleProb: 0.020, StopClockProb: 0.15,
			},
			RunOutside: {
				SkillWeight: 1.2, LineWeight: 1.0,
				Advantage:   AdvantageProfile{Scale: 2.2, Bound: 25},
				CarrierPos:  roster.RunningBack,
				CarrierAttr: roster.Speed,
				Table: BucketTable{
					Cuts: []Cut{
						{Base: 14, Floor: 6, Ceil: 22, Shift: 0.3},
						{Base: 26, Floor: 15, Ceil: 34, Shift: 0.4},
						{Base: 60, Floor: 45, Ceil: 72, Shift: 0.5},
						{Base: 85, Floor: 76, Ceil: 93, Shift: 0.4},
						{Base: 96, Floor: 91, Ceil: 99, Shift: 0.2},
					},
					Ranges:  []YardRange{{-5, -1}, {0, 0}, {1, 4}, {5, 9}, {10, 18}, {19, 45}},
					Stretch: []float64{0, 0, 0, 0.1, 0.3, 0.6},
				},
				TimeMin: 25, TimeMax: 40,
				FumbleProb: 0.020, StopClockProb: 0.25,
			},
			RunDraw: {
				SkillWeight: 1.1, LineWeight: 1.1,
				Advantage:   AdvantageProfile{Scale: 2.4, Bound: 20},
				CarrierPos:  roster.RunningBack,
				CarrierAttr: roster.Carrying,
				Table: BucketTable{
					Cuts: []Cut{
						{Base: 12, Floor: 5, Ceil: 20, Shift: 0.3},
						{Base: 30, Floor: 18, Ceil: 38, Shift: 0.4},
						{Base: 62, Floor: 48, Ceil: 74, Shift: 0.5},
						{Base: 86, Floor: 78, Ceil: 94, Shift: 0.4},
						{Base: 97, Floor: 92, Ceil: 99, Shift: 0.2},
					},
					Ranges:  []YardRange{{-6, -1}, {0, 0}, {1, 4}, {5, 8}, {9, 16}, {17, 35}},
					Stretch: []float64{0, 0, 0, 0.1, 0.3, 0.5},
				},
				TimeMin: 28, TimeMax: 40,
				FumbleProb: 0.020, StopClockProb: 0.15,
			},
			RunSweep: {
				SkillWeight: 1.3, LineWeight: 1.0,
				Advantage:   AdvantageProfile{Scale: 2.0, Bound: 25},
				CarrierPos:  roster.RunningBack,
				CarrierAttr: roster.Speed,
				Table: BucketTable{
					Cuts: []Cut{
						{Base: 16, Floor: 8, Ceil: 24, Shift: 0.3},
						{Base: 28, Floor: 17, Ceil: 36, Shift: 0.4},
						{Base: 58, Floor: 44, Ceil: 70, Shift: 0.5},
						{Base: 84, Floor: 75, Ceil: 92, Shift: 0.4},
						{Base: 95, Floor: 90, Ceil: 99, Shift: 0.2},
					},
					Ranges:  []YardRange{{-7, -2}, {0, 0}, {1, 4}, {5, 9}, {10, 19}, {20, 50}},
					Stretch: []float64{0, 0, 0, 0.1, 0.4, 0.7},
				},
				TimeMin: 28, TimeMax: 42,
				FumbleProb: 0.020, StopClockProb: 0.25,
			},
			RunQBKeeper: {
				SkillWeight: 1.2, LineWeight: 1.0,
				Advantage:   AdvantageProfile{Scale: 2.8, Bound: 15},
				CarrierPos:  roster.Quarterback,
				CarrierAttr: roster.Speed,
				Table: BucketTable{
					Cuts: []Cut{
						{Base: 10, Floor: 4, Ceil: 16, Shift: 0.2},
						{Base: 24, Floor: 15, Ceil: 32, Shift: 0.3},
						{Base: 70, Floor: 58, Ceil: 80, Shift: 0.4},
						{Base: 92, Floor: 85, Ceil: 97, Shift: 0.3},
						{Base: 99, Floor: 96, Ceil: 100, Shift: 0.1},
					},
					Ranges:  []YardRange{{-3, -1}, {0, 0}, {1, 3}, {4, 6}, {7, 12}, {13, 25}},
					Stretch: []float64{0, 0, 0, 0.1, 0.2, 0.3},
				},
				TimeMin: 30, TimeMax: 45,
				FumbleProb: 0.017, StopClockProb: 0.10,
			},
			RunReadOption: {
				SkillWeight: 1.3, LineWeight: 1.0,
				Advantage:   AdvantageProfile{Scale: 2.2, Bound: 25},
				CarrierPos:  roster.RunningBack,
				CarrierAttr: roster.Speed,
				Table: BucketTable{
					Cuts: []Cut{
						{Base: 13, Floor: 6, Ceil: 21, Shift: 0.3},
						{Base: 24, Floor: 14, Ceil: 32, Shift: 0.4},
						{Base: 60, Floor: 46, Ceil: 72, Shift: 0.5},
						{Base: 86, Floor: 77, Ceil: 94, Shift: 0.4},
						{Base: 96, Floor: 91, Ceil: 99, Shift: 0.2},
					},
					Ranges:  []YardRange{{-5, -1}, {0, 0}, {1, 4}, {5, 8}, {9, 17}, {18, 40}},
					Stretch: []float64{0, 0, 0, 0.1, 0.3, 0.6},
				},
				TimeMin: 24, TimeMax: 38,
				FumbleProb: 0.025, StopClockProb: 0.18,
			},
		},
		Pass: map[PassPlay]PassProfile{
			PassScreen: {
				QBWeight: 1.0, ReceiverWeight: 1.2,
				Advantage:  AdvantageProfile{Scale: 2.6, Bound: 14},
				TargetPos:  roster.RunningBack,
				TargetAttr: roster.Catching,
				Table: BucketTable{
					Cuts: []Cut{
						{Base: 25, Floor: 14, Ceil: 40, Shift: 0.6},
						{Base: 33, Floor: 22, Ceil: 46, Shift: 0.3},
						{Base: 75, Floor: 62, Ceil: 85, Shift: 0.4},
						{Base: 93, Floor: 86, Ceil: 98, Shift: 0.3},
					},
					Ranges:  []YardRange{{0, 0}, {-5, -1}, {2, 6}, {7, 14}, {15, 35}},
					Stretch: []float64{0, 0, 0.1, 0.3, 0.5},
				},
				TimeMin: 20, TimeMax: 32,
				IntProb: 0.0067, CompletionStopProb: 0.40,
			},
			PassShort: {
				QBWeight: 1.2, ReceiverWeight: 1.0,
				Advantage:  AdvantageProfile{Scale: 2.5, Bound: 15},
				TargetPos:  roster.WideReceiver,
				TargetAttr: roster.Catching,
				Table: BucketTable{
					Cuts: []Cut{
						{Base: 30, Floor: 15, Ceil: 45, Shift: 0.6},
						{Base: 80, Floor: 68, Ceil: 90, Shift: 0.4},
						{Base: 94, Floor: 88, Ceil: 98, Shift: 0.2},
					},
					Ranges:  []YardRange{{0, 0}, {3, 7}, {8, 14}, {15, 30}},
					Stretch: []float64{0, 0.1, 0.3, 0.5},
				},
				TimeMin: 18, TimeMax: 30,
				IntProb: 0.010, CompletionStopProb: 0.40,
			},
			PassMedium: {
				QBWeight: 1.2, ReceiverWeight: 1.0,
				Advantage:  AdvantageProfile{Scale: 2.0, Bound: 20},
				TargetPos:  roster.WideReceiver,
				TargetAttr: roster.Catching,
				Table: BucketTable{
					Cuts: []Cut{
						{Base: 38, Floor: 22, Ceil: 54, Shift: 0.7},
						{Base: 75, Floor: 62, Ceil: 87, Shift: 0.4},
						{Base: 92, Floor: 85, Ceil: 97, Shift: 0.2},
					},
					Ranges:  []YardRange{{0, 0}, {6, 12}, {13, 20}, {21, 40}},
					Stretch: []float64{0, 0.1, 0.3, 0.6},
				},
				TimeMin: 22, TimeMax: 35,
				IntProb: 0.028, CompletionStopProb: 0.40,
			},
			PassDeep: {
				QBWeight: 1.0, ReceiverWeight: 1.2,
				Advantage:  AdvantageProfile{Scale: 1.8, Bound: 25},
				TargetPos:  roster.WideReceiver,
				TargetAttr: roster.Speed,
				Table: BucketTable{
					Cuts: []Cut{
						{Base: 52, Floor: 35, Ceil: 68, Shift: 0.8},
						{Base: 80, Floor: 68, Ceil: 90, Shift: 0.4},
						{Base: 94, Floor: 88, Ceil: 98, Shift: 0.2},
					},
					Ranges:  []YardRange{{0, 0}, {12, 20}, {21, 35}, {36, 65}},
					Stretch: []float64{0, 0.2, 0.4, 0.8},
				},
				TimeMin: 25, TimeMax: 40,
				IntProb: 0.055, CompletionStopProb: 0.40,
			},
			PassPlayAction: {
				QBWeight: 1.1, ReceiverWeight: 1.1,
				Advantage:  AdvantageProfile{Scale: 2.0, Bound: 22},
				TargetPos:  roster.TightEnd,
				TargetAttr: roster.Catching,
				Table: BucketTable{
					Cuts: []Cut{
						{Base: 35, Floor: 20, Ceil: 50, Shift: 0.7},
						{Base: 72, Floor: 60, Ceil: 84, Shift: 0.4},
						{Base: 90, Floor: 83, Ceil: 96, Shift: 0.2},
					},
					Ranges:  []YardRange{{0, 0}, {5, 11}, {12, 22}, {23, 50}},
					Stretch: []float64{0, 0.1, 0.4, 0.7},
				},
				TimeMin: 26, TimeMax: 40,
				IntProb: 0.033, CompletionStopProb: 0.40,
			},
			PassHailMary: {
				Fixed:      true,
				TargetPos:  roster.WideReceiver,
				TargetAttr: roster.Catching,
				Table: BucketTable{
					Cuts: []Cut{
						{Base: 83, Floor: 83, Ceil: 83},
						{Base: 95, Floor: 95, Ceil: 95},
					},
					Ranges: []YardRange{{0, 0}, {25, 45}, {46, 65}},
				},
				TimeMin: 8, TimeMax: 15,
				IntProb: 0.20, CompletionStopProb: 1.0,
			},
		},
		GoalLine: BucketTable{
			Cuts: []Cut{
				{Base: 20, Floor: 10, Ceil: 30, Shift: 0.4},
				{Base: 45, Floor: 32, Ceil: 58, Shift: 0.5},
				{Base: 85, Floor: 75, Ceil: 93, Shift: 0.4},
			},
			Ranges: []YardRange{{-2, -1}, {0, 0}, {1, 2}, {3, 5}},
		},
		FieldGoal: FieldGoalTable{
			Bands: []FieldGoalBand{
				{MaxDistance: 30, Base: 0.93, SkillScale: 0.002},
				{MaxDistance: 40, Base: 0.85, SkillScale: 0.003},
				{MaxDistance: 50, Base: 0.72, SkillScale: 0.004},
				{MaxDistance: 60, Base: 0.55, SkillScale: 0.006},
				{MaxDistance: 0, Base: 0.30, SkillScale: 0.008}, // open band
			},
			BlockProb: 0.015,
		},
		Punt: PuntTable{
			Bands: []PuntBand{
				{MinDistanceToGoal: 60, Base: 44, Spread: 8},
				{MinDistanceToGoal: 45, Base: 38, Spread: 7},
				{MinDistanceToGoal: 0, Base: 30, Spread: 5},
			},
			BlockProb:  0.010,
			PowerScale: 0.125,
		},
		ExtraPointProb: 0.94,
	}
}
