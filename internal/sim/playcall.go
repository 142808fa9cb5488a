package sim

import "github.com/gridironlab/playsim/internal/roster"

// PlayCategory is the top-level offensive call family.
type PlayCategory string

const (
	CategoryRun     PlayCategory = "run"
	CategoryPass    PlayCategory = "pass"
	CategorySpecial PlayCategory = "special_teams"
	CategoryKneel   PlayCategory = "kneel"
	CategorySpike   PlayCategory = "spike"
)

// RunPlay is one of the six run subtypes.
type RunPlay string

const (
	RunInside     RunPlay = "inside"
	RunOutside    RunPlay = "outside"
	RunDraw       RunPlay = "draw"
	RunSweep      RunPlay = "sweep"
	RunQBKeeper   RunPlay = "qb_keeper"
	RunReadOption RunPlay = "read_option"
)

// PassPlay is one of the six pass subtypes.
type PassPlay string

const (
	PassScreen     PassPlay = "screen"
	PassShort      PassPlay = "short"
	PassMedium     PassPlay = "medium"
	PassDeep       PassPlay = "deep"
	PassPlayAction PassPlay = "play_action"
	PassHailMary   PassPlay = "hail_mary"
)

// SpecialPlay is a special-teams subtype.
type SpecialPlay string

const (
	SpecialFieldGoal  SpecialPlay = "field_goal"
	SpecialPunt       SpecialPlay = "punt"
	SpecialExtraPoint SpecialPlay = "extra_point"
)

// DefensivePlay is the opposing scheme applied after base resolution.
type DefensivePlay string

const (
	DefenseBalanced    DefensivePlay = "balanced"
	DefenseBlitz       DefensivePlay = "blitz"
	DefensePass        DefensivePlay = "defend_pass"
	DefenseRun         DefensivePlay = "defend_run"
	DefensePrevent     DefensivePlay = "prevent"
	DefenseStackTheBox DefensivePlay = "stack_the_box"
)

// PlayCall is an already-chosen offensive call. The decision logic that
// produces it lives outside the engine. Participant references are
// optional; nil falls back to the roster's depth chart, and a missing
// player resolves to league-average ratings.
type PlayCall struct {
	Category PlayCategory
	Run      RunPlay
	Pass     PassPlay
	Special  SpecialPlay

	QB       *roster.Player
	Skill    *roster.Player
	Defender *roster.Player
}

// RunCall builds a run play call.
func RunCall(subtype RunPlay) PlayCall {
	return PlayCall{Category: CategoryRun, Run: subtype}
}

// PassCall builds a pass play call.
func PassCall(subtype PassPlay) PlayCall {
	return PlayCall{Category: CategoryPass, Pass: subtype}
}

// SpecialCall builds a special-teams play call.
func SpecialCall(subtype SpecialPlay) PlayCall {
	return PlayCall{Category: CategorySpecial, Special: subtype}
}
