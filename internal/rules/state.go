package rules

import "time"

// Side identifies one of the two teams in a game.
type Side int

const (
	Home Side = iota
	Away
)

func (s Side) Opponent() Side {
	if s == Home {
		return Away
	}
	return Home
}

func (s Side) String() string {
	if s == Home {
		return "home"
	}
	return "away"
}

// PlayType classifies a resolved play for downstream rules.
type PlayType string

const (
	Rush        PlayType = "rush"
	Pass        PlayType = "pass"
	Punt        PlayType = "punt"
	FieldGoal   PlayType = "field_goal"
	ExtraPoint  PlayType = "extra_point"
	KickoffPlay PlayType = "kickoff"
	Kneel       PlayType = "kneel"
	Spike       PlayType = "spike"
)

// PlayResult is the outcome of one resolved play. It is produced once and
// consumed immediately by the down and clock state machines.
//
// Attribution fields (Primary, Target, Defender) are informational only
// and never affect state transitions.
type PlayResult struct {
	Type      PlayType
	Yards     int // signed; losses are negative
	Elapsed   time.Duration
	Turnover  bool
	Score     bool
	FirstDown bool
	StopClock bool
	Points    int // 0, 1, 2, 3 or 6

	Primary  string
	Target   string
	Defender string
}

// Game clock lengths.
const (
	RegulationQuarter = 15 * time.Minute
	OvertimePeriod    = 10 * time.Minute
)

// GameState is the authoritative situation between plays. It is an
// immutable value: the state machines return a replacement, they never
// mutate in place.
//
// FieldPosition uses a single convention everywhere: 0 is the offense's
// own goal line, 100 the opponent's goal line, and gains add.
type GameState struct {
	HomeScore int
	AwayScore int

	Quarter int // >4 means overtime
	Clock   time.Duration

	Down          int // 1..4 for any externally observable state
	YardsToGo     int
	FieldPosition int // 0..100
	Possession    Side

	HomeTimeouts int
	AwayTimeouts int

	InProgress bool
}

// Kickoff returns the canonical opening state: 0-0, first quarter, full
// clock, 1st-and-10 from the receiving team's 25.
func Kickoff(receiving Side) GameState {
	return GameState{
		Quarter:       1,
		Clock:         RegulationQuarter,
		Down:          1,
		YardsToGo:     10,
		FieldPosition: 25,
		Possession:    receiving,
		HomeTimeouts:  3,
		AwayTimeouts:  3,
		InProgress:    true,
	}
}

// Leader returns the side currently ahead, or false when tied.
func (s GameState) Leader() (Side, bool) {
	switch {
	case s.HomeScore > s.AwayScore:
		return Home, true
	case s.AwayScore > s.HomeScore:
		return Away, true
	}
	return Home, false
}

func clampFieldPosition(fp int) int {
	if fp < 0 {
		return 0
	}
	if fp > 100 {
		return 100
	}
	return fp
}
