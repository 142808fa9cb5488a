// Package roster exposes player ratings to the play-resolution engine.
//
// Every player carries three generic numeric slots; which slot answers a
// named capability depends on the player's position. The mapping is a
// plain lookup table so the resolution is a pure function: unknown
// positions, capabilities or missing players all resolve to the league
// average instead of erroring, because missing roster data must never
// abort a simulation.
package roster

// DefaultRating is the league-average rating returned for any unknown
// position/attribute combination. All advantage math is centered on it.
const DefaultRating = 50

// Position is a player's roster position.
type Position string

const (
	Quarterback   Position = "QB"
	RunningBack   Position = "RB"
	WideReceiver  Position = "WR"
	TightEnd      Position = "TE"
	OffensiveLine Position = "OL"
	DefensiveLine Position = "DL"
	Linebacker    Position = "LB"
	Cornerback    Position = "CB"
	Safety        Position = "S"
	Kicker        Position = "K"
	Punter        Position = "P"
)

// Attribute names a capability the engine may ask about.
type Attribute string

const (
	Accuracy     Attribute = "Accuracy"
	ArmStrength  Attribute = "Arm Strength"
	Speed        Attribute = "Speed"
	Carrying     Attribute = "Carrying"
	Catching     Attribute = "Catching"
	RouteRunning Attribute = "Route Running"
	RunBlocking  Attribute = "Run Blocking"
	PassBlocking Attribute = "Pass Blocking"
	Tackling     Attribute = "Tackling"
	Coverage     Attribute = "Coverage"
	PassRush     Attribute = "Pass Rush"
	KickAccuracy Attribute = "Kick Accuracy"
	KickPower    Attribute = "Kick Power"
)

// slotIndex maps position x capability to one of the three generic
// rating slots. Combinations absent from the table resolve to the
// default rating.
var slotIndex = map[Position]map[Attribute]int{
	Quarterback: {
		Accuracy:    0,
		ArmStrength: 1,
		Speed:       2,
	},
	RunningBack: {
		Carrying: 0,
		Speed:    1,
		Catching: 2,
	},
	WideReceiver: {
		Catching:     0,
		Speed:        1,
		RouteRunning: 2,
	},
	TightEnd: {
		Catching:    0,
		RunBlocking: 1,
		Speed:       2,
	},
	OffensiveLine: {
		RunBlocking:  0,
		PassBlocking: 1,
	},
	DefensiveLine: {
		PassRush: 0,
		Tackling: 1,
	},
	Linebacker: {
		Tackling: 0,
		Coverage: 1,
		Speed:    2,
	},
	Cornerback: {
		Coverage: 0,
		Speed:    1,
		Tackling: 2,
	},
	Safety: {
		Coverage: 0,
		Tackling: 1,
		Speed:    2,
	},
	Kicker: {
		KickAccuracy: 0,
		KickPower:    1,
	},
	Punter: {
		KickPower:    0,
		KickAccuracy: 1,
	},
}

// Player is an opaque bundle of ratings produced by an external
// generator. Slots hold the three generic 0-100 values.
type Player struct {
	Name  string
	Pos   Position
	Slots [3]int
}

// Rating answers a named capability for the player, defaulting to the
// league average when the player is nil or the combination is unknown.
// Values are clamped to 0..100 so a malformed slot cannot leak out.
func (p *Player) Rating(attr Attribute) int {
	if p == nil {
		return DefaultRating
	}
	attrs, ok := slotIndex[p.Pos]
	if !ok {
		return DefaultRating
	}
	idx, ok := attrs[attr]
	if !ok || idx < 0 || idx >= len(p.Slots) {
		return DefaultRating
	}
	return clampRating(p.Slots[idx])
}

// Roster is a collection of players plus the aggregate unit ratings the
// engine consumes directly.
type Roster struct {
	Players map[Position][]*Player

	// Aggregate line ratings; 0 means unknown and resolves to default.
	OffensiveLineRating int
	DefensiveLineRating int

	// Coordinator ratings feed the coaching bonus; 0 resolves to default.
	OffCoordinator int
	DefCoordinator int
}

// Starter returns the first listed player at the position, or nil.
func (r *Roster) Starter(pos Position) *Player {
	if r == nil {
		return nil
	}
	players := r.Players[pos]
	if len(players) == 0 {
		return nil
	}
	return players[0]
}

// Rating resolves the starter at the position and answers the attribute,
// falling back to the default for empty depth charts.
func (r *Roster) Rating(pos Position, attr Attribute) int {
	return r.Starter(pos).Rating(attr)
}

// LineRating returns the aggregate offensive line rating.
func (r *Roster) LineRating() int {
	if r == nil || r.OffensiveLineRating == 0 {
		return DefaultRating
	}
	return clampRating(r.OffensiveLineRating)
}

// FrontRating returns the aggregate defensive front rating.
func (r *Roster) FrontRating() int {
	if r == nil || r.DefensiveLineRating == 0 {
		return DefaultRating
	}
	return clampRating(r.DefensiveLineRating)
}

// Coordinator returns the coordinator rating for the given phase.
func (r *Roster) Coordinator(offense bool) int {
	if r == nil {
		return DefaultRating
	}
	v := r.DefCoordinator
	if offense {
		v = r.OffCoordinator
	}
	if v == 0 {
		return DefaultRating
	}
	return clampRating(v)
}

func clampRating(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
