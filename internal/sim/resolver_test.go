package sim

import (
	"errors"
	"testing"
	"time"

	"github.com/gridironlab/playsim/internal/roster"
	"github.com/gridironlab/playsim/internal/rules"
)

func testRoster() *roster.Roster {
	return &roster.Roster{
		Players: map[roster.Position][]*roster.Player{
			roster.Quarterback:  {{Name: "V. Ramos", Pos: roster.Quarterback, Slots: [3]int{74, 70, 55}}},
			roster.RunningBack:  {{Name: "D. Cole", Pos: roster.RunningBack, Slots: [3]int{68, 72, 60}}},
			roster.WideReceiver: {{Name: "T. Ames", Pos: roster.WideReceiver, Slots: [3]int{75, 78, 66}}},
			roster.TightEnd:     {{Name: "B. Okafor", Pos: roster.TightEnd, Slots: [3]int{70, 58, 55}}},
			roster.Cornerback:   {{Name: "M. Ito", Pos: roster.Cornerback, Slots: [3]int{64, 70, 55}}},
			roster.Kicker:       {{Name: "J. Barr", Pos: roster.Kicker, Slots: [3]int{70, 64, 0}}},
			roster.Punter:       {{Name: "L. Ortiz", Pos: roster.Punter, Slots: [3]int{66, 58, 0}}},
		},
		OffensiveLineRating: 62,
		DefensiveLineRating: 58,
		OffCoordinator:      70,
		DefCoordinator:      55,
	}
}

func midfield() rules.GameState {
	state := rules.Kickoff(rules.Home)
	state.FieldPosition = 50
	return state
}

func newTestResolver(t *testing.T, seed uint64) *Resolver {
	t.Helper()
	r, err := NewResolver(DefaultTables(), NewSeededRNG(seed))
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestResolveRunBounds(t *testing.T) {
	r := newTestResolver(t, 7)
	offense, defense := testRoster(), testRoster()
	state := midfield()

	for i := 0; i < 5000; i++ {
		result, err := r.ResolveBase(RunCall(RunInside), offense, defense, state)
		if err != nil {
			t.Fatal(err)
		}
		if result.Type != rules.Rush {
			t.Fatalf("run resolved as %s", result.Type)
		}
		if result.Yards > 50 || result.Yards < -50 {
			t.Fatalf("run yardage %d left the field", result.Yards)
		}
		if result.Elapsed < 25*time.Second || result.Elapsed > 38*time.Second {
			t.Fatalf("inside run elapsed %v outside its time band", result.Elapsed)
		}
		if result.Turnover && !result.StopClock {
			t.Fatalf("fumble must stop the clock")
		}
		if result.Primary != "D. Cole" {
			t.Fatalf("carrier attribution %q; want the starting back", result.Primary)
		}
	}
}

func TestResolvePassIncompletion(t *testing.T) {
	r := newTestResolver(t, 11)
	offense, defense := testRoster(), testRoster()
	state := midfield()

	var complete, incomplete int
	for i := 0; i < 5000; i++ {
		result, err := r.ResolveBase(PassCall(PassShort), offense, defense, state)
		if err != nil {
			t.Fatal(err)
		}
		if result.Turnover {
			continue
		}
		if result.Yards == 0 {
			incomplete++
			if !result.StopClock {
				t.Fatalf("incompletion must stop the clock")
			}
			if result.FirstDown || result.Score {
				t.Fatalf("incompletion cannot advance or score")
			}
		} else {
			complete++
			if result.Yards < 3 {
				t.Fatalf("completed short pass for %d yards below table minimum", result.Yards)
			}
		}
	}
	if complete == 0 || incomplete == 0 {
		t.Fatalf("expected both completions (%d) and incompletions (%d)", complete, incomplete)
	}
}

func TestResolveInterception(t *testing.T) {
	r := newTestResolver(t, 13)
	offense, defense := testRoster(), testRoster()
	state := midfield()

	picks := 0
	const trials = 3000
	for i := 0; i < trials; i++ {
		result, err := r.ResolveBase(PassCall(PassHailMary), offense, defense, state)
		if err != nil {
			t.Fatal(err)
		}
		if !result.Turnover {
			continue
		}
		picks++
		if result.Yards != 0 {
			t.Fatalf("interception returned %d yards; the ball changes hands at the spot", result.Yards)
		}
		if !result.StopClock {
			t.Fatalf("turnover must stop the clock")
		}
	}
	freq := float64(picks) / trials
	if freq < 0.15 || freq > 0.25 {
		t.Fatalf("hail mary interception rate %.3f far from 0.20", freq)
	}
}

func TestResolveGoalLineCapsYardage(t *testing.T) {
	r := newTestResolver(t, 17)
	offense, defense := testRoster(), testRoster()
	state := midfield()
	state.FieldPosition = 98

	for i := 0; i < 3000; i++ {
		result, err := r.ResolveBase(RunCall(RunSweep), offense, defense, state)
		if err != nil {
			t.Fatal(err)
		}
		if result.Yards > 2 {
			t.Fatalf("gain of %d past the goal line", result.Yards)
		}
		if result.Yards == 2 && !result.Turnover {
			if !result.Score || result.Points != 6 || !result.StopClock {
				t.Fatalf("reaching the goal line must score a touchdown: %+v", result)
			}
		}
	}
}

func TestResolveFieldGoalShortRange(t *testing.T) {
	r := newTestResolver(t, 19)
	offense := testRoster()
	state := midfield()
	state.FieldPosition = 92 // 25-yard attempt

	made := 0
	const trials = 20000
	for i := 0; i < trials; i++ {
		result, err := r.ResolveBase(SpecialCall(SpecialFieldGoal), offense, nil, state)
		if err != nil {
			t.Fatal(err)
		}
		if !result.StopClock {
			t.Fatalf("a kick attempt always stops the clock")
		}
		if result.Score {
			made++
			if result.Points != 3 || result.Turnover {
				t.Fatalf("made kick must be worth 3 and keep no possession flag: %+v", result)
			}
		} else if !result.Turnover {
			t.Fatalf("missed or blocked kick must surrender the ball")
		}
	}
	if freq := float64(made) / trials; freq < 0.85 {
		t.Fatalf("short field goal success %.3f; want at least 0.85", freq)
	}
}

func TestResolvePuntAlwaysFlips(t *testing.T) {
	r := newTestResolver(t, 23)
	offense := testRoster()
	state := midfield()
	state.FieldPosition = 30

	for i := 0; i < 3000; i++ {
		result, err := r.ResolveBase(SpecialCall(SpecialPunt), offense, nil, state)
		if err != nil {
			t.Fatal(err)
		}
		if !result.Turnover || !result.StopClock {
			t.Fatalf("punt must change possession and stop the clock: %+v", result)
		}
		if result.Yards < -8 || result.Yards >= 70 {
			t.Fatalf("punt net %d yards implausible from the 30", result.Yards)
		}
	}
}

func TestResolvePuntTouchback(t *testing.T) {
	r := newTestResolver(t, 29)
	offense := testRoster()
	state := midfield()
	state.FieldPosition = 75 // every clean kick reaches the end zone

	for i := 0; i < 2000; i++ {
		result, err := r.ResolveBase(SpecialCall(SpecialPunt), offense, nil, state)
		if err != nil {
			t.Fatal(err)
		}
		// A blocked punt goes backward; anything forward must be the
		// touchback spot, the receiver's own 20.
		if result.Yards > 0 && result.Yards != 5 {
			t.Fatalf("punt from the 75 netted %d; touchback places the ball 5 ahead", result.Yards)
		}
	}
}

func TestResolveKneelAndSpike(t *testing.T) {
	r := newTestResolver(t, 31)
	offense, defense := testRoster(), testRoster()
	state := midfield()

	for i := 0; i < 200; i++ {
		kneel, err := r.ResolveBase(PlayCall{Category: CategoryKneel}, offense, defense, state)
		if err != nil {
			t.Fatal(err)
		}
		if kneel.Yards < -1 || kneel.Yards > 0 {
			t.Fatalf("kneel yards %d", kneel.Yards)
		}
		if kneel.Elapsed < 38*time.Second || kneel.Elapsed > 44*time.Second {
			t.Fatalf("kneel burned %v", kneel.Elapsed)
		}
		if kneel.StopClock || kneel.Score {
			t.Fatalf("kneel keeps the clock moving and never scores")
		}

		spike, err := r.ResolveBase(PlayCall{Category: CategorySpike}, offense, defense, state)
		if err != nil {
			t.Fatal(err)
		}
		if spike.Yards != 0 || !spike.StopClock {
			t.Fatalf("spike must gain nothing and stop the clock: %+v", spike)
		}
		if spike.Elapsed > 3*time.Second {
			t.Fatalf("spike burned %v", spike.Elapsed)
		}
	}
}

func TestResolveExtraPoint(t *testing.T) {
	r := newTestResolver(t, 37)
	offense := testRoster()
	state := midfield()

	made := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		result, err := r.ResolveBase(SpecialCall(SpecialExtraPoint), offense, nil, state)
		if err != nil {
			t.Fatal(err)
		}
		if result.Score {
			made++
			if result.Points != 1 {
				t.Fatalf("extra point worth %d", result.Points)
			}
		}
	}
	if freq := float64(made) / trials; freq < 0.90 || freq > 0.99 {
		t.Fatalf("extra point rate %.3f far from expected", freq)
	}
}

func TestResolveUnknownSubtype(t *testing.T) {
	r := newTestResolver(t, 41)
	offense, defense := testRoster(), testRoster()
	state := midfield()

	cases := []PlayCall{
		RunCall("wishbone"),
		PassCall("flea_flicker"),
		SpecialCall("onside_kick"),
	}
	for _, call := range cases {
		if _, err := r.ResolveBase(call, offense, defense, state); !errors.Is(err, ErrUnknownPlay) {
			t.Fatalf("%s %q: err = %v; want ErrUnknownPlay", call.Category, string(call.Run)+string(call.Pass)+string(call.Special), err)
		}
	}
	if _, err := r.ResolveBase(PlayCall{}, offense, defense, state); !errors.Is(err, ErrNoCategory) {
		t.Fatalf("empty call: err = %v; want ErrNoCategory", err)
	}
}

func TestResolveMissingPlayersUseDefaults(t *testing.T) {
	r := newTestResolver(t, 43)
	state := midfield()

	// Empty rosters on both sides: every rating falls back to the league
	// average and resolution still succeeds.
	result, err := r.Resolve(PassCall(PassMedium), DefenseBalanced, &roster.Roster{}, &roster.Roster{}, state)
	if err != nil {
		t.Fatal(err)
	}
	if result.Type != rules.Pass {
		t.Fatalf("resolved as %s", result.Type)
	}
	if result.Primary != "" || result.Target != "" {
		t.Fatalf("no players were named, attribution should be empty: %+v", result)
	}
}
