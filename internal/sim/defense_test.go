package sim

import (
	"errors"
	"testing"

	"github.com/gridironlab/playsim/internal/rules"
)

func completedPass(yards int) rules.PlayResult {
	return rules.PlayResult{Type: rules.Pass, Yards: yards}
}

func baseRush(yards int) rules.PlayResult {
	return rules.PlayResult{Type: rules.Rush, Yards: yards}
}

func TestApplyDefensePassThrough(t *testing.T) {
	r := newTestResolver(t, 101)
	state := midfield()

	punt := rules.PlayResult{Type: rules.Punt, Turnover: true, StopClock: true, Yards: 40}
	got, err := r.ApplyDefense(punt, SpecialCall(SpecialPunt), DefenseBlitz, state)
	if err != nil {
		t.Fatal(err)
	}
	if got != punt {
		t.Fatalf("special teams must pass through the modifier untouched")
	}

	pick := rules.PlayResult{Type: rules.Pass, Turnover: true, StopClock: true}
	got, err = r.ApplyDefense(pick, PassCall(PassDeep), DefenseStackTheBox, state)
	if err != nil {
		t.Fatal(err)
	}
	if got != pick {
		t.Fatalf("an existing turnover must pass through untouched")
	}
}

func TestApplyDefenseStackTheBoxVsRun(t *testing.T) {
	r := newTestResolver(t, 103)
	state := midfield()

	counts := map[int]int{}
	const trials = 4000
	for i := 0; i < trials; i++ {
		got, err := r.ApplyDefense(baseRush(10), RunCall(RunInside), DefenseStackTheBox, state)
		if err != nil {
			t.Fatal(err)
		}
		counts[got.Yards]++
	}
	// A 10-yard carry either survives or loses half of it.
	if len(counts) != 2 || counts[5] == 0 || counts[10] == 0 {
		t.Fatalf("stacked box outcomes %v; want a mix of 5 and 10", counts)
	}
	if freq := float64(counts[5]) / trials; freq < 0.70 || freq > 0.80 {
		t.Fatalf("stacked box reduction rate %.3f far from 0.75", freq)
	}
}

func TestApplyDefenseDefendRunVsRun(t *testing.T) {
	r := newTestResolver(t, 107)
	state := midfield()

	reduced := 0
	const trials = 4000
	for i := 0; i < trials; i++ {
		got, err := r.ApplyDefense(baseRush(10), RunCall(RunOutside), DefenseRun, state)
		if err != nil {
			t.Fatal(err)
		}
		switch got.Yards {
		case 6:
			reduced++
		case 10:
		default:
			t.Fatalf("run defense produced %d yards from a 10-yard carry", got.Yards)
		}
	}
	if freq := float64(reduced) / trials; freq < 0.65 || freq > 0.75 {
		t.Fatalf("run defense reduction rate %.3f far from 0.70", freq)
	}
}

func TestApplyDefensePreventCapsBigPlays(t *testing.T) {
	r := newTestResolver(t, 109)
	state := midfield()

	capped := 0
	const trials = 4000
	for i := 0; i < trials; i++ {
		got, err := r.ApplyDefense(completedPass(25), PassCall(PassDeep), DefensePrevent, state)
		if err != nil {
			t.Fatal(err)
		}
		switch {
		case got.Yards == 25:
		case got.Yards >= 8 && got.Yards <= 15:
			capped++
		default:
			t.Fatalf("prevent produced %d yards from a 25-yard completion", got.Yards)
		}
	}
	if freq := float64(capped) / trials; freq < 0.70 || freq > 0.80 {
		t.Fatalf("prevent cap rate %.3f far from 0.75", freq)
	}

	// Underneath stays open: short completions pick up extra yards.
	for i := 0; i < 500; i++ {
		got, err := r.ApplyDefense(completedPass(5), PassCall(PassShort), DefensePrevent, state)
		if err != nil {
			t.Fatal(err)
		}
		if got.Yards < 6 || got.Yards > 8 {
			t.Fatalf("prevent underneath gave %d yards from a 5-yard completion", got.Yards)
		}
	}
}

func TestApplyDefenseBlitzVsPass(t *testing.T) {
	r := newTestResolver(t, 113)
	state := midfield()

	var sacks, gains int
	const trials = 6000
	for i := 0; i < trials; i++ {
		got, err := r.ApplyDefense(completedPass(8), PassCall(PassMedium), DefenseBlitz, state)
		if err != nil {
			t.Fatal(err)
		}
		switch {
		case got.Yards >= -10 && got.Yards <= -3:
			sacks++
		case got.Yards >= 10 && got.Yards <= 15:
			gains++
		default:
			t.Fatalf("blitz produced %d yards from an 8-yard completion", got.Yards)
		}
	}
	if freq := float64(sacks) / trials; freq < 0.25 || freq > 0.35 {
		t.Fatalf("blitz sack rate %.3f far from 0.30", freq)
	}
	if gains == 0 {
		t.Fatalf("beating the blitz never paid off")
	}
}

func TestApplyDefenseDefendPassPicks(t *testing.T) {
	r := newTestResolver(t, 127)
	state := midfield()

	picks := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		got, err := r.ApplyDefense(completedPass(12), PassCall(PassMedium), DefensePass, state)
		if err != nil {
			t.Fatal(err)
		}
		if got.Turnover {
			picks++
			if got.Yards != 0 || !got.StopClock {
				t.Fatalf("converted interception must zero the play and stop the clock: %+v", got)
			}
		}
	}
	if freq := float64(picks) / trials; freq < 0.06 || freq > 0.10 {
		t.Fatalf("pass defense interception rate %.3f far from 0.08", freq)
	}
}

func TestApplyDefenseIncompletionStaysIncomplete(t *testing.T) {
	r := newTestResolver(t, 131)
	state := midfield()
	base := rules.PlayResult{Type: rules.Pass, StopClock: true}

	for _, scheme := range []DefensivePlay{DefenseBalanced, DefenseRun, DefensePrevent, DefenseStackTheBox} {
		got, err := r.ApplyDefense(base, PassCall(PassShort), scheme, state)
		if err != nil {
			t.Fatal(err)
		}
		if got.Yards != 0 || !got.StopClock || got.FirstDown {
			t.Fatalf("%s turned an incompletion into %+v", scheme, got)
		}
	}
}

func TestApplyDefenseRecomputesTouchdown(t *testing.T) {
	r := newTestResolver(t, 137)
	state := midfield()
	state.FieldPosition = 60 // 40 to the goal

	// Every stacked-box deep completion of 38 gains 3 to 10 more, which
	// the clamp turns into exactly the distance to goal.
	for i := 0; i < 500; i++ {
		got, err := r.ApplyDefense(completedPass(38), PassCall(PassDeep), DefenseStackTheBox, state)
		if err != nil {
			t.Fatal(err)
		}
		if got.Yards != 40 {
			t.Fatalf("clamp let %d yards through with 40 to the goal", got.Yards)
		}
		if !got.Score || got.Points != 6 || !got.StopClock {
			t.Fatalf("reaching the goal must score: %+v", got)
		}
	}
}

func TestApplyDefenseDemotesReducedScore(t *testing.T) {
	r := newTestResolver(t, 149)
	state := midfield()
	state.FieldPosition = 60 // 40 to the goal

	// A 40-yard touchdown run that the stacked box cuts in half must
	// come back down to an ordinary first down, not a phantom score.
	base := baseRush(40)
	base.Score = true
	base.Points = 6
	base.StopClock = true

	var reduced, kept int
	for i := 0; i < 2000; i++ {
		got, err := r.ApplyDefense(base, RunCall(RunInside), DefenseStackTheBox, state)
		if err != nil {
			t.Fatal(err)
		}
		switch got.Yards {
		case 20:
			reduced++
			if got.Score || got.Points != 0 {
				t.Fatalf("20-yard gain kept score flags: %+v", got)
			}
			if !got.FirstDown {
				t.Fatalf("20 yards past the sticks must be a first down")
			}
			next := rules.AdvanceDowns(state, got)
			if next.HomeScore != 0 || next.AwayScore != 0 {
				t.Fatalf("short play still put points on the board: %+v", next)
			}
			if next.FieldPosition != 80 {
				t.Fatalf("ball at %d; want the 80", next.FieldPosition)
			}
		case 40:
			kept++
			if !got.Score || got.Points != 6 {
				t.Fatalf("untouched touchdown lost its score flags: %+v", got)
			}
		default:
			t.Fatalf("stacked box produced %d yards from a 40-yard carry", got.Yards)
		}
	}
	if reduced == 0 || kept == 0 {
		t.Fatalf("want both reduced (%d) and untouched (%d) outcomes", reduced, kept)
	}
}

func TestApplyDefenseUnknownScheme(t *testing.T) {
	r := newTestResolver(t, 139)
	state := midfield()

	_, err := r.ApplyDefense(baseRush(4), RunCall(RunInside), DefensivePlay("cover_9"), state)
	if !errors.Is(err, ErrUnknownPlay) {
		t.Fatalf("err = %v; want ErrUnknownPlay", err)
	}
}
