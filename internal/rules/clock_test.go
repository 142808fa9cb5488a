package rules

import (
	"testing"
	"time"
)

func TestTickClockRunningPlayPaysDelay(t *testing.T) {
	state := Kickoff(Home)

	next := TickClock(state, PlayResult{Elapsed: 30 * time.Second})

	want := RegulationQuarter - 55*time.Second // 30s play + 25s delay
	if next.Clock != want {
		t.Fatalf("clock = %v; want %v", next.Clock, want)
	}
}

func TestTickClockStoppedPlaySkipsDelay(t *testing.T) {
	state := Kickoff(Home)

	next := TickClock(state, PlayResult{Elapsed: 30 * time.Second, StopClock: true})

	want := RegulationQuarter - 30*time.Second
	if next.Clock != want {
		t.Fatalf("clock = %v; want %v", next.Clock, want)
	}
}

func TestTickClockNeverNegative(t *testing.T) {
	state := Kickoff(Home)
	state.Clock = 5 * time.Second

	next := TickClock(state, PlayResult{Elapsed: 40 * time.Second})
	if next.Clock != 0 {
		t.Fatalf("clock = %v; want 0", next.Clock)
	}

	next = TickClock(state, PlayResult{Elapsed: 2 * time.Second, StopClock: true})
	if next.Clock != 3*time.Second {
		t.Fatalf("clock = %v; want 3s", next.Clock)
	}
}

func TestEndOfGameDetection(t *testing.T) {
	state := Kickoff(Home)
	state.Quarter = 4
	state.Clock = 30 * time.Second
	state.HomeScore = 21
	state.AwayScore = 17

	next := TickClock(state, PlayResult{Elapsed: 6 * time.Second}) // +25s delay

	if next.Clock != 0 {
		t.Fatalf("clock = %v; want 0", next.Clock)
	}
	if !QuarterEnded(next) {
		t.Fatalf("quarter should have ended")
	}
	if !ShouldEnd(next) {
		t.Fatalf("unequal score at the end of the fourth should end the game")
	}
}

func TestTiedGameNeverEnds(t *testing.T) {
	state := Kickoff(Home)
	state.Quarter = 4
	state.Clock = 0
	state.HomeScore = 14
	state.AwayScore = 14

	if ShouldEnd(state) {
		t.Fatalf("tied game must go to overtime")
	}

	ot := StartNextQuarter(state)
	if ot.Quarter != 5 || ot.Clock != OvertimePeriod {
		t.Fatalf("got quarter=%d clock=%v; want 5 and %v", ot.Quarter, ot.Clock, OvertimePeriod)
	}

	ot.Clock = 0
	if ShouldEnd(ot) {
		t.Fatalf("tied overtime period must continue")
	}
	ot.HomeScore = 17
	if !ShouldEnd(ot) {
		t.Fatalf("decided overtime period must end")
	}
}

func TestEarlyQuarterRollsOver(t *testing.T) {
	state := Kickoff(Home)
	state.Clock = 0
	state.HomeScore = 7

	if ShouldEnd(state) {
		t.Fatalf("first quarter ending is not game over")
	}
	next := StartNextQuarter(state)
	if next.Quarter != 2 || next.Clock != RegulationQuarter {
		t.Fatalf("got quarter=%d clock=%v; want 2 and full clock", next.Quarter, next.Clock)
	}
}

func TestTickClockNoOpWhenOver(t *testing.T) {
	state := Kickoff(Home)
	state.InProgress = false

	next := TickClock(state, PlayResult{Elapsed: 30 * time.Second})
	if next.Clock != state.Clock {
		t.Fatalf("finished game must not tick")
	}
}
