package sim

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidTable = errors.New("invalid outcome table")

// YardRange is an inclusive signed yardage interval for one bucket.
type YardRange struct {
	Min int
	Max int
}

// Cut is one cumulative threshold separating adjacent buckets of a
// BucketTable. The adjusted cut is Base shifted down by the advantage
// times Shift (positive advantage moves probability mass into later,
// better buckets), then clamped to [Floor, Ceil] so pathological inputs
// cannot empty or invert the ordering.
type Cut struct {
	Base  int
	Floor int
	Ceil  int
	Shift float64
}

// BucketTable is the engine's core idiom: a uniform roll in [0, 100)
// mapped through cumulative thresholds into a yardage bucket. The same
// shape covers every run and pass subtype, the goal-line override and
// (without advantage shifting) special teams; only the constants differ.
//
// Ranges has one more entry than Cuts: a roll below Cuts[i] lands in
// bucket i, and anything at or past the last cut lands in the final
// bucket. Stretch, when present, widens bucket i's ceiling by
// advantage*Stretch[i] yards (and narrows it for negative advantage).
type BucketTable struct {
	Cuts    []Cut
	Ranges  []YardRange
	Stretch []float64
}

// Validate checks the table's structural constraints once, at
// construction or tuning-load time, so sampling never has to.
func (t BucketTable) Validate() error {
	if len(t.Ranges) != len(t.Cuts)+1 {
		return fmt.Errorf("%w: %d ranges for %d cuts", ErrInvalidTable, len(t.Ranges), len(t.Cuts))
	}
	if len(t.Stretch) != 0 && len(t.Stretch) != len(t.Ranges) {
		return fmt.Errorf("%w: %d stretch factors for %d buckets", ErrInvalidTable, len(t.Stretch), len(t.Ranges))
	}
	prev := 0
	for i, c := range t.Cuts {
		if c.Base < c.Floor || c.Base > c.Ceil {
			return fmt.Errorf("%w: cut %d base %d outside [%d, %d]", ErrInvalidTable, i, c.Base, c.Floor, c.Ceil)
		}
		if c.Floor < 0 || c.Ceil > 100 {
			return fmt.Errorf("%w: cut %d clamp [%d, %d] outside [0, 100]", ErrInvalidTable, i, c.Floor, c.Ceil)
		}
		if c.Base < prev {
			return fmt.Errorf("%w: cut %d base %d below previous %d", ErrInvalidTable, i, c.Base, prev)
		}
		prev = c.Base
	}
	for i, r := range t.Ranges {
		if r.Min > r.Max {
			return fmt.Errorf("%w: bucket %d range inverted [%d, %d]", ErrInvalidTable, i, r.Min, r.Max)
		}
	}
	return nil
}

// Sample maps a roll in [0, 100) to a bucket and a yardage draw under
// the given advantage. rng is only consumed for the in-bucket yardage
// pick, never for the bucket selection, so a fixed roll pins the bucket
// in tests.
func (t BucketTable) Sample(roll int, advantage float64, rng RandomSource) (bucket, yards int, err error) {
	if err := t.Validate(); err != nil {
		return 0, 0, err
	}

	bucket = len(t.Cuts)
	prev := 0
	for i, c := range t.Cuts {
		cut := clampInt(c.Base-roundAdj(advantage*c.Shift), c.Floor, c.Ceil)
		if cut < prev {
			cut = prev // repair ordering after independent clamps
		}
		prev = cut
		if roll < cut {
			bucket = i
			break
		}
	}

	r := t.Ranges[bucket]
	hi := r.Max
	if len(t.Stretch) == len(t.Ranges) {
		hi += roundAdj(advantage * t.Stretch[bucket])
		if hi < r.Min {
			hi = r.Min
		}
	}

	return bucket, between(rng, r.Min, hi), nil
}

func roundAdj(v float64) int {
	return int(math.Round(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
