// Package interval implements the half-open time interval algebra used to
// compute availability windows. Operations work internally in minutes since
// midnight and never mutate their inputs.
package interval

import (
	"fmt"
	"sort"

	"rehearsal-service/internal/timeutil"
)

// TimeInterval is a half-open window [Start, End) within a single day.
// Construct through New so the ordering invariant always holds.
type TimeInterval struct {
	Start timeutil.MilitaryTime
	End   timeutil.MilitaryTime
}

// New builds a TimeInterval and rejects empty or inverted windows. Inputs
// are never swapped or clamped; a bad pair is the caller's bug to surface.
func New(start, end timeutil.MilitaryTime) (TimeInterval, error) {
	if start >= end {
		return TimeInterval{}, fmt.Errorf("Start time %s must be before end time %s", start.Clock(), end.Clock())
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Duration returns the window length in minutes.
func (iv TimeInterval) Duration() int {
	return iv.End.Minutes() - iv.Start.Minutes()
}

// Contains reports whether t falls inside the half-open window.
func (iv TimeInterval) Contains(t timeutil.MilitaryTime) bool {
	return t >= iv.Start && t < iv.End
}

func (iv TimeInterval) String() string {
	return iv.Start.Format12() + " - " + iv.End.Format12()
}

// Union merges a set of intervals into the minimal sorted, non-overlapping
// cover. Zero-duration inputs are dropped and intervals that touch end to
// start are coalesced.
func Union(ivs []TimeInterval) []TimeInterval {
	work := make([]TimeInterval, 0, len(ivs))
	for _, iv := range ivs {
		if iv.Start < iv.End {
			work = append(work, iv)
		}
	}
	if len(work) == 0 {
		return nil
	}

	sort.Slice(work, func(i, j int) bool {
		if work[i].Start != work[j].Start {
			return work[i].Start < work[j].Start
		}
		return work[i].End < work[j].End
	})

	merged := []TimeInterval{work[0]}
	for _, iv := range work[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Intersect returns the overlap of two intervals, or nothing when they are
// disjoint or merely touch.
func Intersect(a, b TimeInterval) []TimeInterval {
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := a.End
	if b.End < end {
		end = b.End
	}
	if start >= end {
		return nil
	}
	return []TimeInterval{{Start: start, End: end}}
}

// IntersectSets returns the pairwise overlap of two interval sets as a
// sorted, non-overlapping set.
func IntersectSets(a, b []TimeInterval) []TimeInterval {
	var out []TimeInterval
	for _, x := range a {
		for _, y := range b {
			out = append(out, Intersect(x, y)...)
		}
	}
	return Union(out)
}

// Subtract removes the union of removals from base, returning the surviving
// fragments in order. Each removal can split a fragment in two, trim an
// edge, or swallow it whole.
func Subtract(base TimeInterval, removals []TimeInterval) []TimeInterval {
	remaining := []TimeInterval{base}
	for _, r := range Union(removals) {
		var next []TimeInterval
		for _, piece := range remaining {
			if r.End <= piece.Start || r.Start >= piece.End {
				next = append(next, piece)
				continue
			}
			if r.Start > piece.Start {
				next = append(next, TimeInterval{Start: piece.Start, End: r.Start})
			}
			if r.End < piece.End {
				next = append(next, TimeInterval{Start: r.End, End: piece.End})
			}
		}
		remaining = next
		if len(remaining) == 0 {
			break
		}
	}
	return remaining
}
