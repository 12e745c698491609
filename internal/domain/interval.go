package domain

import "sort"

// Interval is a half-open [Start, End) time range in minutes from midnight.
// It is the single primitive shared by schedule subtraction, reservation
// subtraction and the capacity overlap check.
type Interval struct {
	Start int
	End   int
}

// IsEmpty returns true if the interval contains no time
func (i Interval) IsEmpty() bool {
	return i.End <= i.Start
}

// Length returns the interval length in minutes (0 for empty intervals)
func (i Interval) Length() int {
	if i.IsEmpty() {
		return 0
	}
	return i.End - i.Start
}

// Overlaps reports whether two intervals actually share time.
// Touching boundaries (one ends exactly where the other starts) do not count.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// Clip bounds the interval to the given limits
func (i Interval) Clip(bounds Interval) Interval {
	clipped := i
	if clipped.Start < bounds.Start {
		clipped.Start = bounds.Start
	}
	if clipped.End > bounds.End {
		clipped.End = bounds.End
	}
	return clipped
}

// MergeIntervals unions overlapping and touching intervals into a sorted
// disjoint set. Empty intervals are dropped.
func MergeIntervals(intervals []Interval) []Interval {
	sorted := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsEmpty() {
			sorted = append(sorted, iv)
		}
	}
	if len(sorted) == 0 {
		return nil
	}

	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Start != sorted[b].Start {
			return sorted[a].Start < sorted[b].Start
		}
		return sorted[a].End < sorted[b].End
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
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

// SubtractIntervals removes cuts from base and returns the remaining free
// intervals, sorted by start time. Cuts are merged first so overlapping
// blocks cannot split a base interval incorrectly. A cut strictly inside a
// base interval splits it in two.
func SubtractIntervals(base, cuts []Interval) []Interval {
	mergedCuts := MergeIntervals(cuts)

	result := make([]Interval, 0, len(base))
	for _, b := range MergeIntervals(base) {
		segments := []Interval{b}

		for _, cut := range mergedCuts {
			next := make([]Interval, 0, len(segments)+1)
			for _, seg := range segments {
				if !seg.Overlaps(cut) {
					next = append(next, seg)
					continue
				}
				if left := (Interval{Start: seg.Start, End: cut.Start}); !left.IsEmpty() {
					next = append(next, left)
				}
				if right := (Interval{Start: cut.End, End: seg.End}); !right.IsEmpty() {
					next = append(next, right)
				}
			}
			segments = next
		}

		result = append(result, segments...)
	}

	return result
}
