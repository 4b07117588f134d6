package scheduling

import (
	"sort"
	"time"
)

// TimeInterval is a half-open time range [Start, End). A zero-length
// interval is degenerate and never overlaps anything.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether the two intervals share any time. Touching
// endpoints do not overlap, so an appointment ending at 10:00 does not
// conflict with one starting at 10:00.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// IsValid reports whether the interval is well-formed (start <= end).
func (iv TimeInterval) IsValid() bool {
	return !iv.End.Before(iv.Start)
}

// MergeIntervals normalizes a set of intervals into a sorted sequence of
// disjoint runs. Touching or overlapping intervals coalesce into one run,
// which keeps overlap testing a single pass over a short list.
func MergeIntervals(intervals []TimeInterval) []TimeInterval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]TimeInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []TimeInterval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// OverlapsAny reports whether the candidate overlaps any member of a
// merged, sorted interval list. Members at or past the candidate's end
// cannot overlap, so the scan exits early.
func OverlapsAny(candidate TimeInterval, merged []TimeInterval) bool {
	for _, iv := range merged {
		if !iv.Start.Before(candidate.End) {
			break
		}
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}
