package interval

import (
	"sort"
)

// Entry represents a single interval, with 0-based coordinates.
type Entry struct {
	Start0 PosType
	End    PosType
}

// NewUnion returns the endpoint sequence of the union of entries, merging
// touching/overlapping intervals and eliminating empty ones in the process.
// entries is sorted in place.
func NewUnion(entries []Entry) []PosType {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Start0 < entries[j].Start0
	})
	endpoints := make([]PosType, 0, 2*len(entries))
	for _, entry := range entries {
		if entry.End <= entry.Start0 {
			continue
		}
		n := len(endpoints)
		if n != 0 && entry.Start0 <= endpoints[n-1] {
			// Intervals overlap or touch, merge them.
			if entry.End > endpoints[n-1] {
				endpoints[n-1] = entry.End
			}
			continue
		}
		endpoints = append(endpoints, entry.Start0, entry.End)
	}
	return endpoints
}

// CoveredBases returns the number of positions in the interval-union.
func CoveredBases(endpoints []PosType) int64 {
	var (
		total      int64
		start, end PosType
	)
	us := NewUnionScanner(endpoints)
	for us.Scan(&start, &end) {
		total += int64(end - start)
	}
	return total
}
