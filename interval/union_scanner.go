package interval

import (
	"math"
)

// This file includes support datatypes and functions for representing an
// interval-union as an []int32 containing a sorted sequence of
// interval-endpoints, and iterating over the intervals.
//
// For example, given the intervals
//   [5, 15)
//   [7, 17)
//   [20, 25)
// the interval-union would be
//   [5, 17) U [20, 25)
// so the sorted sequence of endpoints would be
//   {5, 17, 20, 25}.
//
// UnionScanner can be used to iterate over the merged intervals:
//   us := NewUnionScanner(endpoints)
//   var start, end PosType
//   for us.Scan(&start, &end) {
//     ...
//   }

// PosType is the type used to represent interval coordinates.
type PosType int32

// PosTypeMax is the maximum value that can be represented by a PosType.
const PosTypeMax = math.MaxInt32

// UnionScanner supports iteration over an interval-union.
// Invariant: endpointIdx is even, and endpoints[endpointIdx] is the start of
// the next interval, if any.
type UnionScanner struct {
	endpoints   []PosType
	endpointIdx int
}

// NewUnionScanner returns a UnionScanner initialized to the first interval.
func NewUnionScanner(endpoints []PosType) UnionScanner {
	return UnionScanner{endpoints: endpoints}
}

// Scan stores the next interval in start and end, returning false once every
// interval has been visited.
func (us *UnionScanner) Scan(start *PosType, end *PosType) bool {
	if us.endpointIdx+1 >= len(us.endpoints) {
		return false
	}
	*start = us.endpoints[us.endpointIdx]
	*end = us.endpoints[us.endpointIdx+1]
	us.endpointIdx += 2
	return true
}
