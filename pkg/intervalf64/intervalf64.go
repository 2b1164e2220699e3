// Package intervalf64 adapts the core interval map to half-open float64
// intervals [Min, Max).
package intervalf64

import (
	"fmt"

	"github.com/henderiw/intervaltable/pkg/interval"
)

// Interval is the half-open range [Min, Max) over float64 endpoints.
// NaN endpoints are not ordered and behavior on them is undefined, as is
// an interval with Min > Max.
type Interval struct {
	Min float64
	Max float64
}

// NewInterval returns the half-open interval [min, max).
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Point returns the zero-length interval sitting at v.
func Point(v float64) Interval {
	return Interval{Min: v, Max: v}
}

func (r Interval) String() string {
	return fmt.Sprintf("[%g,%g)", r.Min, r.Max)
}

func compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

type cmp struct{}

// Cmp is the strict half-open comparator: a zero-length interval does not
// intersect at its boundary, only inside a range strictly spanning its point.
func Cmp() interval.Comparator[Interval] { return cmp{} }

func (cmp) CompareMins(a, b Interval) int  { return compare(a.Min, b.Min) }
func (cmp) CompareMaxes(a, b Interval) int { return compare(a.Max, b.Max) }
func (cmp) CompareMinToMax(a, b Interval) int {
	return compare(a.Min, b.Max)
}

type pointCmp struct{ cmp }

// PointCmp treats a zero-length interval as containing its own point. See
// the interval64 package for the boundary cases where the two comparators
// disagree.
func PointCmp() interval.Comparator[Interval] { return pointCmp{} }

func (pointCmp) CompareMinToMax(a, b Interval) int {
	c := compare(a.Min, b.Max)
	if c == 0 && b.Min == b.Max {
		return -1
	}
	return c
}

// New returns an interval map over half-open float64 intervals using
// PointCmp, so zero-length keys work as point probes.
func New[V any]() interval.Map[Interval, V] {
	return interval.New[Interval, V](PointCmp())
}

// NewStrict returns a map using the strict half-open comparator.
func NewStrict[V any]() interval.Map[Interval, V] {
	return interval.New[Interval, V](Cmp())
}
