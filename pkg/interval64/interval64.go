// Package interval64 adapts the core interval map to half-open int64
// intervals [Min, Max).
package interval64

import (
	"fmt"

	"github.com/henderiw/intervaltable/pkg/interval"
)

// Interval is the half-open range [Min, Max). An interval with Min == Max
// is zero length; whether it still counts as containing its own point is
// decided by the comparator the map was built with, see Cmp and PointCmp.
// An interval with Min > Max is invalid and behavior on one is undefined.
type Interval struct {
	Min int64
	Max int64
}

// NewInterval returns the half-open interval [min, max).
func NewInterval(min, max int64) Interval {
	return Interval{Min: min, Max: max}
}

// Point returns the zero-length interval sitting at v.
func Point(v int64) Interval {
	return Interval{Min: v, Max: v}
}

func (r Interval) String() string {
	return fmt.Sprintf("[%d,%d)", r.Min, r.Max)
}

func compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

type cmp struct{}

// Cmp is the strict half-open comparator: a zero-length interval is empty
// and does not intersect at its boundary, not even an interval starting or
// ending exactly on its point. It still intersects intervals whose range
// strictly spans the point.
func Cmp() interval.Comparator[Interval] { return cmp{} }

func (cmp) CompareMins(a, b Interval) int  { return compare(a.Min, b.Min) }
func (cmp) CompareMaxes(a, b Interval) int { return compare(a.Max, b.Max) }
func (cmp) CompareMinToMax(a, b Interval) int {
	return compare(a.Min, b.Max)
}

type pointCmp struct{ cmp }

// PointCmp treats a zero-length interval as containing its own point: the
// point probe [4,4) intersects [1,5) and also [4,5), whose start it sits
// on. The two comparators disagree only on boundary ties against a
// zero-length interval; ordering and superset/subset tests are identical.
func PointCmp() interval.Comparator[Interval] { return pointCmp{} }

func (pointCmp) CompareMinToMax(a, b Interval) int {
	c := compare(a.Min, b.Max)
	if c == 0 && b.Min == b.Max {
		// a starts on the point of a zero-length interval
		return -1
	}
	return c
}

// New returns an interval map over half-open int64 intervals using
// PointCmp, so zero-length keys work as point probes.
func New[V any]() interval.Map[Interval, V] {
	return interval.New[Interval, V](PointCmp())
}

// NewStrict returns a map using the strict half-open comparator.
func NewStrict[V any]() interval.Map[Interval, V] {
	return interval.New[Interval, V](Cmp())
}
