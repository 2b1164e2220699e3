package interval64

import (
	"testing"

	"github.com/tj/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "[1,5)", NewInterval(1, 5).String())
	assert.Equal(t, "[4,4)", Point(4).String())
}

func TestPointProbe(t *testing.T) {
	m := New[string]()
	m.Put(NewInterval(1, 5), "a")
	m.Put(NewInterval(3, 8), "b")
	m.Put(NewInterval(10, 12), "c")

	// a point probe intersects every interval spanning it
	keys := m.Intersecting(Point(4)).Keys()
	assert.Equal(t, []Interval{{Min: 1, Max: 5}, {Min: 3, Max: 8}}, keys)
	assert.False(t, m.HasIntersection(Point(9)))
	assert.True(t, m.HasIntersection(Point(10)))
}

func TestSupersetSubset(t *testing.T) {
	m := New[string]()
	m.Put(NewInterval(1, 5), "a")
	m.Put(NewInterval(3, 8), "b")
	m.Put(NewInterval(10, 12), "c")

	// nothing stored reaches 9, so nothing contains [4,9)
	assert.False(t, m.HasSuperset(NewInterval(4, 9)))

	v, ok := m.GetSuperset(NewInterval(3, 4))
	assert.True(t, ok)
	assert.Equal(t, "a", v) // in-order first container
	assert.Equal(t, []Interval{{Min: 1, Max: 5}, {Min: 3, Max: 8}},
		m.Supersets(NewInterval(3, 4)).Keys())

	assert.Equal(t, []Interval{{Min: 1, Max: 5}, {Min: 3, Max: 8}},
		m.Subsets(NewInterval(0, 9)).Keys())
	_, ok = m.GetSubset(NewInterval(6, 9))
	assert.False(t, ok)
}

func TestCoversUnion(t *testing.T) {
	m := New[int]()
	m.Put(NewInterval(0, 3), 1)
	m.Put(NewInterval(3, 6), 2)
	m.Put(NewInterval(6, 9), 3)

	// touching intervals close the gap without overlapping
	assert.True(t, m.Covers(NewInterval(0, 9)))
	assert.False(t, m.HasSuperset(NewInterval(0, 9)))

	m = New[int]()
	m.Put(NewInterval(0, 3), 1)
	m.Put(NewInterval(5, 9), 2)
	assert.False(t, m.Covers(NewInterval(0, 9)))
}

func TestDuplicateKeyRemoval(t *testing.T) {
	m := New[int]()
	m.Put(NewInterval(2, 4), 1)
	m.Put(NewInterval(2, 4), 2)

	v := m.Equivalent(NewInterval(2, 4))
	assert.Equal(t, 2, v.Size())

	iter := v.Iterator()
	assert.True(t, iter.Next())
	assert.NoError(t, iter.Remove())

	assert.Equal(t, 1, v.Size())
	assert.Equal(t, 1, m.Size())
	assert.True(t, m.Has(NewInterval(2, 4)))
}

// The strict comparator and the point comparator disagree only on boundary
// ties against a zero-length interval.
func TestStrictVersusPoint(t *testing.T) {
	cases := map[string]struct {
		key        Interval
		query      Interval
		wantStrict bool
		wantPoint  bool
	}{
		"PointInside": {
			key:        NewInterval(1, 5),
			query:      Point(4),
			wantStrict: true,
			wantPoint:  true,
		},
		"PointOnStart": {
			key:        NewInterval(4, 5),
			query:      Point(4),
			wantStrict: false,
			wantPoint:  true,
		},
		"PointOnEnd": {
			key:        NewInterval(1, 4),
			query:      Point(4),
			wantStrict: false,
			wantPoint:  false,
		},
		"TouchingNonDegenerate": {
			key:        NewInterval(1, 4),
			query:      NewInterval(4, 8),
			wantStrict: false,
			wantPoint:  false,
		},
		"DegenerateKeyProbed": {
			key:        Point(4),
			query:      NewInterval(4, 8),
			wantStrict: false,
			wantPoint:  true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			strict := NewStrict[int]()
			strict.Put(tc.key, 0)
			assert.Equal(t, tc.wantStrict, strict.HasIntersection(tc.query))

			point := New[int]()
			point.Put(tc.key, 0)
			assert.Equal(t, tc.wantPoint, point.HasIntersection(tc.query))
		})
	}
}

func TestDescendingView(t *testing.T) {
	m := New[int]()
	for i, iv := range []Interval{{Min: 1, Max: 5}, {Min: 3, Max: 8}, {Min: 10, Max: 12}} {
		m.Put(iv, i)
	}
	assert.Equal(t, []Interval{{Min: 10, Max: 12}, {Min: 3, Max: 8}, {Min: 1, Max: 5}},
		m.All().Descending().Keys())
}
