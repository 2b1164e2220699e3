package ipmap

import (
	"testing"

	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
)

func TestClaim(t *testing.T) {
	cases := map[string]struct {
		newSuccessEntries map[string]labels.Set
		newFailedEntries  map[string]labels.Set
		expectedEntries   int
	}{
		"Normal": {
			newSuccessEntries: map[string]labels.Set{
				"10.0.0.10-10.0.0.20": {"purpose": "dhcp"},
				"10.0.1.0/24":         {"purpose": "static"},
				"10.0.0.100":          {},
			},
			newFailedEntries: map[string]labels.Set{
				"not-a-range": {},
			},
			expectedEntries: 3,
		},
		"DuplicateRange": {
			newSuccessEntries: map[string]labels.Set{
				"10.0.0.0/24": {},
			},
			newFailedEntries: map[string]labels.Set{
				"10.0.0.0-10.0.0.255": {},
			},
			expectedEntries: 1,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := New()

			for rng, l := range tc.newSuccessEntries {
				err := r.Claim(rng, l)
				assert.NoError(t, err)
			}
			for rng, l := range tc.newFailedEntries {
				err := r.Claim(rng, l)
				assert.Error(t, err)
			}
			for rng := range tc.newSuccessEntries {
				if !r.Has(rng) {
					t.Errorf("%s expecting success claim entry: %s\n", name, rng)
				}
			}
			assert.Equal(t, tc.expectedEntries, r.Count())
		})
	}
}

func TestRelease(t *testing.T) {
	r := New()
	assert.NoError(t, r.Claim("10.0.0.0/24", labels.Set{}))
	assert.NoError(t, r.Release("10.0.0.0-10.0.0.255"))
	assert.Error(t, r.Release("10.0.0.0/24"))
	assert.Equal(t, 0, r.Count())
}

func TestFind(t *testing.T) {
	cases := map[string]struct {
		claims         map[string]labels.Set
		find           string
		expectedRange  string
		expectedLabels labels.Set
		expectedErr    bool
	}{
		"Overlap": {
			claims: map[string]labels.Set{
				"10.0.0.0/25":   {"pool": "a"},
				"10.0.0.128/25": {"pool": "b"},
			},
			find:           "10.0.0.200",
			expectedRange:  "10.0.0.128-10.0.0.255",
			expectedLabels: labels.Set{"pool": "b"},
		},
		"NoOverlap": {
			claims: map[string]labels.Set{
				"10.0.0.0/25": {"pool": "a"},
			},
			find:        "10.0.1.0/24",
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := New()
			for rng, l := range tc.claims {
				assert.NoError(t, r.Claim(rng, l))
			}
			rng, l, err := r.Find(tc.find)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedRange, rng.String())
			assert.Equal(t, tc.expectedLabels, l)
		})
	}
}

func TestCovers(t *testing.T) {
	cases := map[string]struct {
		claims []string
		query  string
		want   bool
	}{
		"AdjacentRanges": {
			claims: []string{"10.0.0.0-10.0.0.127", "10.0.0.128-10.0.0.255"},
			query:  "10.0.0.0/24",
			want:   true,
		},
		"Gap": {
			claims: []string{"10.0.0.0-10.0.0.100", "10.0.0.200-10.0.0.255"},
			query:  "10.0.0.0/24",
			want:   false,
		},
		"SingleSpanning": {
			claims: []string{"10.0.0.0/16"},
			query:  "10.0.1.0/24",
			want:   true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := New()
			for _, rng := range tc.claims {
				assert.NoError(t, r.Claim(rng, labels.Set{}))
			}
			assert.Equal(t, tc.want, r.Covers(tc.query))
		})
	}
}

func TestGetByLabel(t *testing.T) {
	r := New()
	assert.NoError(t, r.Claim("10.0.0.0/24", labels.Set{"purpose": "dhcp"}))
	assert.NoError(t, r.Claim("10.0.1.0/24", labels.Set{"purpose": "static"}))
	assert.NoError(t, r.Claim("10.0.2.0-10.0.2.127", labels.Set{"purpose": "dhcp"}))

	routes := r.GetByLabel(labels.SelectorFromSet(labels.Set{"purpose": "dhcp"}))
	// 10.0.2.0-10.0.2.127 renders as a single /25
	assert.Equal(t, 2, len(routes))

	routes = r.GetAll()
	assert.Equal(t, 3, len(routes))
}

func TestGet(t *testing.T) {
	r := New()
	assert.NoError(t, r.Claim("10.0.0.0/24", labels.Set{"purpose": "dhcp"}))

	l, err := r.Get("10.0.0.0-10.0.0.255")
	assert.NoError(t, err)
	assert.Equal(t, "dhcp", l["purpose"])

	// overlap is not equivalence
	_, err = r.Get("10.0.0.0/25")
	assert.Error(t, err)
}
