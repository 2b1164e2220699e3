package ipmap

import (
	"fmt"
	"net/netip"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/intervaltable/pkg/interval"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

// IPMap indexes claimed IP ranges in an interval map, so claims can be
// looked up by overlap and coverage rather than exact address. Ranges are
// inclusive on both ends, as netipx ranges are; the comparator below makes
// adjacent ranges count as touching for coverage but not as overlapping.
type IPMap interface {
	Get(rng string) (labels.Set, error)
	Claim(rng string, l labels.Set) error
	Release(rng string) error

	// Find returns the first claimed range overlapping rng.
	Find(rng string) (netipx.IPRange, labels.Set, error)
	// Covers reports whether the claimed ranges jointly span rng.
	Covers(rng string) bool

	Count() int
	Has(rng string) bool

	GetAll() table.Routes
	GetByLabel(selector labels.Selector) table.Routes
}

func New() IPMap {
	return &ipMap{
		m: interval.New[netipx.IPRange, labels.Set](rangeCmp{}),
	}
}

type ipMap struct {
	m interval.Map[netipx.IPRange, labels.Set]
}

// rangeCmp orders inclusive IP ranges. The min-to-max relation returns 0
// when a range starts exactly one address after another ends: adjacent,
// which closes a coverage gap without making the two ranges overlap.
type rangeCmp struct{}

func (rangeCmp) CompareMins(a, b netipx.IPRange) int {
	return a.From().Compare(b.From())
}

func (rangeCmp) CompareMaxes(a, b netipx.IPRange) int {
	return a.To().Compare(b.To())
}

func (rangeCmp) CompareMinToMax(a, b netipx.IPRange) int {
	if a.From().Compare(b.To()) <= 0 {
		return -1
	}
	if next := b.To().Next(); next.IsValid() && a.From() == next {
		return 0
	}
	return 1
}

func (r *ipMap) Get(rng string) (labels.Set, error) {
	key, err := parseRange(rng)
	if err != nil {
		return nil, err
	}
	l, ok := r.m.Get(key)
	if !ok {
		return nil, fmt.Errorf("no claim found for range %s", rng)
	}
	return l, nil
}

func (r *ipMap) Claim(rng string, l labels.Set) error {
	key, err := parseRange(rng)
	if err != nil {
		return err
	}
	if r.m.Has(key) {
		return fmt.Errorf("claim failed, range %s already claimed", rng)
	}
	r.m.Put(key, l)
	return nil
}

func (r *ipMap) Release(rng string) error {
	key, err := parseRange(rng)
	if err != nil {
		return err
	}
	if _, ok := r.m.Remove(key); !ok {
		return fmt.Errorf("release failed, range %s not claimed", rng)
	}
	return nil
}

func (r *ipMap) Find(rng string) (netipx.IPRange, labels.Set, error) {
	key, err := parseRange(rng)
	if err != nil {
		return netipx.IPRange{}, nil, err
	}
	iter := r.m.Intersecting(key).Iterator()
	if !iter.Next() {
		return netipx.IPRange{}, nil, fmt.Errorf("no claim overlaps range %s", rng)
	}
	return iter.Key(), iter.Value(), nil
}

func (r *ipMap) Covers(rng string) bool {
	key, err := parseRange(rng)
	if err != nil {
		return false
	}
	return r.m.Covers(key)
}

func (r *ipMap) Count() int {
	return r.m.Size()
}

func (r *ipMap) Has(rng string) bool {
	key, err := parseRange(rng)
	if err != nil {
		return false
	}
	return r.m.Has(key)
}

func (r *ipMap) GetAll() table.Routes {
	var routes table.Routes
	iter := r.m.All().Iterator()
	for iter.Next() {
		routes = append(routes, rangeRoutes(iter.Key(), iter.Value())...)
	}
	return routes
}

func (r *ipMap) GetByLabel(selector labels.Selector) table.Routes {
	var routes table.Routes
	iter := r.m.All().Iterator()
	for iter.Next() {
		if selector.Matches(iter.Value()) {
			routes = append(routes, rangeRoutes(iter.Key(), iter.Value())...)
		}
	}
	return routes
}

// rangeRoutes renders a claimed range as routes, one per covering prefix.
func rangeRoutes(rng netipx.IPRange, l labels.Set) table.Routes {
	var routes table.Routes
	for _, p := range rng.Prefixes() {
		routes = append(routes, table.NewRoute(p, l, map[string]any{}))
	}
	return routes
}

// parseRange accepts "from-to" ranges, CIDR prefixes and single addresses.
func parseRange(rng string) (netipx.IPRange, error) {
	if r, err := netipx.ParseIPRange(rng); err == nil {
		return r, nil
	}
	if p, err := netip.ParsePrefix(rng); err == nil {
		return netipx.RangeOfPrefix(p), nil
	}
	a, err := netip.ParseAddr(rng)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("range %s is invalid, expect from-to, prefix or address", rng)
	}
	return netipx.IPRangeFrom(a, a), nil
}
