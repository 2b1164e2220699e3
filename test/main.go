package main

import (
	"fmt"

	"github.com/henderiw/intervaltable/pkg/interval64"
	"github.com/henderiw/intervaltable/pkg/ipmap"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

var spans = []struct {
	min    int64
	max    int64
	labels map[string]string
}{
	{min: 1, max: 5, labels: map[string]string{"a": "b"}},
	{min: 3, max: 8, labels: map[string]string{"a": "b"}},
	{min: 10, max: 12},
	{min: 0, max: 3},
	{min: 6, max: 9},
}

func main() {
	m := interval64.New[map[string]string]()
	for _, s := range spans {
		m.Put(interval64.NewInterval(s.min, s.max), s.labels)
	}

	fmt.Println("size", m.Size())

	iter := m.Intersecting(interval64.Point(4)).Iterator()
	for iter.Next() {
		fmt.Println("intersecting", iter.Key(), iter.Value())
	}

	fmt.Println("covers [0,9)", m.Covers(interval64.NewInterval(0, 9)))
	fmt.Println("covers [0,12)", m.Covers(interval64.NewInterval(0, 12)))

	for _, k := range m.Supersets(interval64.NewInterval(3, 4)).Keys() {
		fmt.Println("superset", k)
	}

	// drain everything overlapping [0,9) through the iterator
	iter = m.Intersecting(interval64.NewInterval(0, 9)).Iterator()
	for iter.Next() {
		if err := iter.Remove(); err != nil {
			panic(err)
		}
	}
	fmt.Println("size after drain", m.Size())
	if err := m.ValidateMaxStops(); err != nil {
		panic(err)
	}

	im := ipmap.New()
	if err := im.Claim("10.0.0.0/24", labels.Set{"purpose": "dhcp"}); err != nil {
		panic(err)
	}
	if err := im.Claim("10.0.1.0-10.0.1.127", labels.Set{"purpose": "static"}); err != nil {
		panic(err)
	}

	rng, l, err := im.Find("10.0.0.200")
	if err != nil {
		panic(err)
	}
	fmt.Println("find", rng.String(), l)

	fmt.Println("covers 10.0.0.0-10.0.1.127", im.Covers("10.0.0.0-10.0.1.127"))

	ls, err := GetLabelSelector(map[string]string{"purpose": "dhcp"})
	if err != nil {
		panic(err)
	}
	for _, route := range im.GetByLabel(ls) {
		fmt.Println("route by label", route.String())
	}
}

func GetLabelSelector(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	for k, v := range l {
		req, err := labels.NewRequirement(k, selection.Equals, []string{v})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}
