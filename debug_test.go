package keyset

import (
	"reflect"
	"strings"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func fruits() *Set[sku, ByKey[sku]] {
	return Keyed(
		sku{ID: "C-3", Name: "cherry", Price: 30},
		sku{ID: "A-1", Name: "apple", Price: 20},
		sku{ID: "B-2", Name: "banana", Price: 10},
	)
}

func TestSortedKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyset")
	defer teardown()
	//
	if keys := fruits().SortedKeys(); !reflect.DeepEqual(keys, []string{"A-1", "B-2", "C-3"}) {
		t.Errorf("expected keys in ascending order, have %v", keys)
	}
	if keys := Keyed[sku]().SortedKeys(); len(keys) != 0 {
		t.Errorf("expected no keys for empty set, have %v", keys)
	}
}

func TestSortedBy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyset")
	defer teardown()
	//
	byPrice := func(a, b interface{}) int {
		return utils.IntComparator(a.(sku).Price, b.(sku).Price)
	}
	var nn []string
	for _, f := range fruits().SortedBy(byPrice) {
		nn = append(nn, f.Name)
	}
	if !reflect.DeepEqual(nn, []string{"banana", "apple", "cherry"}) {
		t.Errorf("expected fruits ordered by price, have %v", nn)
	}
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyset")
	defer teardown()
	//
	S := Keyed(sku{ID: "b", Name: "banana", Price: 2}, sku{ID: "a", Name: "apple", Price: 1})
	if s := S.String(); s != "{ {a apple 1}, {b banana 2} }" {
		t.Errorf("unexpected string representation %q", s)
	}
	if s := Keyed[sku]().String(); s != "{ }" {
		t.Errorf("unexpected string representation of empty set %q", s)
	}
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyset")
	defer teardown()
	//
	S := fruits()
	S.Dump()
	S.DumpValue("A-1")
	S.DumpValue("no-such-key")
}

func TestVerifyDetectsDrift(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyset")
	defer teardown()
	//
	i1, i2 := newItem(1), newItem(2)
	S := Hashed(i1, i2)
	if drifted := S.Verify(); len(drifted) != 0 {
		t.Errorf("expected no drift for unmodified values, have %v", drifted)
	}
	i2.Price = 4711 // modify member in place
	drifted := S.Verify()
	if len(drifted) != 1 {
		t.Fatalf("expected 1 drifted key, have %v", drifted)
	}
	if S.Has(i2) {
		t.Errorf("expected lookup of modified value to fail")
	}
	if v, ok := S.Get(drifted[0]); !ok || v != i2 {
		t.Errorf("expected drifted key to be stored with modified value")
	}
}

func TestVerifyPanicsIfConfigured(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyset")
	defer teardown()
	gconf.Initialize(testconfig.Conf{"panic-on-key-drift": true})
	defer gconf.Initialize(testconfig.Conf{})
	//
	i1 := newItem(1)
	S := Hashed(i1)
	S.Verify() // no drift, no panic
	i1.Name = "changed"
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected Verify to panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "panic-on-key-drift") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	S.Verify()
}
