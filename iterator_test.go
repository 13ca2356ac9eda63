package keyset

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyset")
	defer teardown()
	//
	S := Hashed(newItem(1), newItem(2), newItem(3))
	it := S.Iterator()
	if it.Len() != 3 {
		t.Errorf("expected iterator over 3 values, has %d", it.Len())
	}
	for pass := 1; pass <= 2; pass++ {
		counter := 0
		for it.Next() {
			if it.Value() == nil {
				t.Errorf("pass %d: iterator returned nil value", pass)
			}
			counter++
		}
		if counter != 3 {
			t.Errorf("pass %d: expected 3 values, counted %d", pass, counter)
		}
		if it.Next() {
			t.Errorf("pass %d: exhausted iterator moved on", pass)
		}
		it.Reset()
	}
}

func TestIteratorsAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyset")
	defer teardown()
	//
	S := Hashed(newItem(1), newItem(2))
	it1 := S.Iterator()
	it1.Next()
	S.Add(newItem(3))
	it2 := S.Iterator()
	n1, n2 := 1, 0
	for it1.Next() {
		n1++
	}
	for it2.Next() {
		n2++
	}
	if n1 != 2 || n2 != 3 {
		t.Errorf("expected iterators over 2 and 3 values, counted %d and %d", n1, n2)
	}
}

func TestIteratorValueWithoutCurrent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyset")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Value to panic before first call to Next")
		}
	}()
	Hashed(newItem(1)).Iterator().Value()
}
