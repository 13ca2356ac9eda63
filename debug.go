package keyset

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// SortedKeys returns the keys of S in ascending order.
func (S *Set[T, K]) SortedKeys() []string {
	ordered := treeset.NewWith(utils.StringComparator)
	for key := range S.values {
		ordered.Add(key)
	}
	keys := make([]string, 0, ordered.Size())
	it := ordered.Iterator()
	for it.Next() {
		keys = append(keys, it.Value().(string))
	}
	return keys
}

// SortedBy returns the values of S ordered by comparator cmp. cmp will be
// called with arguments of type T.
//
//    byPrice := func(a, b interface{}) int {
//        return utils.IntComparator(a.(Item).Price, b.(Item).Price)
//    }
//    items := S.SortedBy(byPrice)
//
func (S *Set[T, K]) SortedBy(cmp utils.Comparator) []T {
	list := arraylist.New()
	for _, v := range S.values {
		list.Add(v)
	}
	list.Sort(cmp)
	values := make([]T, 0, list.Size())
	for _, x := range list.Values() {
		values = append(values, x.(T))
	}
	return values
}

// String returns the values of S, ordered by key.
func (S *Set[T, K]) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, key := range S.SortedKeys() {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v", S.values[key]))
	}
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper. It traces all key/value pairs of S, ordered by
// key, at level Debug.
func (S *Set[T, K]) Dump() {
	tracer().Debugf("--- set of %d values --------------------", S.Size())
	for _, key := range S.SortedKeys() {
		tracer().P("key", key).Debugf("%v", S.values[key])
	}
	tracer().Debugf("-----------------------------------------")
}

// DumpValue traces a single value of S in depth, at level Debug.
func (S *Set[T, K]) DumpValue(key string) {
	if v, ok := S.values[key]; ok {
		tracing.With(tracer()).Dump(key, v)
	}
}

// Verify re-derives the keys of all values of S and returns the keys for
// which the stored value no longer derives the key it is stored with. This
// happens if clients modify values after inserting them. Values which fail
// to derive a key at all are reported as well.
//
// Drift is traced as an error. If configuration flag panic-on-key-drift is
// set, Verify will panic instead of returning drifted keys.
func (S *Set[T, K]) Verify() []string {
	var drifted []string
	for _, key := range S.SortedKeys() {
		k, err := S.keyer.Key(S.values[key])
		if err != nil {
			tracer().Errorf("value for key %s fails to derive a key: %v", key, err)
			drifted = append(drifted, key)
		} else if k != key {
			tracer().P("key", key).Errorf("value has drifted to key %s", k)
			drifted = append(drifted, key)
		}
	}
	if len(drifted) > 0 && gconf.GetBool("panic-on-key-drift") {
		panic(fmt.Sprintf(`keyset: %d values have drifted from their keys.

Configuration flag panic-on-key-drift is set to true. It is aimed at finding
code which modifies set members in place. If you did not expect this to
panic, please unset panic-on-key-drift to its default (false).

Drifted keys: %v`, len(drifted), drifted))
	}
	return drifted
}
