package keyset

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Keyer is a strategy to derive a stable key from a value.
// Keys have to be deterministic: values considered equal must result in
// equal keys. Different values should result in different keys; a
// collision is treated as equality.
type Keyer[T any] interface {
	Key(T) (string, error)
}

// --- Structural hashing ----------------------------------------------------

// HashVersion is the structhash version used for structural keys.
// Struct fields tagged with a version greater than HashVersion are ignored,
// as are fields with a `lastversion` less than HashVersion.
const HashVersion = 1

// StructHash derives keys from a structural hash of a value's content.
// Pointers are followed, struct fields and map entries are visited in
// sorted order.
type StructHash[T any] struct{}

// Key returns the structural hash of v.
//
// structhash panics on malformed `hash` struct tags; these panics are
// returned as errors.
func (StructHash[T]) Key(v T) (key string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("cannot hash value of type %T: %v", v, r)
			}
			key = ""
		}
	}()
	return structhash.Hash(v, HashVersion)
}

// --- Key accessor ----------------------------------------------------------

// Identifiable is a type for values which know their own identifying key.
// Key must be deterministic and stable as long as the value is a member
// of a set.
type Identifiable interface {
	Key() string
}

// ByKey derives keys by calling the value's Key method.
type ByKey[T Identifiable] struct{}

// Key returns v.Key(). It never fails.
func (ByKey[T]) Key(v T) (string, error) {
	return v.Key(), nil
}

// --- Ad-hoc strategies -----------------------------------------------------

// KeyFunc adapts a function to the Keyer interface. Use it with NewWith:
//
//    byName := keyset.KeyFunc[Item](func(i Item) (string, error) { return i.Name, nil })
//    S := keyset.NewWith(byName, items...)
//
// All sets using KeyFunc share a type, regardless of the function wrapped.
// Combining sets which wrap different functions is undefined.
type KeyFunc[T any] func(T) (string, error)

// Key calls f(v).
func (f KeyFunc[T]) Key(v T) (string, error) {
	return f(v)
}
