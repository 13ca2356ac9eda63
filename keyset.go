package keyset

import (
	"iter"

	"golang.org/x/exp/maps"
)

// Set is a set of values of type T, with membership decided by keys derived
// by strategy K. At most one value is stored per key.
//
// The zero value is not usable; create sets with New, NewWith, Hashed or Keyed.
//
// Keys are derived when a value is inserted. Clients must not modify a value
// in a way that changes its key while it is a member of a set, otherwise
// lookups for it will fail (see Verify).
type Set[T any, K Keyer[T]] struct {
	values map[string]T
	keyer  K
}

// New creates a set using the zero value of K as key strategy, and inserts
// values in order. For values with equal keys, the later one wins.
func New[T any, K Keyer[T]](values ...T) *Set[T, K] {
	var keyer K
	return NewWith(keyer, values...)
}

// NewWith creates a set using keyer as key strategy, and inserts values in
// order. For values with equal keys, the later one wins.
func NewWith[T any, K Keyer[T]](keyer K, values ...T) *Set[T, K] {
	S := &Set[T, K]{
		values: make(map[string]T, len(values)),
		keyer:  keyer,
	}
	return S.AddAll(values...)
}

// Hashed creates a set of values keyed by a structural hash of their content.
func Hashed[T any](values ...T) *Set[T, StructHash[T]] {
	return New[T, StructHash[T]](values...)
}

// Keyed creates a set of values keyed by their Key method.
func Keyed[T Identifiable](values ...T) *Set[T, ByKey[T]] {
	return New[T, ByKey[T]](values...)
}

// empty creates an empty set with the same key strategy as S.
func (S *Set[T, K]) empty(capacity int) *Set[T, K] {
	return &Set[T, K]{
		values: make(map[string]T, capacity),
		keyer:  S.keyer,
	}
}

// Key derives the key for v, using the set's key strategy.
func (S *Set[T, K]) Key(v T) (string, error) {
	return S.keyer.Key(v)
}

// mustKey derives the key for v. A failing key strategy is a violated
// precondition of all set operations and will panic with the error unchanged.
func (S *Set[T, K]) mustKey(v T) string {
	key, err := S.keyer.Key(v)
	if err != nil {
		tracer().Errorf("cannot derive key for value %v: %v", v, err)
		panic(err)
	}
	return key
}

// Size returns the number of distinct keys in S.
func (S *Set[T, K]) Size() int {
	return len(S.values)
}

// Empty is a predicate: is S empty?
func (S *Set[T, K]) Empty() bool {
	return len(S.values) == 0
}

// Add inserts v into S. If a value with an equal key is present, it is
// replaced by v. Returns S (for chaining).
func (S *Set[T, K]) Add(v T) *Set[T, K] {
	key := S.mustKey(v)
	if _, ok := S.values[key]; ok {
		tracer().Debugf("replacing value for key %s", key)
	}
	S.values[key] = v
	return S
}

// AddAll inserts values in order. Returns S (for chaining).
func (S *Set[T, K]) AddAll(values ...T) *Set[T, K] {
	for _, v := range values {
		S.Add(v)
	}
	return S
}

// Has is a predicate: is a value with v's key contained in S?
func (S *Set[T, K]) Has(v T) bool {
	return S.HasKey(S.mustKey(v))
}

// HasKey is a predicate: is a value with key contained in S?
func (S *Set[T, K]) HasKey(key string) bool {
	_, ok := S.values[key]
	return ok
}

// Get returns the value stored for key, if any.
func (S *Set[T, K]) Get(key string) (T, bool) {
	v, ok := S.values[key]
	return v, ok
}

// Delete removes the value with v's key from S.
// Returns true if such a value had been present.
func (S *Set[T, K]) Delete(v T) bool {
	return S.DeleteKey(S.mustKey(v))
}

// DeleteKey removes the value stored for key from S.
// Returns true if such a value had been present.
func (S *Set[T, K]) DeleteKey(key string) bool {
	if _, ok := S.values[key]; !ok {
		return false
	}
	delete(S.values, key)
	return true
}

// Clear removes all values. S remains usable.
func (S *Set[T, K]) Clear() {
	tracer().Debugf("clearing set of %d values", len(S.values))
	S.values = make(map[string]T)
}

// --- Traversal -------------------------------------------------------------

// All returns a sequence over the values of S, in unspecified order.
// Every traversal operates on a snapshot taken when the traversal starts,
// thus S may be modified during a traversal, and ranging over the sequence
// again will start afresh.
func (S *Set[T, K]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range S.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

// Entries returns a sequence over key/value pairs of S, in unspecified order.
// Like All, every traversal operates on a snapshot.
func (S *Set[T, K]) Entries() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for key, v := range maps.Clone(S.values) {
			if !yield(key, v) {
				return
			}
		}
	}
}

// Values returns a snapshot of the values of S, in unspecified order.
func (S *Set[T, K]) Values() []T {
	return maps.Values(S.values)
}

// Keys returns a snapshot of the keys of S, in unspecified order.
func (S *Set[T, K]) Keys() []string {
	return maps.Keys(S.values)
}

// Each calls mapper for each key/value pair of S. mapper may modify S.
func (S *Set[T, K]) Each(mapper func(string, T)) {
	for key, v := range S.Entries() {
		mapper(key, v)
	}
}

// --- Set operations --------------------------------------------------------

// Clone returns a copy of S. The copy does not share storage with S.
func (S *Set[T, K]) Clone() *Set[T, K] {
	return &Set[T, K]{
		values: maps.Clone(S.values),
		keyer:  S.keyer,
	}
}

// Union returns a new set with the values of both S and other.
// For equal keys, the value of other wins.
func (S *Set[T, K]) Union(other *Set[T, K]) *Set[T, K] {
	U := S.Clone()
	maps.Copy(U.values, other.values)
	return U
}

// Intersection returns a new set with the values of S whose key is
// contained in other.
func (S *Set[T, K]) Intersection(other *Set[T, K]) *Set[T, K] {
	I := S.empty(0)
	for key, v := range S.values {
		if other.HasKey(key) {
			I.values[key] = v
		}
	}
	return I
}

// Difference returns a new set with the values of S whose key is not
// contained in other.
func (S *Set[T, K]) Difference(other *Set[T, K]) *Set[T, K] {
	D := S.empty(0)
	for key, v := range S.values {
		if !other.HasKey(key) {
			D.values[key] = v
		}
	}
	return D
}

// SymmetricDifference returns a new set with the values contained in exactly
// one of S and other, i.e. (S ∪ other) \ (S ∩ other).
func (S *Set[T, K]) SymmetricDifference(other *Set[T, K]) *Set[T, K] {
	return S.Union(other).Difference(S.Intersection(other))
}

// IsSubset is a predicate: are all keys of S contained in other?
func (S *Set[T, K]) IsSubset(other *Set[T, K]) bool {
	if S.Size() > other.Size() {
		return false
	}
	for key := range S.values {
		if !other.HasKey(key) {
			return false
		}
	}
	return true
}

// Equals is a predicate: do S and other contain the same keys?
func (S *Set[T, K]) Equals(other *Set[T, K]) bool {
	return S.Size() == other.Size() && S.IsSubset(other)
}
