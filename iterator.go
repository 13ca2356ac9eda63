package keyset

// Iterator moves over a snapshot of the values of a set. It is an
// alternative to ranging over Set.All, for clients which prefer explicit
// iteration:
//
//    it := S.Iterator()
//    for it.Next() {
//        v := it.Value()
//        …
//    }
//
// Iterators do not share state; modifying the set does not affect iterators
// which have been created before.
type Iterator[T any] struct {
	values []T
	pos    int // 1-based position of the current value, 0 before first call to Next
}

// Iterator returns an iterator over a snapshot of the values of S.
func (S *Set[T, K]) Iterator() *Iterator[T] {
	return &Iterator[T]{values: S.Values()}
}

// Next moves to the next value. Returns false if there are no more values.
func (it *Iterator[T]) Next() bool {
	if it.pos >= len(it.values) {
		return false
	}
	it.pos++
	return true
}

// Value returns the current value. Panics if called before Next or after
// Next returned false.
func (it *Iterator[T]) Value() T {
	if it.pos == 0 || it.pos > len(it.values) {
		panic("keyset: Value called on iterator without current value")
	}
	return it.values[it.pos-1]
}

// Len returns the number of values in the iterator's snapshot.
func (it *Iterator[T]) Len() int {
	return len(it.values)
}

// Reset rewinds the iterator to the beginning of its snapshot.
func (it *Iterator[T]) Reset() {
	it.pos = 0
}
