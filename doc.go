/*
Package keyset implements sets of structured values, where membership is
decided by a key derived from a value's content rather than by Go equality
or pointer identity.

Two separately constructed records with identical fields are the same
set member:

    type Item struct {
        Name  string
        Price int
    }

    S := keyset.Hashed(&Item{"item1", 100}, &Item{"item1", 100}, &Item{"item2", 200})
    S.Size()   // => 2

Key Derivation

How a key is derived is decided at the type level, by the second type
parameter of Set. Two strategies are provided:

■ StructHash: the key is a structural hash over the full content of a value
(package github.com/cnf/structhash). Struct fields tagged with `hash:"-"`
do not contribute.

■ ByKey: the key is supplied by the value itself, through method Key() of
interface Identifiable. Use this if identity depends on a subset of fields,
e.g. a business identifier.

Sets using different strategies have different types, thus combining them
with set operations will not compile.

Set Operations

Set operations are non-destructive: Union, Intersection, Difference, SymmetricDifference and
Clone return new sets and leave their operands untouched.

Traversal takes a snapshot of the current values when it starts. Clients may
therefore modify a set while ranging over it; modifications will be visible
to the next traversal only.

Sets are not safe for concurrent mutation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package keyset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'keyset'.
func tracer() tracing.Trace {
	return tracing.Select("keyset")
}
