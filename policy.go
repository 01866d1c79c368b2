package chainmap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CloneFunc produces an independently owned copy of an element. A non-nil
// error aborts the surrounding operation with ErrOutOfMemory.
type CloneFunc[T any] func(T) (T, error)

// ReleaseFunc disposes of an element the map no longer owns.
type ReleaseFunc[T any] func(T)

// CompareFunc is a total order over keys: negative if a sorts before b,
// zero if equal, positive if a sorts after b. Zero implies the same entry.
type CompareFunc[K any] func(a, b K) int

// Policy bundles the element callbacks a Map is parameterized with. All five
// fields are required; the map never inspects key or value contents itself.
type Policy[K, V any] struct {
	CloneKey     CloneFunc[K]
	CloneValue   CloneFunc[V]
	ReleaseKey   ReleaseFunc[K]
	ReleaseValue ReleaseFunc[V]
	Compare      CompareFunc[K]
}

func (p Policy[K, V]) validate() error {
	if p.CloneKey == nil || p.CloneValue == nil || p.ReleaseKey == nil ||
		p.ReleaseValue == nil || p.Compare == nil {
		return fmt.Errorf("%w: missing policy callback", ErrNullArgument)
	}
	return nil
}

// Cloner is the capability interface for elements that copy themselves.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Releaser is the capability interface for elements that own resources.
type Releaser interface {
	Release()
}

// Comparer is the capability interface for keys that order themselves.
type Comparer[K any] interface {
	Compare(K) int
}

// KeyElement is the full capability set required of a key type by Capability.
type KeyElement[K any] interface {
	Cloner[K]
	Releaser
	Comparer[K]
}

// ValueElement is the capability set required of a value type by Capability.
type ValueElement[V any] interface {
	Cloner[V]
	Releaser
}

// Capability derives a Policy from element types that carry their own
// clone/release/compare methods.
func Capability[K KeyElement[K], V ValueElement[V]]() Policy[K, V] {
	return Policy[K, V]{
		CloneKey:     func(k K) (K, error) { return k.Clone() },
		CloneValue:   func(v V) (V, error) { return v.Clone() },
		ReleaseKey:   func(k K) { k.Release() },
		ReleaseValue: func(v V) { v.Release() },
		Compare:      func(a, b K) int { return a.Compare(b) },
	}
}

// Plain is the policy for ordered value types that need no cloning or
// releasing, such as integers and strings.
func Plain[K constraints.Ordered, V any]() Policy[K, V] {
	return Policy[K, V]{
		CloneKey:     func(k K) (K, error) { return k, nil },
		CloneValue:   func(v V) (V, error) { return v, nil },
		ReleaseKey:   func(K) {},
		ReleaseValue: func(V) {},
		Compare:      compareOrdered[K],
	}
}

func compareOrdered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
