package list

// The sentinels (head, tail and root) never carry a value.

type singlyNode[T comparable] struct {
	next     *singlyNode[T]
	hasValue bool
	value    T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func newSinglyNode[T comparable](v T) *singlyNode[T] {
	return &singlyNode[T]{
		value:    v,
		hasValue: true,
	}
}

type circularNode[T comparable] struct {
	prev, next *circularNode[T]
	hasValue   bool
	value      T
}

func newCircularNode[T comparable](v T) *circularNode[T] {
	return &circularNode[T]{
		value:    v,
		hasValue: true,
	}
}
