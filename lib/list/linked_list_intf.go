package list

import "fmt"

// Note that the linked lists are not thread safe.
// Callers have to guard them by themselves if they
// are shared between goroutines.

// Deque is the double-ended queue operations of a linked list.
// The (T, bool) results report false if there is no such element.
type Deque[T comparable] interface {
	Len() int64
	IsEmpty() bool
	// AddFront inserts a new element with value v at the front of the list.
	AddFront(v T)
	// AddBack inserts a new element with value v at the back of the list.
	AddBack(v T)
	// Front returns the value of the first element.
	Front() (T, bool)
	// Back returns the value of the last element.
	Back() (T, bool)
	// RemoveFront unlinks the first element and returns its value.
	// It is a no-op on an empty list.
	RemoveFront() (T, bool)
	// RemoveBack unlinks the last element and returns its value.
	// It is a no-op on an empty list.
	RemoveBack() (T, bool)
}

// Bag is the unordered collection operations of a linked list.
type Bag[T comparable] interface {
	// Contains reports whether any element value equals v.
	Contains(v T) bool
	// Remove unlinks the first element (front to back) whose value equals v.
	// It returns false if there is no such element.
	Remove(v T) bool
}

// BasicLinkedList is the operations shared by the singly linked list
// and the circular doubly linked list.
type BasicLinkedList[T comparable] interface {
	fmt.Stringer
	Deque[T]
	Bag[T]
	// AddBefore inserts a new element with value v so that it becomes
	// the element at index. Index 0 inserts at the front and index Len()
	// inserts at the back. Other indexes return ErrLinkedListIndexOutOfBounds.
	AddBefore(v T, index int64) error
	// RemoveAt unlinks the element at index and returns its value.
	// An index out of [0, Len()) returns ErrLinkedListIndexOutOfBounds.
	RemoveAt(index int64) (T, error)
	// Foreach traverses the list from front to back and executes function fn for each element.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, v T) error) error
	// Values returns the element values from front to back.
	Values() []T
	// Validate checks the link invariants of the list and returns all the violations.
	Validate() error
}

// SinglyLinkedList is bounded by a head and a tail sentinel.
// Accessing or removing the back element is O(n).
type SinglyLinkedList[T comparable] interface {
	BasicLinkedList[T]
}

// CircularLinkedList is a circular doubly linked list bounded by a single root sentinel.
type CircularLinkedList[T comparable] interface {
	BasicLinkedList[T]
	// Reverse reverses the order of the elements in place, without allocating new elements.
	Reverse()
}
