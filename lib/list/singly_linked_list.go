package list

import (
	"go.uber.org/multierr"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/xlog"
)

const singlyLinkedListComponent = "singly-linked-list"

var _ SinglyLinkedList[struct{}] = (*singlyLinkedList[struct{}])(nil) // Type check assertion

// The chain always starts at head and terminates at tail.
//
//	head -> e0 -> e1 -> ... -> en-1 -> tail -> nil
//
// An index addresses the link counting from the first element,
// so the predecessor of the element at index i is i steps away
// from the head.
type singlyLinkedList[T comparable] struct {
	head, tail *singlyNode[T]
	len        int64
	logger     xlog.XLogger
}

func NewSinglyLinkedList[T comparable](opts ...LinkedListOption[T]) SinglyLinkedList[T] {
	cfg := loadLinkedListCfg[T](opts...)
	l := new(singlyLinkedList[T]).init()
	l.logger = cfg.logger
	last := l.head
	for _, v := range cfg.initValues {
		last = l.insertAfter(v, last)
	}
	return l
}

func (l *singlyLinkedList[T]) init() *singlyLinkedList[T] {
	l.head = &singlyNode[T]{}
	l.tail = &singlyNode[T]{}
	l.head.next = l.tail
	l.len = 0
	return l
}

func (l *singlyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *singlyLinkedList[T]) IsEmpty() bool {
	return l.head.next == l.tail
}

func (l *singlyLinkedList[T]) insertAfter(v T, at *singlyNode[T]) *singlyNode[T] {
	newE := newSinglyNode[T](v)
	newE.next = at.next
	at.next = newE
	l.len++
	return newE
}

// removeAfter unlinks the successor of at, which must not be the tail.
func (l *singlyLinkedList[T]) removeAfter(at *singlyNode[T]) T {
	targetE := at.next
	at.next = targetE.next
	// avoid memory leaks
	targetE.next = nil
	l.len--
	return targetE.value
}

// last returns the last element, or the head if the list is empty.
func (l *singlyLinkedList[T]) last() *singlyNode[T] {
	iterator := l.head
	for iterator.next != l.tail {
		iterator = iterator.next
	}
	return iterator
}

// walk returns the predecessor of the element at index.
// It fails if the walk is going to step onto the tail.
func (l *singlyLinkedList[T]) walk(index int64) (*singlyNode[T], error) {
	if index < 0 {
		return nil, indexOutOfBounds(l.logger, singlyLinkedListComponent, index, l.len)
	}
	iterator := l.head
	for i := int64(0); i < index; i++ {
		if iterator.next == l.tail {
			return nil, indexOutOfBounds(l.logger, singlyLinkedListComponent, index, l.len)
		}
		iterator = iterator.next
	}
	return iterator, nil
}

func (l *singlyLinkedList[T]) AddFront(v T) {
	l.insertAfter(v, l.head)
}

func (l *singlyLinkedList[T]) AddBack(v T) {
	l.insertAfter(v, l.last())
}

func (l *singlyLinkedList[T]) AddBefore(v T, index int64) error {
	at, err := l.walk(index)
	if err != nil {
		return err
	}
	l.insertAfter(v, at)
	return nil
}

func (l *singlyLinkedList[T]) RemoveAt(index int64) (T, error) {
	var zero T
	at, err := l.walk(index)
	if err != nil {
		return zero, err
	}
	if at.next == l.tail {
		return zero, indexOutOfBounds(l.logger, singlyLinkedListComponent, index, l.len)
	}
	return l.removeAfter(at), nil
}

func (l *singlyLinkedList[T]) Front() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.head.next.value, true
}

func (l *singlyLinkedList[T]) Back() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.last().value, true
}

func (l *singlyLinkedList[T]) RemoveFront() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.removeAfter(l.head), true
}

func (l *singlyLinkedList[T]) RemoveBack() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	iterator := l.head
	for iterator.next.next != l.tail {
		iterator = iterator.next
	}
	return l.removeAfter(iterator), true
}

func (l *singlyLinkedList[T]) Contains(v T) bool {
	for iterator := l.head.next; iterator != l.tail; iterator = iterator.next {
		if iterator.value == v {
			return true
		}
	}
	return false
}

func (l *singlyLinkedList[T]) Remove(v T) bool {
	for iterator := l.head; iterator.next != l.tail; iterator = iterator.next {
		if iterator.next.value == v {
			l.removeAfter(iterator)
			return true
		}
	}
	return false
}

// Foreach, allows remove elements while iterating.
// A removed element has no next, so if fn removed the successor the
// walk resumes from the current element. If both of them were removed
// the walk stops.
func (l *singlyLinkedList[T]) Foreach(fn func(idx int64, v T) error) error {
	if fn == nil {
		return nil
	}
	var (
		iterator       = l.head.next
		idx      int64 = 0
	)
	for iterator != l.tail {
		n := iterator.next
		if err := fn(idx, iterator.value); err != nil {
			return err
		}
		if n != l.tail && n.next == nil {
			if iterator.next == nil {
				return nil
			}
			n = iterator.next
		}
		iterator = n
		idx++
	}
	return nil
}

func (l *singlyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.len)
	for iterator := l.head.next; iterator != l.tail; iterator = iterator.next {
		values = append(values, iterator.value)
	}
	return values
}

func (l *singlyLinkedList[T]) String() string {
	return render[T](l.Values(), singlySeparator)
}

func (l *singlyLinkedList[T]) Validate() error {
	if l == nil || l.head == nil || l.tail == nil {
		return infra.WrapErrorStackWithMessage(ErrLinkedListSentinelViolation, "[singly-linked-list] missing sentinel")
	}

	var merr error
	if l.head.hasValue || l.tail.hasValue {
		merr = multierr.Append(merr, ErrLinkedListSentinelViolation)
	}
	if l.tail.next != nil {
		merr = multierr.Append(merr, ErrLinkedListSentinelViolation)
	}

	count := int64(0)
	for iterator := l.head.next; iterator != l.tail; iterator = iterator.next {
		if iterator == nil {
			merr = multierr.Append(merr, ErrLinkedListBrokenLink)
			break
		}
		if !iterator.hasValue || iterator == l.head {
			merr = multierr.Append(merr, ErrLinkedListSentinelViolation)
			break
		}
		// A cycle never reaches the tail.
		if count++; count > l.len {
			break
		}
	}
	if count != l.len {
		merr = multierr.Append(merr, ErrLinkedListLenMismatch)
	}
	return infra.AppendErrorStack(merr)
}
