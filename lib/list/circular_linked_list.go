package list

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/xlog"
)

// References:
// https://github.com/golang/go/blob/master/src/container/list/list.go
// https://www.kernel.org/doc/html/latest/core-api/kernel-api.html#list-management-functions

const circularLinkedListComponent = "circular-linked-list"

var _ CircularLinkedList[struct{}] = (*circularLinkedList[struct{}])(nil) // Type check assertion

// The root is the only sentinel. Its next is the first element and
// its prev is the last element.
//
//	+-> root <-> e0 <-> e1 <-> ... <-> en-1 <-+
//	|                                         |
//	+-----------------------------------------+
//
// Empty list: root.next == root.prev == root.
type circularLinkedList[T comparable] struct {
	root   *circularNode[T]
	len    int64
	logger xlog.XLogger
}

func NewCircularLinkedList[T comparable](opts ...LinkedListOption[T]) CircularLinkedList[T] {
	cfg := loadLinkedListCfg[T](opts...)
	l := new(circularLinkedList[T]).init()
	l.logger = cfg.logger
	for _, v := range cfg.initValues {
		l.AddBack(v)
	}
	return l
}

func (l *circularLinkedList[T]) init() *circularLinkedList[T] {
	l.root = &circularNode[T]{}
	l.root.next = l.root
	l.root.prev = l.root
	l.len = 0
	return l
}

func (l *circularLinkedList[T]) getRoot() *circularNode[T] {
	return l.root
}

func (l *circularLinkedList[T]) getRootHead() *circularNode[T] {
	return l.root.next
}

func (l *circularLinkedList[T]) getRootTail() *circularNode[T] {
	return l.root.prev
}

func (l *circularLinkedList[T]) Len() int64 {
	return l.len
}

func (l *circularLinkedList[T]) IsEmpty() bool {
	return l.getRootHead() == l.getRoot()
}

// insertAfter links a new element between at and at.next.
func (l *circularLinkedList[T]) insertAfter(v T, at *circularNode[T]) *circularNode[T] {
	newE := newCircularNode[T](v)
	newE.prev = at
	newE.next = at.next
	at.next.prev = newE
	at.next = newE
	l.len++
	return newE
}

// remove unlinks targetE, which must not be the root.
func (l *circularLinkedList[T]) remove(targetE *circularNode[T]) T {
	targetE.prev.next = targetE.next
	targetE.next.prev = targetE.prev
	// avoid memory leaks
	targetE.next = nil
	targetE.prev = nil
	l.len--
	return targetE.value
}

// walk returns the predecessor of the element at index.
// It fails if the walk is going to step onto the root.
func (l *circularLinkedList[T]) walk(index int64) (*circularNode[T], error) {
	if index < 0 {
		return nil, indexOutOfBounds(l.logger, circularLinkedListComponent, index, l.len)
	}
	iterator := l.getRoot()
	for i := int64(0); i < index; i++ {
		if iterator.next == l.getRoot() {
			return nil, indexOutOfBounds(l.logger, circularLinkedListComponent, index, l.len)
		}
		iterator = iterator.next
	}
	return iterator, nil
}

func (l *circularLinkedList[T]) AddFront(v T) {
	l.insertAfter(v, l.getRoot())
}

func (l *circularLinkedList[T]) AddBack(v T) {
	l.insertAfter(v, l.getRootTail())
}

func (l *circularLinkedList[T]) AddBefore(v T, index int64) error {
	at, err := l.walk(index)
	if err != nil {
		return err
	}
	l.insertAfter(v, at)
	return nil
}

func (l *circularLinkedList[T]) RemoveAt(index int64) (T, error) {
	var zero T
	at, err := l.walk(index)
	if err != nil {
		return zero, err
	}
	if at.next == l.getRoot() {
		return zero, indexOutOfBounds(l.logger, circularLinkedListComponent, index, l.len)
	}
	return l.remove(at.next), nil
}

func (l *circularLinkedList[T]) Front() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.getRootHead().value, true
}

func (l *circularLinkedList[T]) Back() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.getRootTail().value, true
}

func (l *circularLinkedList[T]) RemoveFront() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.remove(l.getRootHead()), true
}

func (l *circularLinkedList[T]) RemoveBack() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.remove(l.getRootTail()), true
}

func (l *circularLinkedList[T]) Contains(v T) bool {
	for iterator := l.getRootHead(); iterator != l.getRoot(); iterator = iterator.next {
		if iterator.value == v {
			return true
		}
	}
	return false
}

func (l *circularLinkedList[T]) Remove(v T) bool {
	for iterator := l.getRootHead(); iterator != l.getRoot(); iterator = iterator.next {
		if iterator.value == v {
			l.remove(iterator)
			return true
		}
	}
	return false
}

// Reverse swaps the next and prev of every element, the root included.
// The walk follows the original next, which is the prev after swapping.
func (l *circularLinkedList[T]) Reverse() {
	if l.IsEmpty() {
		return
	}
	iterator := l.getRoot()
	for {
		iterator.next, iterator.prev = iterator.prev, iterator.next
		if iterator = iterator.prev; iterator == l.getRoot() {
			break
		}
	}
	if l.logger != nil {
		l.logger.Debug("reversed",
			zap.String("component", circularLinkedListComponent),
			zap.Int64("len", l.len),
		)
	}
}

// Foreach, allows remove elements while iterating.
// A removed element has no prev, so if fn removed the successor the
// walk resumes from the current element. If both of them were removed
// the walk stops.
func (l *circularLinkedList[T]) Foreach(fn func(idx int64, v T) error) error {
	if fn == nil {
		return nil
	}
	var (
		iterator       = l.getRootHead()
		idx      int64 = 0
	)
	for iterator != l.getRoot() {
		n := iterator.next
		if err := fn(idx, iterator.value); err != nil {
			return err
		}
		if n.prev == nil {
			if iterator.prev == nil {
				return nil
			}
			n = iterator.next
		}
		iterator = n
		idx++
	}
	return nil
}

func (l *circularLinkedList[T]) Values() []T {
	values := make([]T, 0, l.len)
	for iterator := l.getRootHead(); iterator != l.getRoot(); iterator = iterator.next {
		values = append(values, iterator.value)
	}
	return values
}

func (l *circularLinkedList[T]) String() string {
	return render[T](l.Values(), circularSeparator)
}

func (l *circularLinkedList[T]) Validate() error {
	if l == nil || l.root == nil {
		return infra.WrapErrorStackWithMessage(ErrLinkedListSentinelViolation, "[circular-linked-list] missing root")
	}

	var rootErr error
	if l.root.hasValue {
		rootErr = ErrLinkedListSentinelViolation
	}
	return infra.AppendErrorStack(
		rootErr,
		l.validateDirection(func(e *circularNode[T]) *circularNode[T] { return e.next }),
		l.validateDirection(func(e *circularNode[T]) *circularNode[T] { return e.prev }),
	)
}

// validateDirection walks from the root by step and expects to
// come back to the root after exactly len+1 steps.
func (l *circularLinkedList[T]) validateDirection(step func(e *circularNode[T]) *circularNode[T]) error {
	var (
		merr     error
		count    int64
		iterator = l.getRoot()
	)
	for {
		if iterator.next == nil || iterator.prev == nil {
			return multierr.Append(merr, ErrLinkedListBrokenLink)
		}
		if iterator.next.prev != iterator || iterator.prev.next != iterator {
			merr = multierr.Append(merr, ErrLinkedListAsymmetricLink)
		}
		if iterator = step(iterator); iterator == l.getRoot() {
			break
		}
		if !iterator.hasValue {
			return multierr.Append(merr, ErrLinkedListSentinelViolation)
		}
		// A cycle without the root never comes back.
		if count++; count > l.len {
			break
		}
	}
	if count != l.len {
		merr = multierr.Append(merr, ErrLinkedListLenMismatch)
	}
	return merr
}
