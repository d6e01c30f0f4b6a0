package list

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/xlog"
)

type testMemOutWriter struct {
	data []byte
}

func (w *testMemOutWriter) Write(p []byte) (n int, err error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *testMemOutWriter) Sync() error { return nil }

func (w *testMemOutWriter) lines(t *testing.T) []map[string]any {
	res := make([]map[string]any, 0, 8)
	for _, line := range strings.Split(strings.TrimSpace(string(w.data)), "\n") {
		if len(line) == 0 {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		res = append(res, m)
	}
	return res
}

type point struct {
	x, y int
}

func TestRender(t *testing.T) {
	require.Equal(t, "[]", render[int](nil, singlySeparator))
	require.Equal(t, "[]", render[int]([]int{}, circularSeparator))
	require.Equal(t, "[1]", render[int]([]int{1}, singlySeparator))
	require.Equal(t, "[1 -> 2]", render[int]([]int{1, 2}, singlySeparator))
	require.Equal(t, "[a <-> b <-> c]", render[string]([]string{"a", "b", "c"}, circularSeparator))
	require.Equal(t, "[{1 2} -> {3 4}]", render[point]([]point{{1, 2}, {3, 4}}, singlySeparator))
	require.Equal(t, "[true <-> false]", render[bool]([]bool{true, false}, circularSeparator))
}

func TestIndexOutOfBoundsError(t *testing.T) {
	err := indexOutOfBounds(nil, singlyLinkedListComponent, 5, 3)
	require.ErrorIs(t, err, ErrLinkedListIndexOutOfBounds)
	require.Equal(t, "[singly-linked-list] index: 5, len: 3: [linked-list] index out of bounds", err.Error())

	var es infra.ErrorStack
	require.True(t, errors.As(err, &es))
	require.NotEmpty(t, es.Frames())
}

type embeddedXLogger struct {
	xlog.XLogger
}

func TestLinkedListOptions(t *testing.T) {
	require.Panics(t, func() {
		NewSinglyLinkedList[int](WithLinkedListLogger[int](nil))
	})
	require.Panics(t, func() {
		NewCircularLinkedList[int](WithLinkedListLogger[int](nil))
	})
	var typedNil *embeddedXLogger
	require.Panics(t, func() {
		NewSinglyLinkedList[int](WithLinkedListLogger[int](typedNil))
	})
	require.Panics(t, func() {
		NewCircularLinkedList[int](WithLinkedListLogger[int](typedNil))
	})

	slist := NewSinglyLinkedList[int](
		nil,
		WithLinkedListInitValues(1, 2),
		WithLinkedListInitValues(3),
	)
	require.Equal(t, "[1 -> 2 -> 3]", slist.String())
	require.NoError(t, slist.Validate())

	clist := NewCircularLinkedList[int](nil, WithLinkedListInitValues(1, 2, 3))
	require.Equal(t, "[1 <-> 2 <-> 3]", clist.String())
	require.NoError(t, clist.Validate())
}

func TestLinkedListLogger(t *testing.T) {
	w := &testMemOutWriter{}
	logger := xlog.NewXLogger(
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
		xlog.WithXLoggerEncoder(xlog.JSON),
		xlog.WithXLoggerWriter(w),
	)

	slist := NewSinglyLinkedList[int](
		WithLinkedListLogger[int](logger),
		WithLinkedListInitValues(1, 2, 3),
	)
	require.ErrorIs(t, slist.AddBefore(0, 7), ErrLinkedListIndexOutOfBounds)

	clist := NewCircularLinkedList[int](
		WithLinkedListLogger[int](logger),
		WithLinkedListInitValues(1, 2),
	)
	_, err := clist.RemoveAt(-1)
	require.ErrorIs(t, err, ErrLinkedListIndexOutOfBounds)
	clist.Reverse()
	require.NoError(t, logger.Sync())

	lines := w.lines(t)
	require.Len(t, lines, 3)
	require.Equal(t, "index out of bounds", lines[0]["msg"])
	require.Equal(t, singlyLinkedListComponent, lines[0]["component"])
	require.Equal(t, float64(7), lines[0]["index"])
	require.Equal(t, float64(3), lines[0]["len"])
	require.Equal(t, circularLinkedListComponent, lines[1]["component"])
	require.Equal(t, float64(-1), lines[1]["index"])
	require.Equal(t, "reversed", lines[2]["msg"])
	require.Equal(t, float64(2), lines[2]["len"])
}
