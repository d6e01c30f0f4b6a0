package list

import (
	"github.com/samber/lo"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/xlog"
)

type linkedListCfg[T comparable] struct {
	initValues []T
	logger     xlog.XLogger
}

type LinkedListOption[T comparable] func(*linkedListCfg[T]) error

func loadLinkedListCfg[T comparable](opts ...LinkedListOption[T]) *linkedListCfg[T] {
	cfg := &linkedListCfg[T]{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(cfg); err != nil {
			panic(err)
		}
	}
	return cfg
}

// WithLinkedListInitValues populates the new list with values, from front to back.
func WithLinkedListInitValues[T comparable](values ...T) LinkedListOption[T] {
	return func(cfg *linkedListCfg[T]) error {
		cfg.initValues = append(cfg.initValues, values...)
		return nil
	}
}

// WithLinkedListLogger enables the diagnostic logs of the list, such as
// index out of bounds failures. The list logs nothing by default.
func WithLinkedListLogger[T comparable](logger xlog.XLogger) LinkedListOption[T] {
	return func(cfg *linkedListCfg[T]) error {
		if lo.IsNil(logger) {
			return infra.NewErrorStack("[linked-list] nil logger")
		}
		cfg.logger = logger
		return nil
	}
}
