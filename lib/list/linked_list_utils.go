package list

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/xlog"
)

var (
	ErrLinkedListIndexOutOfBounds = errors.New("[linked-list] index out of bounds")

	// Invariant violations reported by Validate.
	ErrLinkedListBrokenLink        = errors.New("[linked-list] broken link")
	ErrLinkedListAsymmetricLink    = errors.New("[linked-list] next and prev links are asymmetric")
	ErrLinkedListSentinelViolation = errors.New("[linked-list] sentinel violation")
	ErrLinkedListLenMismatch       = errors.New("[linked-list] length mismatch")
)

const (
	singlySeparator   = " -> "
	circularSeparator = " <-> "
)

// render prints the values in the form of [v1<sep>v2<sep>v3].
func render[T comparable](values []T, sep string) string {
	if len(values) <= 0 {
		return "[]"
	}
	builder := strings.Builder{}
	_, _ = builder.WriteString("[")
	_, _ = builder.WriteString(strings.Join(lo.Map(values, func(v T, _ int) string {
		return fmt.Sprint(v)
	}), sep))
	_, _ = builder.WriteString("]")
	return builder.String()
}

func indexOutOfBounds(logger xlog.XLogger, component string, index, length int64) error {
	err := infra.WrapErrorStackWithMessage(
		ErrLinkedListIndexOutOfBounds,
		fmt.Sprintf("[%s] index: %d, len: %d", component, index, length),
	)
	if logger != nil {
		logger.Debug("index out of bounds",
			zap.String("component", component),
			zap.Int64("index", index),
			zap.Int64("len", length),
		)
	}
	return err
}
