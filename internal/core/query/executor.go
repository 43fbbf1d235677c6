package query

import (
	"context"

	"github.com/shopspring/decimal"
)

// GroupedRow is one aggregated group as returned by an Executor. Key maps
// storage field names to the group's value; a nil value means the field was
// NULL for the group.
type GroupedRow struct {
	Key   map[string]any
	Mean  decimal.NullDecimal
	Sum   decimal.NullDecimal
	Count int64
}

// Executor runs compiled pipelines against the event store.
// Execute and CountAll are independent and may be called concurrently.
type Executor interface {
	Execute(ctx context.Context, pipeline Pipeline) ([]GroupedRow, error)

	// CountAll returns the number of stored events, ignoring any filter.
	CountAll(ctx context.Context) (int64, error)
}
