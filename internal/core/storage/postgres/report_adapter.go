package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/aevon-lab/ebs/internal/core/query"
	"github.com/shopspring/decimal"
)

// ReportAdapter implements query.Executor using PostgreSQL.
// Pipelines are rendered to one aggregate SELECT per call.
type ReportAdapter struct {
	db    *sql.DB
	table string
}

// NewReportAdapter creates a ReportAdapter over the events table, sharing the given connection.
func NewReportAdapter(db *sql.DB) *ReportAdapter {
	return &ReportAdapter{db: db, table: defaultEventsTable}
}

// Execute runs a compiled pipeline and returns one GroupedRow per group, in pipeline order.
func (a *ReportAdapter) Execute(ctx context.Context, pipeline query.Pipeline) ([]query.GroupedRow, error) {
	sqlQuery, args, keys, err := RenderPipeline(a.table, pipeline)
	if err != nil {
		return nil, fmt.Errorf("render pipeline: %w", err)
	}

	slog.Debug("[ReportAdapter] Executing report query", "sql", sqlQuery, "args", len(args))

	rows, err := a.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query report: %w", err)
	}
	defer rows.Close()

	aggregates := groupAggregates(pipeline)

	results := make([]query.GroupedRow, 0)
	for rows.Next() {
		keyDest := make([]any, len(keys))
		for i, field := range keys {
			keyDest[i] = newKeyDest(field)
		}

		var (
			mean, sum decimal.NullDecimal
			count     int64
		)
		aggDest := make([]any, len(aggregates))
		for i, agg := range aggregates {
			switch agg.Func {
			case query.AggAvg:
				aggDest[i] = &mean
			case query.AggSum:
				aggDest[i] = &sum
			default:
				aggDest[i] = &count
			}
		}

		if err := rows.Scan(append(keyDest, aggDest...)...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		key := make(map[string]any, len(keys))
		for i, field := range keys {
			key[field] = keyValue(keyDest[i])
		}

		results = append(results, query.GroupedRow{
			Key:   key,
			Mean:  mean,
			Sum:   sum,
			Count: count,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return results, nil
}

// CountAll returns the number of stored events, ignoring any filter.
func (a *ReportAdapter) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := a.db.QueryRowContext(ctx, queryCountEvents).Scan(&count); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

func groupAggregates(pipeline query.Pipeline) []query.Aggregate {
	stage, ok := pipeline.Find(query.StageGroup)
	if !ok {
		return nil
	}
	return stage.(query.GroupStage).Aggregates
}

func newKeyDest(field string) any {
	switch columnKinds[field] {
	case columnInt:
		return &sql.NullInt64{}
	case columnText:
		return &sql.NullString{}
	case columnBool:
		return &sql.NullBool{}
	case columnTime:
		return &sql.NullTime{}
	}
	return new(any)
}

// keyValue unwraps a scanned key; NULL becomes nil.
func keyValue(dest any) any {
	switch v := dest.(type) {
	case *sql.NullInt64:
		if v.Valid {
			return v.Int64
		}
	case *sql.NullString:
		if v.Valid {
			return v.String
		}
	case *sql.NullBool:
		if v.Valid {
			return v.Bool
		}
	case *sql.NullTime:
		if v.Valid {
			return v.Time.UTC()
		}
	case *any:
		return *v
	}
	return nil
}
