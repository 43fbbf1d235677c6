package postgres

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/aevon-lab/ebs/internal/core/query"
	"github.com/lib/pq"
)

const defaultEventsTable = "events"

// column kinds decide how filter values are bound and how group keys are scanned.
type columnKind int

const (
	columnInt columnKind = iota
	columnText
	columnBool
	columnTime
	columnNumeric
)

var columnKinds = map[string]columnKind{
	query.FieldClient:      columnInt,
	query.FieldClientGroup: columnInt,
	query.FieldCategory:    columnInt,
	query.FieldDeviceType:  columnText,
	query.FieldValid:       columnBool,
	query.FieldTimestamp:   columnTime,
	query.FieldValue:       columnNumeric,
}

// sqlBuilder accumulates positional arguments while clauses are rendered.
type sqlBuilder struct {
	args []any
}

func (b *sqlBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// RenderPipeline translates a compiled pipeline into a single aggregate SELECT.
// It returns the SQL, its positional arguments and the group key fields in
// SELECT order, which precede the aggregate columns in every result row.
//
// The timestamp group key is bucketed to its UTC calendar day. Sort keys that
// are not group keys cannot order aggregated rows and are dropped; the anchor
// key becomes an ascending tie-break over every group key.
func RenderPipeline(table string, p query.Pipeline) (string, []any, []string, error) {
	if table == "" {
		table = defaultEventsTable
	}

	var (
		match *query.MatchStage
		sort  *query.SortStage
		group *query.GroupStage
		skip  *query.SkipStage
		limit *query.LimitStage
		last  = query.StageKind(-1)
	)

	for _, stage := range p {
		if stage.Kind() <= last {
			return "", nil, nil, fmt.Errorf("stage %s out of order", stage.Kind())
		}
		last = stage.Kind()

		switch s := stage.(type) {
		case query.MatchStage:
			match = &s
		case query.SortStage:
			sort = &s
		case query.GroupStage:
			group = &s
		case query.SkipStage:
			skip = &s
		case query.LimitStage:
			limit = &s
		default:
			return "", nil, nil, fmt.Errorf("unsupported stage %T", stage)
		}
	}
	if group == nil {
		return "", nil, nil, fmt.Errorf("pipeline has no group stage")
	}

	b := &sqlBuilder{}
	var sb strings.Builder

	selects := make([]string, 0, len(group.Keys)+len(group.Aggregates))
	groupExprs := make([]string, 0, len(group.Keys))
	for _, field := range group.Keys {
		expr, err := groupExpr(field)
		if err != nil {
			return "", nil, nil, err
		}
		selects = append(selects, expr+" AS "+pq.QuoteIdentifier(field))
		groupExprs = append(groupExprs, expr)
	}
	for _, agg := range group.Aggregates {
		expr, err := aggregateExpr(agg)
		if err != nil {
			return "", nil, nil, err
		}
		selects = append(selects, expr+" AS "+pq.QuoteIdentifier(agg.Name))
	}

	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(selects, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(pq.QuoteIdentifier(table))

	if match != nil {
		where, err := renderMatch(b, match.Conditions)
		if err != nil {
			return "", nil, nil, err
		}
		if where != "" {
			sb.WriteString(" WHERE ")
			sb.WriteString(where)
		}
	}

	if len(groupExprs) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(groupExprs, ", "))

		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(renderOrder(sort, group.Keys), ", "))
	}

	if skip != nil {
		sb.WriteString(" OFFSET ")
		sb.WriteString(b.bind(skip.N))
	}
	if limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(b.bind(limit.N))
	}

	keys := make([]string, len(group.Keys))
	copy(keys, group.Keys)
	return sb.String(), b.args, keys, nil
}

func groupExpr(field string) (string, error) {
	if _, ok := columnKinds[field]; !ok {
		return "", fmt.Errorf("unknown group field %q", field)
	}
	if field == query.FieldTimestamp {
		return "date_trunc('day', " + pq.QuoteIdentifier(field) + " AT TIME ZONE 'UTC')", nil
	}
	return pq.QuoteIdentifier(field), nil
}

func aggregateExpr(agg query.Aggregate) (string, error) {
	switch agg.Func {
	case query.AggCount:
		return "COUNT(*)", nil
	case query.AggAvg, query.AggSum:
		if columnKinds[agg.Field] != columnNumeric {
			return "", fmt.Errorf("cannot aggregate field %q", agg.Field)
		}
		fn := "AVG"
		if agg.Func == query.AggSum {
			fn = "SUM"
		}
		return fn + "(" + pq.QuoteIdentifier(agg.Field) + ")", nil
	}
	return "", fmt.Errorf("unsupported aggregate %q", agg.Name)
}

func renderMatch(b *sqlBuilder, conditions []query.Condition) (string, error) {
	clauses := make([]string, 0, len(conditions))
	for _, c := range conditions {
		kind, ok := columnKinds[c.Field]
		if !ok {
			return "", fmt.Errorf("unknown match field %q", c.Field)
		}
		col := pq.QuoteIdentifier(c.Field)

		switch c.Op {
		case query.OpIn:
			list, ok := c.Value.([]any)
			if !ok {
				return "", fmt.Errorf("field %q: $in expects a list", c.Field)
			}
			arr, err := bindList(kind, list)
			if err != nil {
				return "", fmt.Errorf("field %q: %w", c.Field, err)
			}
			clauses = append(clauses, col+" = ANY("+b.bind(arr)+")")
		case query.OpEq:
			v, err := bindScalar(kind, c.Value)
			if err != nil {
				return "", fmt.Errorf("field %q: %w", c.Field, err)
			}
			clauses = append(clauses, col+" = "+b.bind(v))
		case query.OpRange:
			r, ok := c.Value.(query.TimeRange)
			if !ok || kind != columnTime {
				return "", fmt.Errorf("field %q: range expects a time range", c.Field)
			}
			if r.From != nil {
				clauses = append(clauses, col+" >= "+b.bind(r.From.UTC()))
			}
			if r.To != nil {
				clauses = append(clauses, col+" <= "+b.bind(r.To.UTC()))
			}
		default:
			return "", fmt.Errorf("field %q: unsupported operator %s", c.Field, c.Op)
		}
	}
	return strings.Join(clauses, " AND "), nil
}

// renderOrder returns ORDER BY terms for the aggregated rows.
func renderOrder(sort *query.SortStage, groupKeys []string) []string {
	isGroupKey := make(map[string]bool, len(groupKeys))
	for _, k := range groupKeys {
		isGroupKey[k] = true
	}

	listed := make(map[string]bool, len(groupKeys))
	var terms []string
	if sort != nil {
		for _, key := range sort.Keys {
			if key.Field == query.AnchorField {
				continue
			}
			if !isGroupKey[key.Field] {
				slog.Debug("[Postgres] Dropping sort key outside group keys", "field", key.Field)
				continue
			}
			if listed[key.Field] {
				continue
			}
			listed[key.Field] = true
			expr, _ := groupExpr(key.Field)
			if key.Direction == query.Descending {
				expr += " DESC"
			}
			terms = append(terms, expr)
		}
	}

	for _, k := range groupKeys {
		if listed[k] {
			continue
		}
		expr, _ := groupExpr(k)
		terms = append(terms, expr)
	}
	return terms
}

func bindList(kind columnKind, list []any) (any, error) {
	switch kind {
	case columnInt:
		out := make([]int64, 0, len(list))
		for _, v := range list {
			n, ok := toInt64(v)
			if !ok {
				return nil, fmt.Errorf("value %v is not an integer", v)
			}
			out = append(out, n)
		}
		return pq.Array(out), nil
	case columnText:
		out := make([]string, 0, len(list))
		for _, v := range list {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("value %v is not a string", v)
			}
			out = append(out, s)
		}
		return pq.Array(out), nil
	case columnBool:
		out := make([]bool, 0, len(list))
		for _, v := range list {
			bv, ok := v.(bool)
			if !ok {
				return nil, fmt.Errorf("value %v is not a bool", v)
			}
			out = append(out, bv)
		}
		return pq.Array(out), nil
	}
	return nil, fmt.Errorf("list filter not supported for this column")
}

func bindScalar(kind columnKind, v any) (any, error) {
	switch kind {
	case columnInt:
		n, ok := toInt64(v)
		if !ok {
			return nil, fmt.Errorf("value %v is not an integer", v)
		}
		return n, nil
	case columnText:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("value %v is not a string", v)
		}
		return s, nil
	case columnBool:
		bv, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("value %v is not a bool", v)
		}
		return bv, nil
	}
	return nil, fmt.Errorf("equality filter not supported for this column")
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case float32:
		f := float64(n)
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}
