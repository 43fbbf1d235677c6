package query

import (
	"fmt"
	"strings"
	"time"
)

// StageKind tags the variant of a pipeline stage.
type StageKind int

const (
	StageMatch StageKind = iota
	StageSort
	StageGroup
	StageSkip
	StageLimit
)

func (k StageKind) String() string {
	switch k {
	case StageMatch:
		return "match"
	case StageSort:
		return "sort"
	case StageGroup:
		return "group"
	case StageSkip:
		return "skip"
	case StageLimit:
		return "limit"
	}
	return fmt.Sprintf("stage(%d)", int(k))
}

// Stage is one step of a compiled pipeline. Stages are values; an executor
// consumes a Pipeline once and must not modify it.
type Stage interface {
	Kind() StageKind
	fmt.Stringer
}

// Pipeline is the ordered stage sequence produced by Compile.
type Pipeline []Stage

// String renders the pipeline in document-store syntax. The rendering is
// stable for a given pipeline and is what debug logs and tests compare.
func (p Pipeline) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Find returns the first stage of the given kind.
func (p Pipeline) Find(kind StageKind) (Stage, bool) {
	for _, s := range p {
		if s.Kind() == kind {
			return s, true
		}
	}
	return nil, false
}

// Operator is a match condition operator.
type Operator int

const (
	OpIn Operator = iota
	OpEq
	OpRange
)

func (op Operator) String() string {
	switch op {
	case OpIn:
		return "$in"
	case OpEq:
		return "$eq"
	case OpRange:
		return "$range"
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// TimeRange is an inclusive range on the timestamp field. Either bound may be nil.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

func (r TimeRange) String() string {
	var parts []string
	if r.From != nil {
		parts = append(parts, "$gte: "+r.From.Format(time.RFC3339Nano))
	}
	if r.To != nil {
		parts = append(parts, "$lte: "+r.To.Format(time.RFC3339Nano))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Condition matches one storage field. Value is a []any for OpIn, a scalar
// for OpEq and a TimeRange for OpRange.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

func (c Condition) String() string {
	if c.Op == OpRange {
		return fmt.Sprintf("%s: %s", c.Field, c.Value)
	}
	return fmt.Sprintf("%s: {%s: %v}", c.Field, c.Op, c.Value)
}

// MatchStage filters source events.
type MatchStage struct {
	Conditions []Condition
}

func (MatchStage) Kind() StageKind { return StageMatch }

func (s MatchStage) String() string {
	parts := make([]string, len(s.Conditions))
	for i, c := range s.Conditions {
		parts[i] = c.String()
	}
	return "{$match: {" + strings.Join(parts, ", ") + "}}"
}

// Direction of a sort key, using the document-store convention.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// SortKey is one field of a sort stage.
type SortKey struct {
	Field     string
	Direction Direction
}

// SortStage orders by the keys in sequence.
type SortStage struct {
	Keys []SortKey
}

func (SortStage) Kind() StageKind { return StageSort }

func (s SortStage) String() string {
	parts := make([]string, len(s.Keys))
	for i, k := range s.Keys {
		parts[i] = fmt.Sprintf("%s: %d", k.Field, int(k.Direction))
	}
	return "{$sort: {" + strings.Join(parts, ", ") + "}}"
}

// AggFunc is an aggregate function applied per group.
type AggFunc int

const (
	AggAvg AggFunc = iota
	AggSum
	AggCount
)

// Aggregate names one output column of a group stage. Field is empty for AggCount.
type Aggregate struct {
	Name  string
	Func  AggFunc
	Field string
}

func (a Aggregate) String() string {
	switch a.Func {
	case AggAvg:
		return fmt.Sprintf("%s: {$avg: $%s}", a.Name, a.Field)
	case AggSum:
		return fmt.Sprintf("%s: {$sum: $%s}", a.Name, a.Field)
	default:
		return fmt.Sprintf("%s: {$sum: 1}", a.Name)
	}
}

// reportAggregates are attached to every group.
var reportAggregates = []Aggregate{
	{Name: "mean", Func: AggAvg, Field: FieldValue},
	{Name: "sum", Func: AggSum, Field: FieldValue},
	{Name: "count", Func: AggCount},
}

// GroupStage groups events by the key fields and computes the aggregates.
type GroupStage struct {
	Keys       []string
	Aggregates []Aggregate
}

func (GroupStage) Kind() StageKind { return StageGroup }

func (s GroupStage) String() string {
	keys := make([]string, len(s.Keys))
	for i, k := range s.Keys {
		keys[i] = fmt.Sprintf("%s: $%s", k, k)
	}
	parts := []string{"_id: {" + strings.Join(keys, ", ") + "}"}
	for _, a := range s.Aggregates {
		parts = append(parts, a.String())
	}
	return "{$group: {" + strings.Join(parts, ", ") + "}}"
}

// SkipStage drops the first N groups.
type SkipStage struct {
	N int
}

func (SkipStage) Kind() StageKind { return StageSkip }
func (s SkipStage) String() string  { return fmt.Sprintf("{$skip: %d}", s.N) }

// LimitStage keeps at most N groups.
type LimitStage struct {
	N int
}

func (LimitStage) Kind() StageKind { return StageLimit }
func (s LimitStage) String() string  { return fmt.Sprintf("{$limit: %d}", s.N) }
