package query

import "strings"

// descendingPrefix marks an order_by entry as descending.
const descendingPrefix = "-"

// Compile turns validated options into the stage sequence
// Match (optional) -> Sort -> Group -> Skip -> Limit.
//
// Compile is pure: equal options always yield equal pipelines, and it is safe
// to call from any number of goroutines.
func Compile(opts Options) (Pipeline, error) {
	sortStage, err := compileSort(opts)
	if err != nil {
		return nil, err
	}
	groupStage, err := compileGroup(opts)
	if err != nil {
		return nil, err
	}

	pipeline := make(Pipeline, 0, 5)
	if match, ok := compileMatch(opts); ok {
		pipeline = append(pipeline, match)
	}
	pipeline = append(pipeline,
		sortStage,
		groupStage,
		SkipStage{N: opts.OffsetValue()},
		LimitStage{N: opts.LimitValue()},
	)
	return pipeline, nil
}

// CompilePipeline validates raw options and compiles them in one step.
func CompilePipeline(raw map[string]any, defaults Defaults) (Pipeline, error) {
	opts, err := ParseOptions(raw, defaults)
	if err != nil {
		return nil, err
	}
	return Compile(opts)
}

// compileMatch returns false when no condition applies; an empty match stage
// is never emitted.
func compileMatch(opts Options) (MatchStage, bool) {
	var conditions []Condition
	for _, d := range catalog {
		if !d.Matchable {
			continue
		}
		value, ok := opts.FilterValue(d)
		if !ok {
			continue
		}
		op := OpEq
		if d.Kind == KindSet {
			op = OpIn
			list := value.([]any)
			value = append([]any(nil), list...)
		}
		conditions = append(conditions, Condition{Field: d.Field, Op: op, Value: value})
	}

	if opts.StartDate != nil || opts.EndDate != nil {
		conditions = append(conditions, Condition{
			Field: FieldTimestamp,
			Op:    OpRange,
			Value: TimeRange{From: opts.StartDate, To: opts.EndDate},
		})
	}

	if len(conditions) == 0 {
		return MatchStage{}, false
	}
	return MatchStage{Conditions: conditions}, true
}

func compileSort(opts Options) (SortStage, error) {
	keys := []SortKey{{Field: AnchorField, Direction: Ascending}}
	seen := map[string]bool{AnchorField: true}

	for _, entry := range opts.OrderByNames() {
		direction := Ascending
		name := entry
		if strings.HasPrefix(name, descendingPrefix) {
			direction = Descending
			name = strings.TrimPrefix(name, descendingPrefix)
		}
		d, err := Resolve(name)
		if err != nil {
			return SortStage{}, err
		}
		if seen[d.Field] {
			continue
		}
		seen[d.Field] = true
		keys = append(keys, SortKey{Field: d.Field, Direction: direction})
	}
	return SortStage{Keys: keys}, nil
}

func compileGroup(opts Options) (GroupStage, error) {
	names := RenameDate(opts.GroupByNames())
	keys := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		d, err := Resolve(name)
		if err != nil {
			return GroupStage{}, err
		}
		if seen[d.Field] {
			continue
		}
		seen[d.Field] = true
		keys = append(keys, d.Field)
	}

	aggregates := make([]Aggregate, len(reportAggregates))
	copy(aggregates, reportAggregates)
	return GroupStage{Keys: keys, Aggregates: aggregates}, nil
}
