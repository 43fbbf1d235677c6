package query

import (
	"math"
	"reflect"
	"sort"
	"time"
)

// Option names accepted besides the dimension filters.
const (
	OptOffset    = "offset"
	OptLimit     = "limit"
	OptGroupBy   = "group_by"
	OptOrderBy   = "order_by"
	OptStartDate = "start_date"
	OptEndDate   = "end_date"
)

// DefaultPageLimit is the page size used when neither the caller nor the
// configuration provides one.
const DefaultPageLimit = 5

// Defaults holds configured fallbacks applied by the Options accessors.
type Defaults struct {
	PageLimit int
}

func (d Defaults) pageLimit() int {
	if d.PageLimit <= 0 {
		return DefaultPageLimit
	}
	return d.PageLimit
}

// Options is the validated set of report parameters. Nil pointers and empty
// slices mean "not supplied"; the accessor methods fill in defaults.
type Options struct {
	Offset    *int
	Limit     *int
	GroupBy   []string
	OrderBy   []string
	StartDate *time.Time
	EndDate   *time.Time

	Clients      []any
	ClientGroups []any
	DeviceTypes  []any
	Categories   []any
	Valid        *bool

	defaults Defaults
}

// RecognizedNames returns every accepted option key, sorted.
func RecognizedNames() []string {
	names := []string{OptOffset, OptLimit, OptGroupBy, OptOrderBy, OptStartDate, OptEndDate}
	for _, d := range catalog {
		if d.Matchable {
			names = append(names, d.Name)
		}
	}
	sort.Strings(names)
	return names
}

func isRecognized(name string) bool {
	for _, n := range RecognizedNames() {
		if n == name {
			return true
		}
	}
	return false
}

// ParseOptions validates raw caller options and converts them into Options.
// Unrecognized keys fail first, listing exactly those keys; afterwards values
// are checked for structural shape only (list-like vs scalar, integer, bool,
// instant). A nil value is treated as absent.
func ParseOptions(raw map[string]any, defaults Defaults) (Options, error) {
	opts := Options{defaults: defaults}

	var extra []string
	for name := range raw {
		if !isRecognized(name) {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return Options{}, &InvalidOptionError{Names: extra}
	}

	var malformed []string
	for name, value := range raw {
		if value == nil {
			continue
		}
		if !opts.set(name, value) {
			malformed = append(malformed, name)
		}
	}
	if len(malformed) > 0 {
		sort.Strings(malformed)
		return Options{}, &InvalidOptionError{Names: malformed, Reason: "malformed value"}
	}

	return opts, nil
}

// set assigns one recognized option and reports whether its value had the expected shape.
func (o *Options) set(name string, value any) bool {
	switch name {
	case OptOffset, OptLimit:
		n, ok := asInt(value)
		if !ok || n < 0 {
			return false
		}
		if name == OptOffset {
			o.Offset = &n
		} else {
			o.Limit = &n
		}
	case OptGroupBy, OptOrderBy:
		list, ok := asStrings(value)
		if !ok {
			return false
		}
		if name == OptGroupBy {
			o.GroupBy = list
		} else {
			o.OrderBy = list
		}
	case OptStartDate, OptEndDate:
		t, ok := asTime(value)
		if !ok {
			return false
		}
		if t == nil {
			return true
		}
		if name == OptStartDate {
			o.StartDate = t
		} else {
			o.EndDate = t
		}
	case "valid":
		b, ok := asBool(value)
		if !ok {
			return false
		}
		o.Valid = b
	default:
		list, ok := asList(value)
		if !ok {
			return false
		}
		switch name {
		case "clients":
			o.Clients = list
		case "client_groups":
			o.ClientGroups = list
		case "device_types":
			o.DeviceTypes = list
		case "categories":
			o.Categories = list
		}
	}
	return true
}

// OffsetValue returns the number of groups to skip.
func (o Options) OffsetValue() int {
	if o.Offset == nil {
		return 0
	}
	return *o.Offset
}

// LimitValue returns the page size. An explicit zero falls through to the default.
func (o Options) LimitValue() int {
	if o.Limit == nil || *o.Limit == 0 {
		return o.defaults.pageLimit()
	}
	return *o.Limit
}

// GroupByNames returns the requested grouping dimensions, or the whole
// catalog (date included) when none were supplied.
func (o Options) GroupByNames() []string {
	if len(o.GroupBy) == 0 {
		return PublicNames()
	}
	out := make([]string, len(o.GroupBy))
	copy(out, o.GroupBy)
	return out
}

// OrderByNames returns the requested sort keys in caller order.
func (o Options) OrderByNames() []string {
	out := make([]string, len(o.OrderBy))
	copy(out, o.OrderBy)
	return out
}

// FilterValue returns the filter supplied for a matchable dimension, or
// (nil, false) when it is absent. Empty lists count as absent.
func (o Options) FilterValue(d Dimension) (any, bool) {
	var list []any
	switch d.Name {
	case "clients":
		list = o.Clients
	case "client_groups":
		list = o.ClientGroups
	case "device_types":
		list = o.DeviceTypes
	case "categories":
		list = o.Categories
	case "valid":
		if o.Valid == nil {
			return nil, false
		}
		return *o.Valid, true
	default:
		return nil, false
	}
	if len(list) == 0 {
		return nil, false
	}
	return list, true
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case float32:
		f := float64(n)
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(f), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	}
	return 0, false
}

func asList(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func asStrings(v any) ([]string, bool) {
	list, ok := asList(v)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func asTime(v any) (*time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return &t, true
	case *time.Time:
		return t, true
	}
	return nil, false
}

func asBool(v any) (*bool, bool) {
	switch b := v.(type) {
	case bool:
		return &b, true
	case *bool:
		return b, true
	}
	return nil, false
}
