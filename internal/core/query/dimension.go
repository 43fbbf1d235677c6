package query

// Kind classifies how a dimension's filter value is matched.
type Kind int

const (
	// KindScalar dimensions match by equality against a single value.
	KindScalar Kind = iota
	// KindSet dimensions match by membership in a list of candidate values.
	KindSet
)

func (k Kind) String() string {
	if k == KindSet {
		return "set"
	}
	return "scalar"
}

// Storage field names of the events collection/table.
const (
	FieldClient      = "client"
	FieldClientGroup = "client_group"
	FieldDeviceType  = "device_type"
	FieldCategory    = "category"
	FieldValid       = "valid"
	FieldTimestamp   = "timestamp"
	FieldValue       = "value"

	// AnchorField is the synthetic group identifier used as the tie-break sort key.
	AnchorField = "_id"
)

// dateName is the public name of the date dimension. Wherever it is used as a
// filter or grouping key it is materialized under FieldTimestamp.
const dateName = "date"

// Dimension is one entry in the catalog: a named attribute of an event usable
// for filtering and/or grouping.
type Dimension struct {
	Name      string // public option name, e.g. "clients"
	Field     string // storage field name, e.g. "client"
	Kind      Kind
	Matchable bool // false for the date dimension, which only takes part in time-range filtering
}

// catalog is ordered; the order is the canonical grouping order and the order
// in which match conditions are emitted.
var catalog = []Dimension{
	{Name: "clients", Field: FieldClient, Kind: KindSet, Matchable: true},
	{Name: "client_groups", Field: FieldClientGroup, Kind: KindSet, Matchable: true},
	{Name: "device_types", Field: FieldDeviceType, Kind: KindSet, Matchable: true},
	{Name: "categories", Field: FieldCategory, Kind: KindSet, Matchable: true},
	{Name: "valid", Field: FieldValid, Kind: KindScalar, Matchable: true},
	{Name: dateName, Field: FieldTimestamp, Kind: KindScalar, Matchable: false},
}

// Dimensions returns a copy of the catalog in canonical order.
func Dimensions() []Dimension {
	out := make([]Dimension, len(catalog))
	copy(out, catalog)
	return out
}

// PublicNames returns the public name of every dimension in canonical order.
func PublicNames() []string {
	names := make([]string, 0, len(catalog))
	for _, d := range catalog {
		names = append(names, d.Name)
	}
	return names
}

// Resolve looks a dimension up by its public name or by its storage field, so
// both "clients" and "client" resolve to the client dimension and the renamed
// "timestamp" still resolves to the date dimension.
func Resolve(name string) (Dimension, error) {
	for _, d := range catalog {
		if d.Name == name || d.Field == name {
			return d, nil
		}
	}
	return Dimension{}, &UnknownDimensionError{Name: name}
}

// IsDimensionField reports whether field is the storage name of a catalog dimension.
func IsDimensionField(field string) bool {
	for _, d := range catalog {
		if d.Field == field {
			return true
		}
	}
	return false
}

// RenameDate returns a copy of names with every "date" replaced by "timestamp",
// keeping positions. Applying it more than once is a no-op.
func RenameDate(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if n == dateName {
			n = FieldTimestamp
		}
		out[i] = n
	}
	return out
}
