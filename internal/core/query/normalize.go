package query

import (
	"time"

	"github.com/shopspring/decimal"
)

// dayLayout formats the calendar day of a grouped timestamp.
const dayLayout = "2006-01-02"

// Row is the client-facing shape of one aggregated group. Dimensions that
// were not part of the grouping carry their defaults: 0 for the numeric
// dimensions, null for valid, device_type and day.
type Row struct {
	Category    int64   `json:"category"`
	Client      int64   `json:"client"`
	ClientGroup int64   `json:"client_group"`
	Valid       *bool   `json:"valid"`
	DeviceType  *string `json:"device_type"`
	Day         *string `json:"day"`
	Mean        float64 `json:"mean"`
	Sum         float64 `json:"sum"`
	Count       int64   `json:"count"`
}

// Pagination describes the page a report covers.
// TotalCount is the number of all stored events, not of the filtered groups.
type Pagination struct {
	Offset     int   `json:"offset"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
}

// Normalize maps grouped rows onto Row, preserving order.
func Normalize(rows []GroupedRow) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, Row{
			Category:    keyInt(r.Key, FieldCategory),
			Client:      keyInt(r.Key, FieldClient),
			ClientGroup: keyInt(r.Key, FieldClientGroup),
			Valid:       keyBool(r.Key, FieldValid),
			DeviceType:  keyString(r.Key, FieldDeviceType),
			Day:         keyDay(r.Key, FieldTimestamp),
			Mean:        decimalOrZero(r.Mean),
			Sum:         decimalOrZero(r.Sum),
			Count:       r.Count,
		})
	}
	return out
}

// BuildPagination assembles the pagination block from the options and the
// executor's unfiltered event count.
func BuildPagination(opts Options, totalCount int64) Pagination {
	return Pagination{
		Offset:     opts.OffsetValue(),
		PageSize:   opts.LimitValue(),
		TotalCount: totalCount,
	}
}

func keyInt(key map[string]any, field string) int64 {
	switch v := key[field].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func keyBool(key map[string]any, field string) *bool {
	switch v := key[field].(type) {
	case bool:
		return &v
	case *bool:
		return v
	}
	return nil
}

func keyString(key map[string]any, field string) *string {
	switch v := key[field].(type) {
	case string:
		return &v
	case *string:
		return v
	}
	return nil
}

func keyDay(key map[string]any, field string) *string {
	t, ok := key[field].(time.Time)
	if !ok || t.IsZero() {
		return nil
	}
	day := t.UTC().Format(dayLayout)
	return &day
}

func decimalOrZero(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.InexactFloat64()
}
