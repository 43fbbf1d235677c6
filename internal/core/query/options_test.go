package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseOptions_Empty(t *testing.T) {
	opts, err := ParseOptions(nil, Defaults{})
	require.NoError(t, err)

	require.Equal(t, 0, opts.OffsetValue())
	require.Equal(t, DefaultPageLimit, opts.LimitValue())
	require.Equal(t, PublicNames(), opts.GroupByNames())
	require.Empty(t, opts.OrderByNames())
	require.Nil(t, opts.StartDate)
	require.Nil(t, opts.EndDate)
}

func TestParseOptions_ValidOptions(t *testing.T) {
	date := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	opts, err := ParseOptions(map[string]any{
		"offset":     30,
		"clients":    []int{1, 2},
		"start_date": date,
		"group_by":   []string{"client"},
	}, Defaults{})
	require.NoError(t, err)

	require.Equal(t, 30, opts.OffsetValue())
	require.Equal(t, []any{1, 2}, opts.Clients)
	require.Equal(t, date, *opts.StartDate)
	require.Equal(t, []string{"client"}, opts.GroupByNames())
	require.Equal(t, 5, opts.LimitValue())
}

func TestParseOptions_UnrecognizedKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want []string
	}{
		{
			name: "single extra key",
			raw:  map[string]any{"foo": "bar"},
			want: []string{"foo"},
		},
		{
			name: "extra keys listed exactly and sorted",
			raw:  map[string]any{"zeta": 1, "offset": 3, "alpha": nil, "clients": []int{1}},
			want: []string{"alpha", "zeta"},
		},
		{
			name: "names are case-sensitive",
			raw:  map[string]any{"Offset": 1},
			want: []string{"Offset"},
		},
		{
			name: "date is not a filter option",
			raw:  map[string]any{"date": time.Now()},
			want: []string{"date"},
		},
		{
			name: "storage names are not option names",
			raw:  map[string]any{"client": []int{1}},
			want: []string{"client"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOptions(tc.raw, Defaults{})
			require.ErrorIs(t, err, ErrInvalidOption)

			var invalid *InvalidOptionError
			require.ErrorAs(t, err, &invalid)
			require.Equal(t, tc.want, invalid.Names)
			require.Empty(t, invalid.Reason)
		})
	}
}

func TestParseOptions_MalformedValues(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want []string
	}{
		{name: "scalar for set dimension", raw: map[string]any{"clients": 1}, want: []string{"clients"}},
		{name: "list for scalar dimension", raw: map[string]any{"valid": []bool{true}}, want: []string{"valid"}},
		{name: "non-bool valid", raw: map[string]any{"valid": "yes"}, want: []string{"valid"}},
		{name: "fractional offset", raw: map[string]any{"offset": 1.5}, want: []string{"offset"}},
		{name: "negative limit", raw: map[string]any{"limit": -1}, want: []string{"limit"}},
		{name: "string offset", raw: map[string]any{"offset": "10"}, want: []string{"offset"}},
		{name: "group_by not strings", raw: map[string]any{"group_by": []int{1}}, want: []string{"group_by"}},
		{name: "order_by scalar", raw: map[string]any{"order_by": "client"}, want: []string{"order_by"}},
		{name: "date not an instant", raw: map[string]any{"start_date": "2026-01-01"}, want: []string{"start_date"}},
		{
			name: "all malformed keys are reported",
			raw:  map[string]any{"limit": "x", "categories": "y", "offset": 2},
			want: []string{"categories", "limit"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOptions(tc.raw, Defaults{})
			require.ErrorIs(t, err, ErrInvalidOption)

			var invalid *InvalidOptionError
			require.ErrorAs(t, err, &invalid)
			require.Equal(t, tc.want, invalid.Names)
			require.Equal(t, "malformed value", invalid.Reason)
		})
	}
}

func TestParseOptions_JSONNumbers(t *testing.T) {
	opts, err := ParseOptions(map[string]any{"offset": float64(20), "limit": float64(7)}, Defaults{})
	require.NoError(t, err)
	require.Equal(t, 20, opts.OffsetValue())
	require.Equal(t, 7, opts.LimitValue())
}

func TestOptions_FalsyValuesFallBackToDefaults(t *testing.T) {
	opts, err := ParseOptions(map[string]any{
		"limit":    0,
		"group_by": []string{},
		"clients":  []int{},
		"order_by": nil,
	}, Defaults{PageLimit: 25})
	require.NoError(t, err)

	require.Equal(t, 25, opts.LimitValue())
	require.Equal(t, PublicNames(), opts.GroupByNames())

	clients, _ := Resolve("clients")
	_, ok := opts.FilterValue(clients)
	require.False(t, ok)
}

func TestOptions_FilterValue(t *testing.T) {
	opts, err := ParseOptions(map[string]any{
		"device_types": []string{"mobile"},
		"valid":        false,
	}, Defaults{})
	require.NoError(t, err)

	devices, _ := Resolve("device_types")
	value, ok := opts.FilterValue(devices)
	require.True(t, ok)
	require.Equal(t, []any{"mobile"}, value)

	valid, _ := Resolve("valid")
	value, ok = opts.FilterValue(valid)
	require.True(t, ok)
	require.Equal(t, false, value)

	date, _ := Resolve("date")
	_, ok = opts.FilterValue(date)
	require.False(t, ok)
}

func TestOptions_AccessorsReturnCopies(t *testing.T) {
	opts, err := ParseOptions(map[string]any{"group_by": []string{"client"}}, Defaults{})
	require.NoError(t, err)

	names := opts.GroupByNames()
	names[0] = "category"
	require.Equal(t, []string{"client"}, opts.GroupByNames())
}

func TestRecognizedNames(t *testing.T) {
	require.Equal(t, []string{
		"categories", "client_groups", "clients", "device_types", "end_date",
		"group_by", "limit", "offset", "order_by", "start_date", "valid",
	}, RecognizedNames())
}
