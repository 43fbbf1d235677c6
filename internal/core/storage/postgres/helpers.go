package postgres

import (
	"database/sql"

	v1 "github.com/aevon-lab/ebs/internal/api/v1"
)

// eventArgs returns the insert arguments for an event in querySaveEvent order.
// Nil optional dimensions become SQL NULL.
func eventArgs(event *v1.Event) []interface{} {
	var deviceType, category interface{}
	if event.DeviceType != nil {
		deviceType = *event.DeviceType
	}
	if event.Category != nil {
		category = *event.Category
	}

	return []interface{}{
		event.ID,
		deviceType,
		category,
		event.Client,
		event.ClientGroup,
		event.Timestamp,
		event.Valid,
		event.Value,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanEventRow scans a database row into an Event struct.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanEventRow(row scanner) (*v1.Event, error) {
	var (
		evt        v1.Event
		deviceType sql.NullString
		category   sql.NullInt64
	)

	err := row.Scan(
		&evt.ID,
		&deviceType,
		&category,
		&evt.Client,
		&evt.ClientGroup,
		&evt.Timestamp,
		&evt.Valid,
		&evt.Value,
	)
	if err != nil {
		return nil, err
	}

	if deviceType.Valid {
		evt.DeviceType = &deviceType.String
	}
	if category.Valid {
		evt.Category = &category.Int64
	}
	evt.Timestamp = evt.Timestamp.UTC()

	return &evt, nil
}
