package postgres

// SQL queries for single-event storage operations

const (
	// querySaveEvent inserts an event keyed by its client-supplied id.
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates.
	querySaveEvent = `
		INSERT INTO events (
			id, device_type, category, client, client_group,
			"timestamp", valid, value
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`

	queryGetEvent = `
		SELECT
			id, device_type, category, client, client_group,
			"timestamp", valid, value
		FROM events
		WHERE id = $1
	`

	// queryDeleteEvent returns no rows when the id does not exist.
	queryDeleteEvent = `
		DELETE FROM events
		WHERE id = $1
		RETURNING id
	`

	queryCountEvents = `SELECT COUNT(*) FROM events`

	queryDeleteAllEvents = `DELETE FROM events`
)
