package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	v1 "github.com/aevon-lab/ebs/internal/api/v1"
	"github.com/aevon-lab/ebs/internal/core/storage"
	"github.com/stretchr/testify/require"
)

func TestAdapter_SaveEvent(t *testing.T) {
	now := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)
	desktop := "desktop"
	category := int64(3)

	tests := []struct {
		name       string
		event      *v1.Event
		mockResult func(mock sqlmock.Sqlmock, event *v1.Event)
		assertions func(t *testing.T, err error)
	}{
		{
			name: "success",
			event: &v1.Event{
				ID:          "0b7c7f0e-3f5e-4d6b-9a43-1f2a7c9b8d01",
				DeviceType:  &desktop,
				Category:    &category,
				Client:      7,
				ClientGroup: 2,
				Timestamp:   now,
				Valid:       true,
				Value:       12.5,
			},
			mockResult: func(mock sqlmock.Sqlmock, event *v1.Event) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveEvent)).
					WithArgs(event.ID, "desktop", int64(3), int64(7), int64(2), now, true, 12.5).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(event.ID))
			},
			assertions: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "nil dimensions are stored as null",
			event: &v1.Event{
				ID:          "6a1d2c3b-4e5f-4a7b-8c9d-0e1f2a3b4c5d",
				Client:      1,
				ClientGroup: 1,
				Timestamp:   now,
				Value:       1,
			},
			mockResult: func(mock sqlmock.Sqlmock, event *v1.Event) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveEvent)).
					WithArgs(event.ID, nil, nil, int64(1), int64(1), now, false, float64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(event.ID))
			},
			assertions: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "duplicate maps to ErrDuplicate",
			event: &v1.Event{
				ID:        "0b7c7f0e-3f5e-4d6b-9a43-1f2a7c9b8d01",
				Timestamp: now,
			},
			mockResult: func(mock sqlmock.Sqlmock, event *v1.Event) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveEvent)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			assertions: func(t *testing.T, err error) {
				require.ErrorIs(t, err, storage.ErrDuplicate)
			},
		},
		{
			name: "driver error is wrapped",
			event: &v1.Event{
				ID:        "0b7c7f0e-3f5e-4d6b-9a43-1f2a7c9b8d01",
				Timestamp: now,
			},
			mockResult: func(mock sqlmock.Sqlmock, event *v1.Event) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveEvent)).
					WillReturnError(errors.New("connection reset"))
			},
			assertions: func(t *testing.T, err error) {
				require.ErrorContains(t, err, "failed to save event")
				require.ErrorContains(t, err, "connection reset")
				require.NotErrorIs(t, err, storage.ErrDuplicate)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, mock, db := newMockAdapter(t)
			defer db.Close()

			tc.mockResult(mock, tc.event)

			err := adapter.SaveEvent(context.Background(), tc.event)
			tc.assertions(t, err)

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdapter_GetEvent(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	id := "0b7c7f0e-3f5e-4d6b-9a43-1f2a7c9b8d01"
	ts := time.Date(2026, 2, 8, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	mock.ExpectQuery(regexp.QuoteMeta(queryGetEvent)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(eventRowColumns()).
			AddRow(id, "mobile", int64(4), int64(7), int64(2), ts, true, 9.75))

	event, err := adapter.GetEvent(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, id, event.ID)
	require.NotNil(t, event.DeviceType)
	require.Equal(t, "mobile", *event.DeviceType)
	require.NotNil(t, event.Category)
	require.Equal(t, int64(4), *event.Category)
	require.Equal(t, int64(7), event.Client)
	require.Equal(t, int64(2), event.ClientGroup)
	require.Equal(t, time.UTC, event.Timestamp.Location())
	require.True(t, ts.Equal(event.Timestamp))
	require.True(t, event.Valid)
	require.Equal(t, 9.75, event.Value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_GetEventNullDimensions(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	id := "0b7c7f0e-3f5e-4d6b-9a43-1f2a7c9b8d01"

	mock.ExpectQuery(regexp.QuoteMeta(queryGetEvent)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(eventRowColumns()).
			AddRow(id, nil, nil, int64(1), int64(1), time.Now(), false, 0.0))

	event, err := adapter.GetEvent(context.Background(), id)
	require.NoError(t, err)
	require.Nil(t, event.DeviceType)
	require.Nil(t, event.Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_GetEventNotFound(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryGetEvent)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(eventRowColumns()))

	event, err := adapter.GetEvent(context.Background(), "missing")
	require.Nil(t, event)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_DeleteEvent(t *testing.T) {
	id := "0b7c7f0e-3f5e-4d6b-9a43-1f2a7c9b8d01"

	t.Run("deleted", func(t *testing.T) {
		adapter, mock, db := newMockAdapter(t)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(queryDeleteEvent)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

		require.NoError(t, adapter.DeleteEvent(context.Background(), id))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		adapter, mock, db := newMockAdapter(t)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(queryDeleteEvent)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		err := adapter.DeleteEvent(context.Background(), id)
		require.ErrorIs(t, err, storage.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdapter_CountEvents(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryCountEvents)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1234)))

	count, err := adapter.CountEvents(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1234), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_DeleteAllEvents(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(queryDeleteAllEvents)).
		WillReturnResult(sqlmock.NewResult(0, 17))

	n, err := adapter.DeleteAllEvents(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(17), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_CloseReturnsDBCloseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dbCloseErr := errors.New("db close failed")

	mock.ExpectPrepare(regexp.QuoteMeta(querySaveEvent)).WillBeClosed()
	stmtSave, err := db.Prepare(querySaveEvent)
	require.NoError(t, err)

	mock.ExpectPrepare(regexp.QuoteMeta(queryGetEvent)).WillBeClosed()
	stmtGet, err := db.Prepare(queryGetEvent)
	require.NoError(t, err)

	mock.ExpectPrepare(regexp.QuoteMeta(queryDeleteEvent)).WillBeClosed()
	stmtDelete, err := db.Prepare(queryDeleteEvent)
	require.NoError(t, err)

	mock.ExpectClose().WillReturnError(dbCloseErr)

	adapter := &Adapter{
		db:              db,
		stmtSaveEvent:   stmtSave,
		stmtGetEvent:    stmtGet,
		stmtDeleteEvent: stmtDelete,
	}

	err = adapter.Close()
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to close database")
	require.ErrorIs(t, err, dbCloseErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewAdapterWithDB_MissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	adapter, err := NewAdapterWithDB(db)
	require.Nil(t, adapter)
	require.ErrorContains(t, err, "did you run migrations?")
	require.ErrorContains(t, err, "events table does not exist")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewAdapterWithDB_PreparesStatements(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectPrepare(regexp.QuoteMeta(querySaveEvent))
	mock.ExpectPrepare(regexp.QuoteMeta(queryGetEvent))
	mock.ExpectPrepare(regexp.QuoteMeta(queryDeleteEvent))

	adapter, err := NewAdapterWithDB(db)
	require.NoError(t, err)
	require.Same(t, db, adapter.DB())
	require.NoError(t, mock.ExpectationsWereMet())
}

func newMockAdapter(t *testing.T) (*Adapter, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	adapter := &Adapter{
		db:              db,
		stmtSaveEvent:   mustPrepareStmt(t, db, mock, querySaveEvent),
		stmtGetEvent:    mustPrepareStmt(t, db, mock, queryGetEvent),
		stmtDeleteEvent: mustPrepareStmt(t, db, mock, queryDeleteEvent),
	}

	return adapter, mock, db
}

func mustPrepareStmt(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock, query string) *sql.Stmt {
	t.Helper()

	mock.ExpectPrepare(regexp.QuoteMeta(query))
	stmt, err := db.Prepare(query)
	require.NoError(t, err)

	return stmt
}

func eventRowColumns() []string {
	return []string{
		"id",
		"device_type",
		"category",
		"client",
		"client_group",
		"timestamp",
		"valid",
		"value",
	}
}
