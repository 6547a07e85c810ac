package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/galushin/overtime/internal/clock"
	"github.com/galushin/overtime/roster"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS shifts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	date TEXT NOT NULL,
	start_minutes INTEGER NOT NULL CHECK(start_minutes >= 0),
	stop_minutes INTEGER NOT NULL CHECK(stop_minutes <= 1440),
	duty_type TEXT NOT NULL DEFAULT '',
	order_ref TEXT NOT NULL,
	source_format TEXT NOT NULL,
	source_mapper TEXT NOT NULL DEFAULT '',
	source_file TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(name, date, start_minutes, stop_minutes, order_ref)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

const dateLayout = "2006-01-02"

// InsertShifts persists shifts, ignoring rows that duplicate an already
// stored (name, date, interval, order) combination.
func (s *SQLiteStore) InsertShifts(shifts []roster.Shift) (int, error) {
	if len(shifts) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	const insertStmt = `
INSERT OR IGNORE INTO shifts (
	name,
	date,
	start_minutes,
	stop_minutes,
	duty_type,
	order_ref,
	source_format,
	source_mapper,
	source_file
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, shift := range shifts {
		res, err := stmt.Exec(
			shift.Name,
			shift.Date.Format(dateLayout),
			int(shift.Start),
			int(shift.Stop),
			shift.DutyType,
			shift.Order,
			shift.SourceFormat,
			shift.SourceMapper,
			shift.SourceFile,
		)
		if err != nil {
			_ = tx.Rollback()
			return inserted, fmt.Errorf("insert shift: %w", err)
		}

		rows, err := res.RowsAffected()
		if err == nil && rows > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

// ListShifts returns all stored shifts ordered by date, interval start and
// insertion order.
func (s *SQLiteStore) ListShifts() ([]roster.Shift, error) {
	const query = `
SELECT
	id,
	name,
	date,
	start_minutes,
	stop_minutes,
	duty_type,
	order_ref,
	source_format,
	source_mapper,
	source_file
FROM shifts
ORDER BY date, start_minutes, id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query shifts: %w", err)
	}
	defer rows.Close()

	shifts := make([]roster.Shift, 0, 256)
	for rows.Next() {
		var (
			shift   roster.Shift
			dateRaw string
			start   int
			stop    int
		)

		if err := rows.Scan(
			&shift.ID,
			&shift.Name,
			&dateRaw,
			&start,
			&stop,
			&shift.DutyType,
			&shift.Order,
			&shift.SourceFormat,
			&shift.SourceMapper,
			&shift.SourceFile,
		); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}

		shift.Date, err = time.ParseInLocation(dateLayout, dateRaw, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse shift date %q: %w", dateRaw, err)
		}
		shift.Start = clock.Time(start)
		shift.Stop = clock.Time(stop)

		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shifts: %w", err)
	}

	return shifts, nil
}

func (s *SQLiteStore) DeleteAllShifts() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM shifts;`)
	if err != nil {
		return 0, fmt.Errorf("delete shifts: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read deleted row count: %w", err)
	}
	return rows, nil
}
