package storage

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"

	"NobelDashboard/internal/models"

	_ "modernc.org/sqlite"
)

// year has no declared type so that legacy rows holding text survive as text
// and go through the same coercion as documents from MongoDB.
const createAwardRecordsTable = `
CREATE TABLE IF NOT EXISTS award_records (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"year",
		"category" TEXT,
		"gender" TEXT,
		"born_country" TEXT,
		"born" TEXT,
		"age" INTEGER
);`

const firstMatchByKey = `SELECT id FROM award_records WHERE year = ? AND category = ? ORDER BY id LIMIT 1`

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, unavailable("OpenSQLite()", err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, unavailable("OpenSQLite()", err)
	}
	if _, err := db.ExecContext(ctx, createAwardRecordsTable); err != nil {
		db.Close()
		return nil, unavailable("OpenSQLite()", err)
	}
	log.Printf("OpenSQLite(): Init and create table successfully! (%s)", path)
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) FetchAll(ctx context.Context) ([]models.AwardRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, year, category, gender, born_country, born, age
		FROM award_records
		ORDER BY id
	`)
	if err != nil {
		return nil, unavailable("SQLiteStore.FetchAll()", err)
	}
	defer rows.Close()

	var records []models.AwardRecord
	for rows.Next() {
		var (
			id                  int64
			year                any
			category            sql.NullString
			gender, bornCountry sql.NullString
			born                sql.NullString
			age                 sql.NullInt64
		)
		if err := rows.Scan(&id, &year, &category, &gender, &bornCountry, &born, &age); err != nil {
			return nil, unavailable("SQLiteStore.FetchAll()", err)
		}

		r := models.AwardRecord{
			ID:       formatID(id),
			Year:     models.ParseYear(year),
			Category: category.String,
		}
		if gender.Valid {
			r.Gender = &gender.String
		}
		if bornCountry.Valid {
			r.BornCountry = &bornCountry.String
		}
		if born.Valid {
			if t, err := time.Parse(time.RFC3339, born.String); err == nil {
				r.Born = &t
			}
		}
		if age.Valid {
			a := int(age.Int64)
			r.Age = &a
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("SQLiteStore.FetchAll()", err)
	}
	return records, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, record models.AwardRecord) error {
	var year any
	if v, ok := record.Year.Int(); ok {
		year = v
	}
	var born any
	if record.Born != nil {
		born = record.Born.UTC().Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO award_records(year, category, gender, born_country, born, age) VALUES(?, ?, ?, ?, ?, ?)",
		year, record.Category, nullable(record.Gender), nullable(record.BornCountry), born, nullableInt(record.Age),
	)
	if err != nil {
		return writeFailed("SQLiteStore.Insert()", err)
	}
	return nil
}

func (s *SQLiteStore) UpdateOne(ctx context.Context, key models.AwardKey, patch models.AwardPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, ErrEmptyPatch
	}
	var (
		sets []string
		args []any
	)
	if patch.Gender != nil {
		sets = append(sets, "gender = ?")
		args = append(args, *patch.Gender)
	}
	if patch.BornCountry != nil {
		sets = append(sets, "born_country = ?")
		args = append(args, *patch.BornCountry)
	}
	args = append(args, key.Year, key.Category)

	query := "UPDATE award_records SET " + strings.Join(sets, ", ") + " WHERE id = (" + firstMatchByKey + ")"
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, writeFailed("SQLiteStore.UpdateOne()", err)
	}
	return result.RowsAffected()
}

func (s *SQLiteStore) DeleteOne(ctx context.Context, key models.AwardKey) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM award_records WHERE id = ("+firstMatchByKey+")",
		key.Year, key.Category,
	)
	if err != nil {
		return 0, writeFailed("SQLiteStore.DeleteOne()", err)
	}
	return result.RowsAffected()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("SQLiteStore.Ping()", err)
	}
	return nil
}

func (s *SQLiteStore) Close(context.Context) error {
	return s.db.Close()
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
