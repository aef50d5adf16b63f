package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"NobelDashboard/internal/models"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()
	store, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "awards.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { store.Close(ctx) })
	return store
}

func TestSQLiteInsertAndFetch(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)

	if err := store.Insert(ctx, models.NewAward(1999, "Peace", "male", "Norway")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := store.Insert(ctx, models.AwardRecord{Year: models.YearOf(1921), Category: "Physics"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	records, err := store.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	first := records[0]
	if y, _ := first.Year.Int(); y != 1999 || first.Category != "Peace" {
		t.Fatalf("first record = %+v", first)
	}
	if first.Age == nil || *first.Age != 99 {
		t.Fatalf("age = %v", first.Age)
	}
	if first.Born == nil || !first.Born.Equal(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("born = %v", first.Born)
	}

	second := records[1]
	if second.Gender != nil || second.BornCountry != nil || second.Age != nil || second.Born != nil {
		t.Fatalf("absent fields should stay nil: %+v", second)
	}
}

func TestSQLiteFetchKeepsNonNumericYear(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)

	if _, err := store.db.ExecContext(ctx,
		"INSERT INTO award_records(year, category) VALUES (?, ?), (?, ?)",
		"1964", "Peace", "n/a", "Peace",
	); err != nil {
		t.Fatalf("seed: %v", err)
	}

	records, err := store.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if !records[0].Year.Valid || records[0].Year.Value != 1964 {
		t.Fatalf("numeric text year not coerced: %+v", records[0].Year)
	}
	if records[1].Year.Valid {
		t.Fatalf("non-numeric year should be invalid: %+v", records[1].Year)
	}
}

func TestSQLiteUpdateOneTouchesSuppliedFieldsOnly(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)
	if err := store.Insert(ctx, models.NewAward(1999, "Peace", "male", "Norway")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	matched, err := store.UpdateOne(ctx,
		models.AwardKey{Year: 1999, Category: "Peace"},
		models.AwardPatch{BornCountry: models.StringPtr("Sweden")},
	)
	if err != nil {
		t.Fatalf("UpdateOne: %v", err)
	}
	if matched != 1 {
		t.Fatalf("matched = %d, want 1", matched)
	}

	records, _ := store.FetchAll(ctx)
	if *records[0].BornCountry != "Sweden" {
		t.Fatalf("bornCountry = %q", *records[0].BornCountry)
	}
	if *records[0].Gender != "male" {
		t.Fatalf("gender changed to %q", *records[0].Gender)
	}
}

func TestSQLiteUpdateOneAffectsSingleDuplicate(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)
	for i := 0; i < 2; i++ {
		if err := store.Insert(ctx, models.NewAward(2001, "Chemistry", "female", "Japan")); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	matched, err := store.UpdateOne(ctx,
		models.AwardKey{Year: 2001, Category: "Chemistry"},
		models.AwardPatch{Gender: models.StringPtr("male")},
	)
	if err != nil || matched != 1 {
		t.Fatalf("UpdateOne = %d, %v", matched, err)
	}

	records, _ := store.FetchAll(ctx)
	changed := 0
	for _, r := range records {
		if *r.Gender == "male" {
			changed++
		}
	}
	if changed != 1 {
		t.Fatalf("changed = %d, want 1", changed)
	}
}

func TestSQLiteUpdateOneNoMatch(t *testing.T) {
	store := newTestSQLite(t)
	matched, err := store.UpdateOne(context.Background(),
		models.AwardKey{Year: 1999, Category: "Peace"},
		models.AwardPatch{Gender: models.StringPtr("female")},
	)
	if err != nil {
		t.Fatalf("UpdateOne: %v", err)
	}
	if matched != 0 {
		t.Fatalf("matched = %d, want 0", matched)
	}
}

func TestSQLiteUpdateOneRejectsEmptyPatch(t *testing.T) {
	store := newTestSQLite(t)
	_, err := store.UpdateOne(context.Background(), models.AwardKey{Year: 1999, Category: "Peace"}, models.AwardPatch{})
	if !errors.Is(err, ErrEmptyPatch) {
		t.Fatalf("err = %v, want ErrEmptyPatch", err)
	}
}

func TestSQLiteDeleteOne(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)
	for i := 0; i < 2; i++ {
		if err := store.Insert(ctx, models.NewAward(1999, "Peace", "male", "Norway")); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	key := models.AwardKey{Year: 1999, Category: "Peace"}

	deleted, err := store.DeleteOne(ctx, key)
	if err != nil || deleted != 1 {
		t.Fatalf("DeleteOne = %d, %v", deleted, err)
	}
	records, _ := store.FetchAll(ctx)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}

	deleted, err = store.DeleteOne(ctx, models.AwardKey{Year: 1998, Category: "Peace"})
	if err != nil || deleted != 0 {
		t.Fatalf("DeleteOne(no match) = %d, %v", deleted, err)
	}
}

func TestSQLiteClosedStoreIsUnavailable(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "closed.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	store.Close(ctx)

	if _, err := store.FetchAll(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("FetchAll err = %v, want ErrStoreUnavailable", err)
	}
	if err := store.Insert(ctx, models.NewAward(1999, "Peace", "male", "Norway")); !errors.Is(err, ErrStoreWrite) {
		t.Fatalf("Insert err = %v, want ErrStoreWrite", err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "redis"})
	if !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("err = %v, want ErrUnknownDriver", err)
	}
}

func TestOpenSQLiteDriver(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, Options{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "open.db")})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close(ctx)
	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
