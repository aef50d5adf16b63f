package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"NobelDashboard/internal/models"
)

var (
	ErrStoreUnavailable = errors.New("record store unavailable")
	ErrStoreWrite       = errors.New("record store write failed")
	ErrEmptyPatch       = errors.New("update has no fields to set")
	ErrUnknownDriver    = errors.New("unknown store driver")
)

// Store is the Record Store Adapter. Implementations must return records in
// the backend's natural order and touch at most one record per
// UpdateOne/DeleteOne call.
type Store interface {
	FetchAll(ctx context.Context) ([]models.AwardRecord, error)
	Insert(ctx context.Context, record models.AwardRecord) error
	UpdateOne(ctx context.Context, key models.AwardKey, patch models.AwardPatch) (int64, error)
	DeleteOne(ctx context.Context, key models.AwardKey) (int64, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

type Options struct {
	Driver          string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	SQLitePath      string
}

// Open connects the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverMongo, "":
		return OpenMongo(ctx, opts.MongoURI, opts.MongoDatabase, opts.MongoCollection)
	case DriverSQLite:
		return OpenSQLite(ctx, opts.SQLitePath)
	default:
		return nil, fmt.Errorf("storage.Open(): %w: %q", ErrUnknownDriver, opts.Driver)
	}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

func writeFailed(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreWrite, err)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
