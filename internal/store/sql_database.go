package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/securecrt-dump/internal/config"
	"github.com/MKhiriev/securecrt-dump/internal/logger"
	"github.com/MKhiriev/securecrt-dump/migrations"
)

// Supported goose dialects, which double as database/sql driver names.
const (
	dialectSQLite   = "sqlite3"
	dialectPostgres = "pgx"
)

// DB wraps a *sql.DB together with what the repositories need to know about
// the backend: its placeholder style and how to recognise its errors.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the credential database named by cfg.DSN: PostgreSQL for
// postgres:// and postgresql:// URLs, an SQLite file otherwise.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) (*DB, error) {
	db := &DB{DB: conn, dialect: dialect, logger: log}

	switch dialect {
	case dialectPostgres:
		db.placeholder = sq.Dollar
		db.errorClassificator = NewPostgresErrorClassifier()
	case dialectSQLite:
		db.placeholder = sq.Question
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	return db, nil
}
