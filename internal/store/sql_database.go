package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/migrations"
)

type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database named by cfg.DSN and pings it. "postgres://" and
// "postgresql://" URLs go to PostgreSQL, everything else is a SQLite file.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)

	switch dialectFromDSN(dsn) {
	case migrations.DialectPostgres:
		return NewConnectPostgres(ctx, dsn, log)
	case migrations.DialectSQLite:
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

func dialectFromDSN(dsn string) string {
	lower := strings.ToLower(dsn)
	switch {
	case dsn == "":
		return ""
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return migrations.DialectPostgres
	case strings.Contains(lower, "://") && !strings.HasPrefix(lower, "file:"):
		return ""
	default:
		return migrations.DialectSQLite
	}
}

// Migrate applies the embedded schema and seed migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect reports the migration dialect the connection was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}

// builder returns a squirrel statement builder with the placeholder format of
// the connected driver.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) ErrorKind {
	if db.errorClassificator == nil {
		return KindUnknown
	}
	return db.errorClassificator.Classify(err)
}
