package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorKind is the driver-independent category of a failed statement.
type ErrorKind int

const (
	// KindUnknown covers every error that is not a recognised constraint
	// violation.
	KindUnknown ErrorKind = iota
	// KindForeignKey is a foreign key violation.
	KindForeignKey
	// KindUnique is a unique or primary key violation.
	KindUnique
	// KindNotNull is a NOT NULL or CHECK violation.
	KindNotNull
)

// ErrorClassificator maps driver errors to an [ErrorKind].
type ErrorClassificator interface {
	Classify(err error) ErrorKind
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindUnknown
	}

	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return KindForeignKey
	case pgerrcode.UniqueViolation:
		return KindUnique
	case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
		return KindNotNull
	}

	return KindUnknown
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorKind {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return KindUnknown
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintForeignKey:
		return KindForeignKey
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return KindUnique
	case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
		return KindNotNull
	}

	return KindUnknown
}
