package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the repositories how to react to a failed
// statement.
type ErrorClassification int

const (
	// NonRetryable is returned for every error not listed below.
	NonRetryable ErrorClassification = iota
	// Retryable marks transient failures: lost connections, serialization
	// failures, deadlocks, busy SQLite files.
	Retryable
	// Duplicate marks a unique or primary key violation. The queue uses it
	// to detect a concurrent enter for the same session.
	Duplicate
)

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier classifies errors returned through pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresErrorCode(err)
	if code == "" {
		return NonRetryable
	}
	return ClassifyPgCode(code)
}

// ClassifyPgCode maps a SQLSTATE code. Classes 08 and 40 plus 57P03 are
// retried; see https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgCode(code string) ErrorClassification {
	switch {
	case code == pgerrcode.UniqueViolation:
		return Duplicate
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

func postgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation reports a duplicate key on either backend, whatever
// dialect the connection uses.
func isUniqueViolation(err error) bool {
	return NewPostgresErrorClassifier().Classify(err) == Duplicate ||
		NewSQLiteErrorClassifier().Classify(err) == Duplicate
}
