package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify]
// and [PostgresErrorClassifier.Classify]. It indicates whether a failed
// connection attempt should be retried or abandoned.
type ErrorClassification int

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// connection errors.
type PostgresErrorClassifier struct{}

const (
	// NonRetryable indicates that the failed operation should not be retried.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a server restart).
	Retryable
)

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Server errors are delegated to
// [ClassifyPgError]. Errors that never reached the server (DNS, refused or
// reset connections, timeouts) are [Retryable]; nil is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Retryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Retryable codes:
//   - Class 08: connection exceptions
//   - Class 53: insufficient resources (too many connections)
//   - Class 57: server shutting down or starting up
//
// NonRetryable codes:
//   - Class 28: invalid authorization (wrong user or password)
//   - Class 3D: unknown database
//   - Class 42: access rule violations
//
// Any code not listed above is classified as [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Retryable

	// Class 53: insufficient resources
	case pgerrcode.TooManyConnections,
		pgerrcode.InsufficientResources:
		return Retryable

	// Class 57: operator intervention
	case pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown:
		return Retryable
	}

	switch pgErr.Code {
	// Class 28: invalid authorization specification
	case pgerrcode.InvalidAuthorizationSpecification,
		pgerrcode.InvalidPassword:
		return NonRetryable

	// Class 3D: invalid catalog name
	case pgerrcode.InvalidCatalogName:
		return NonRetryable

	// Class 42: access rule violations
	case pgerrcode.InsufficientPrivilege:
		return NonRetryable
	}

	return NonRetryable
}
