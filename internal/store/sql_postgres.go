package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-pickup-config/internal/logger"
)

// DB is a handle on the backend's Postgres database. It is only pinged;
// the application never reads or writes backend data.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a connection pool for dsn. No connection is made
// until [DB.Ping] is called.
func NewConnectPostgres(dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// one probe at a time is enough
	conn.SetMaxOpenConns(2)
	conn.SetMaxIdleConns(1)

	return newDB(conn, log), nil
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Ping checks that the database accepts connections with the configured
// credentials. Errors that retrying cannot fix (bad password, unknown
// database) wrap [ErrConnectionRejected].
func (db *DB) Ping(ctx context.Context) error {
	err := db.PingContext(ctx)
	if err == nil {
		db.logger.Debug().Str("func", "DB.Ping").Msg("database is reachable")
		return nil
	}

	db.logger.Err(err).Str("func", "DB.Ping").Str("pg_code", postgresError(err)).Msg("error connecting database (ping)")

	if db.errorClassificator.Classify(err) == NonRetryable {
		return fmt.Errorf("%w: %w", ErrConnectionRejected, err)
	}

	return fmt.Errorf("error connecting database: %w", err)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
