// internal/repository/postgres/db.go
package postgres

import (
	"context"
	"fmt"

	"client-service/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS t_client (
		codcli             SERIAL PRIMARY KEY,
		nom                VARCHAR(40),
		prenom             VARCHAR(30),
		genre              VARCHAR(8),
		adresse            VARCHAR(50),
		complement_adresse VARCHAR(50),
		tel                VARCHAR(10),
		email              VARCHAR(255),
		newsletter         INTEGER DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS ix_t_client_nom ON t_client (nom);
`

type DB struct {
	pool *pgxpool.Pool
}

func NewDB(pool *pgxpool.Pool) *DB {
	return &DB{pool: pool}
}

// Open acquires a pooled connection for the lifetime of one request.
func (db *DB) Open(ctx context.Context) (repository.Session, error) {
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return &clientSession{conn: conn}, nil
}

// EnsureSchema creates the client table when it does not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
