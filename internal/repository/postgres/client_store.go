// internal/repository/postgres/client_store.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"client-service/internal/domain/client"
	"client-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const selectColumns = `codcli, nom, prenom, genre, adresse, complement_adresse, tel, email, newsletter`

type clientSession struct {
	conn *pgxpool.Conn
}

func (s *clientSession) Release() {
	if s.conn != nil {
		s.conn.Release()
		s.conn = nil
	}
}

// SelectAll retrieves every client ordered by id
func (s *clientSession) SelectAll(ctx context.Context) ([]client.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM t_client ORDER BY codcli`, selectColumns)

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []client.Client{}
	for rows.Next() {
		var c client.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}

	return clients, nil
}

// SelectByID retrieves a client by id
func (s *clientSession) SelectByID(ctx context.Context, id int64) (*client.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM t_client WHERE codcli = $1`, selectColumns)

	var c client.Client
	err := scanClient(s.conn.QueryRow(ctx, query, id), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return &c, nil
}

// Insert creates a row and returns the id assigned by the sequence
func (s *clientSession) Insert(ctx context.Context, fields client.Fields) (int64, error) {
	columns, args := columnArgs(fields)

	var query string
	if len(columns) == 0 {
		query = `INSERT INTO t_client DEFAULT VALUES RETURNING codcli`
	} else {
		placeholders := make([]string, len(columns))
		for i := range columns {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		query = fmt.Sprintf(
			`INSERT INTO t_client (%s) VALUES (%s) RETURNING codcli`,
			strings.Join(columns, ", "), strings.Join(placeholders, ", "),
		)
	}

	var id int64
	if err := s.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert client: %w", err)
	}

	return id, nil
}

// Update writes the given columns of one row
func (s *clientSession) Update(ctx context.Context, id int64, fields client.Fields) error {
	query, args := buildUpdate(id, fields)
	if query == "" {
		return nil
	}

	result, err := s.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNoRecord
	}

	return nil
}

// Delete removes one row permanently
func (s *clientSession) Delete(ctx context.Context, id int64) error {
	result, err := s.conn.Exec(ctx, `DELETE FROM t_client WHERE codcli = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNoRecord
	}

	return nil
}

func scanClient(row pgx.Row, c *client.Client) error {
	return row.Scan(
		&c.ID, &c.LastName, &c.FirstName, &c.Gender, &c.Address,
		&c.AddressExtra, &c.Phone, &c.Email, &c.Newsletter,
	)
}

// columnArgs returns quoted column identifiers in table order with their values.
func columnArgs(fields client.Fields) ([]string, []interface{}) {
	names := fields.Ordered()
	columns := make([]string, 0, len(names))
	args := make([]interface{}, 0, len(names))
	for _, name := range names {
		columns = append(columns, pq.QuoteIdentifier(name))
		args = append(args, fields[name])
	}
	return columns, args
}

// buildUpdate renders UPDATE ... SET for the known columns of fields. It
// returns an empty query when nothing is to be written.
func buildUpdate(id int64, fields client.Fields) (string, []interface{}) {
	columns, args := columnArgs(fields)
	if len(columns) == 0 {
		return "", nil
	}

	sets := make([]string, len(columns))
	for i, col := range columns {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE t_client SET %s WHERE codcli = $%d`,
		strings.Join(sets, ", "), len(args),
	)
	return query, args
}
