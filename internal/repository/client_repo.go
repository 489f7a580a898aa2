// internal/repository/client_repo.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"client-service/internal/domain/client"

	"go.uber.org/zap"
)

type ClientRepository struct {
	session Session
	logger  *zap.Logger
}

func NewClientRepository(session Session, logger *zap.Logger) *ClientRepository {
	return &ClientRepository{
		session: session,
		logger:  logger,
	}
}

// ListAll returns every client, or an empty slice when the table is empty.
func (r *ClientRepository) ListAll(ctx context.Context) ([]client.Client, error) {
	clients, err := r.session.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		clients = []client.Client{}
	}
	return clients, nil
}

// GetByID retrieves a client by id.
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (client.Result, error) {
	c, err := r.session.SelectByID(ctx, id)
	if errors.Is(err, ErrNoRecord) {
		return client.NotFound(), nil
	}
	if err != nil {
		return client.NotFound(), fmt.Errorf("failed to find client: %w", err)
	}
	return client.Found(c), nil
}

// Create inserts a new client and reads it back so the assigned id is visible.
func (r *ClientRepository) Create(ctx context.Context, fields client.Fields) (*client.Client, error) {
	known := r.known(fields)

	id, err := r.session.Insert(ctx, known)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	c, err := r.session.SelectByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload client %d: %w", id, err)
	}
	return c, nil
}

// Patch applies the given fields to an existing client. Names that are not
// columns are skipped. An empty mapping leaves the record untouched.
func (r *ClientRepository) Patch(ctx context.Context, id int64, fields client.Fields) (client.Result, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil || !current.Found {
		return current, err
	}

	known := r.known(fields)
	if len(known) == 0 {
		return current, nil
	}

	err = r.session.Update(ctx, id, known)
	if errors.Is(err, ErrNoRecord) {
		// removed between the lookup and the update
		return client.NotFound(), nil
	}
	if err != nil {
		return client.NotFound(), fmt.Errorf("failed to update client: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a client and returns the removed snapshot.
func (r *ClientRepository) Delete(ctx context.Context, id int64) (client.Result, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil || !current.Found {
		return current, err
	}

	err = r.session.Delete(ctx, id)
	if errors.Is(err, ErrNoRecord) {
		return client.NotFound(), nil
	}
	if err != nil {
		return client.NotFound(), fmt.Errorf("failed to delete client: %w", err)
	}

	return current, nil
}

func (r *ClientRepository) known(fields client.Fields) client.Fields {
	known, unknown := fields.Split()
	if len(unknown) > 0 {
		r.logger.Debug("ignoring unknown client fields", zap.Strings("fields", unknown))
	}
	return known
}
