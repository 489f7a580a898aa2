// internal/service/client/client.go
package client

import (
	"context"

	"client-service/internal/domain/client"
	xerrors "client-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// Repository is the storage capability the service needs.
type Repository interface {
	ListAll(ctx context.Context) ([]client.Client, error)
	GetByID(ctx context.Context, id int64) (client.Result, error)
	Create(ctx context.Context, fields client.Fields) (*client.Client, error)
	Patch(ctx context.Context, id int64, fields client.Fields) (client.Result, error)
	Delete(ctx context.Context, id int64) (client.Result, error)
}

type ClientService struct {
	clientRepo Repository
	logger     *zap.Logger
}

func NewClientService(clientRepo Repository, logger *zap.Logger) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// ListClients retrieves every client
func (s *ClientService) ListClients(ctx context.Context) ([]client.Client, error) {
	return s.clientRepo.ListAll(ctx)
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, clientID int64) (client.Result, error) {
	return s.clientRepo.GetByID(ctx, clientID)
}

// CreateClient creates a new client from a validated request
func (s *ClientService) CreateClient(ctx context.Context, req *client.CreateClientRequest) (*client.Client, error) {
	c, err := s.clientRepo.Create(ctx, req.Fields())
	if err != nil {
		s.logger.Error("failed to create client", zap.Error(err))
		return nil, err
	}

	s.logger.Info("client created", zap.Int64("client_id", c.ID))

	return c, nil
}

// PatchClient applies the fields present in req. A missing client is
// reported through the result, not as an error.
func (s *ClientService) PatchClient(ctx context.Context, clientID int64, req *client.PatchClientRequest) (client.Result, error) {
	fields := req.Fields()

	result, err := s.clientRepo.Patch(ctx, clientID, fields)
	if err != nil {
		s.logger.Error("failed to patch client", zap.Int64("client_id", clientID), zap.Error(err))
		return client.NotFound(), err
	}

	if result.Found {
		s.logger.Info("client patched",
			zap.Int64("client_id", clientID),
			zap.Strings("fields", fields.Ordered()),
		)
	}

	return result, nil
}

// DeleteClient removes a client. A missing client is a failure the caller
// must report: xerrors.ErrNotFound.
func (s *ClientService) DeleteClient(ctx context.Context, clientID int64) error {
	result, err := s.clientRepo.Delete(ctx, clientID)
	if err != nil {
		s.logger.Error("failed to delete client", zap.Int64("client_id", clientID), zap.Error(err))
		return err
	}

	if !result.Found {
		return xerrors.Wrapf(xerrors.ErrNotFound, "client %d", clientID)
	}

	s.logger.Info("client deleted", zap.Int64("client_id", clientID))

	return nil
}
