// internal/handlers/client/client.go
package client

import (
	"context"
	"net/http"
	"strconv"

	"client-service/internal/domain/client"
	"client-service/internal/middleware"
	xerrors "client-service/internal/pkg/errors"
	"client-service/internal/pkg/response"
	"client-service/internal/pkg/validation"
	"client-service/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const idParam = "client_id"

// Service is what the handler needs from the service layer.
type Service interface {
	ListClients(ctx context.Context) ([]client.Client, error)
	GetClient(ctx context.Context, clientID int64) (client.Result, error)
	CreateClient(ctx context.Context, req *client.CreateClientRequest) (*client.Client, error)
	PatchClient(ctx context.Context, clientID int64, req *client.PatchClientRequest) (client.Result, error)
	DeleteClient(ctx context.Context, clientID int64) error
}

// ServiceFactory builds the service for one request over its store session.
type ServiceFactory func(session repository.Session) Service

type ClientHandler struct {
	newService ServiceFactory
	logger     *zap.Logger
}

func NewClientHandler(newService ServiceFactory, logger *zap.Logger) *ClientHandler {
	validation.Register()
	return &ClientHandler{
		newService: newService,
		logger:     logger,
	}
}

// IDPath is the route suffix carrying the client id.
func IDPath() string {
	return "/:" + idParam
}

// ListClients returns every client
func (h *ClientHandler) ListClients(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	result, err := svc.ListClients(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetClient retrieves a client by ID
func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}

	svc, ok := h.service(c)
	if !ok {
		return
	}

	result, err := svc.GetClient(c.Request.Context(), clientID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if !result.Found {
		response.NotFound(c)
		return
	}

	response.Success(c, http.StatusOK, result.Client)
}

// CreateClient creates a new client
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req client.CreateClientRequest
	if err := validation.BindJSON(c, &req); err != nil {
		response.ValidationError(c, validation.Translate(err))
		return
	}

	svc, ok := h.service(c)
	if !ok {
		return
	}

	result, err := svc.CreateClient(c.Request.Context(), &req)
	if err != nil {
		h.internalError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// PatchClient partially updates a client
func (h *ClientHandler) PatchClient(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}

	var req client.PatchClientRequest
	if err := validation.BindJSON(c, &req); err != nil {
		response.ValidationError(c, validation.Translate(err))
		return
	}

	svc, ok := h.service(c)
	if !ok {
		return
	}

	result, err := svc.PatchClient(c.Request.Context(), clientID, &req)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if !result.Found {
		response.NotFound(c)
		return
	}

	response.Success(c, http.StatusOK, result.Client)
}

// DeleteClient removes a client
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}

	svc, ok := h.service(c)
	if !ok {
		return
	}

	err := svc.DeleteClient(c.Request.Context(), clientID)
	if xerrors.Is(err, xerrors.ErrNotFound) {
		response.NotFound(c)
		return
	}
	if err != nil {
		h.internalError(c, err)
		return
	}

	response.Message(c, http.StatusOK, response.MsgDeleted)
}

// Root answers the unprefixed status probe.
func Root(c *gin.Context) {
	response.Message(c, http.StatusOK, response.MsgRoot)
}

// service builds the request's service. Called only once the input is
// valid, so the store session is opened after validation.
func (h *ClientHandler) service(c *gin.Context) (Service, bool) {
	session, err := middleware.Session(c)
	if err != nil {
		h.internalError(c, err)
		return nil, false
	}
	return h.newService(session), true
}

func (h *ClientHandler) clientID(c *gin.Context) (int64, bool) {
	clientID, err := strconv.ParseInt(c.Param(idParam), 10, 64)
	if err != nil {
		response.ValidationError(c, validation.InvalidInteger(idParam))
		return 0, false
	}
	return clientID, true
}

// internalError logs the cause and answers with a generic 500.
func (h *ClientHandler) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	h.logger.Error("client request failed",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	response.InternalError(c)
}
