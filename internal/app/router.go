// internal/app/router.go
package app

import (
	clientHandler "client-service/internal/handlers/client"
	"client-service/internal/middleware"
	"client-service/internal/repository"
	clientsvc "client-service/internal/service/client"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	ClientHandler *clientHandler.ClientHandler
}

// NewHandlers wires every handler to a service built per request over that
// request's store session.
func NewHandlers(logger *zap.Logger) *Handlers {
	newService := func(session repository.Session) clientHandler.Service {
		repo := repository.NewClientRepository(session, logger)
		return clientsvc.NewClientService(repo, logger)
	}
	return &Handlers{
		ClientHandler: clientHandler.NewClientHandler(newService, logger),
	}
}

// NewEngine returns a gin engine with the middlewares every route shares.
func NewEngine(logger *zap.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.LoggingMiddleware(logger),
		middleware.RecoveryMiddleware(logger),
	)
	return engine
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, sessions repository.SessionProvider, h *Handlers) {
	// ==================== Status ====================
	r.GET("/", clientHandler.Root)

	// ==================== Clients ====================
	clients := r.Group("/api/v1/client")
	clients.Use(middleware.StoreSession(sessions, logger))
	{
		clients.GET("", h.ClientHandler.ListClients)
		clients.GET("/", h.ClientHandler.ListClients)
		clients.POST("", h.ClientHandler.CreateClient)
		clients.POST("/", h.ClientHandler.CreateClient)

		clients.GET(clientHandler.IDPath(), h.ClientHandler.GetClient)
		clients.PATCH(clientHandler.IDPath(), h.ClientHandler.PatchClient)
		clients.DELETE(clientHandler.IDPath(), h.ClientHandler.DeleteClient)
	}
}
