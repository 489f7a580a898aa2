// internal/middleware/session_middleware.go
package middleware

import (
	"context"
	"fmt"

	"client-service/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "store_session"

// sessionHolder opens its session on first use so requests rejected before
// dispatch never touch the store.
type sessionHolder struct {
	provider repository.SessionProvider
	session  repository.Session
}

func (h *sessionHolder) open(ctx context.Context) (repository.Session, error) {
	if h.session != nil {
		return h.session, nil
	}
	session, err := h.provider.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open store session: %w", err)
	}
	h.session = session
	return session, nil
}

func (h *sessionHolder) release() {
	if h.session != nil {
		h.session.Release()
		h.session = nil
	}
}

// StoreSession makes a store session available to the handlers of the
// request and releases it once the rest of the chain has returned, including
// when it panics.
func StoreSession(provider repository.SessionProvider, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		holder := &sessionHolder{provider: provider}
		defer func() {
			if holder.session != nil {
				logger.Debug("releasing store session", zap.String("request_id", GetRequestID(c)))
			}
			holder.release()
		}()

		c.Set(sessionKey, holder)
		c.Next()
	}
}
