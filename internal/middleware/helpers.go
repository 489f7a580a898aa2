// internal/middleware/helpers.go
package middleware

import (
	"errors"

	"client-service/internal/repository"

	"github.com/gin-gonic/gin"
)

var errNoSessionHolder = errors.New("store session middleware not installed")

// Session returns the store session of the request, opening it on the first
// call. Later calls return the same session.
func Session(c *gin.Context) (repository.Session, error) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, errNoSessionHolder
	}

	holder, ok := v.(*sessionHolder)
	if !ok {
		return nil, errNoSessionHolder
	}
	return holder.open(c.Request.Context())
}
