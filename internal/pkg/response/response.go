// internal/pkg/response/response.go
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fixed response texts clients depend on.
const (
	MsgNotFound = "Client non trouvé"
	MsgDeleted  = "Client supprimé"
	MsgRoot     = "API opérationnelle"
	MsgInternal = "Internal Server Error"
)

// ErrorBody is the error envelope: {"detail": ...}.
type ErrorBody struct {
	Detail interface{} `json:"detail"`
}

// MessageBody is the envelope of informational replies.
type MessageBody struct {
	Message string `json:"message"`
}

// FieldError describes one schema violation.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Success writes data as the body with the given status.
func Success(c *gin.Context, status int, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, data)
}

// Message sends {"message": msg}.
func Message(c *gin.Context, status int, msg string) {
	Success(c, status, MessageBody{Message: msg})
}

// Error sends a standardized error response.
func Error(c *gin.Context, code int, detail interface{}) {
	// Abort first so no later handler writes to the body.
	c.Abort()
	c.JSON(code, ErrorBody{Detail: detail})
}

// NotFound sends a 404 with the fixed not-found message.
func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, MsgNotFound)
}

// ValidationError sends a 422 carrying the list of violations.
func ValidationError(c *gin.Context, errs []FieldError) {
	Error(c, http.StatusUnprocessableEntity, errs)
}

// InternalError sends a 500 that never exposes the underlying cause.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, MsgInternal)
}
