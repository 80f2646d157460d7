package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahacad/financemonitor/internal/domain/dto"
	"github.com/Ahacad/financemonitor/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context into a
// standardized JSON error response. Handlers that already wrote a response
// are left alone; this is the fallback for c.Error() without an explicit
// status.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
}

// AbortWithError terminates request handling with the given status and a
// standardized JSON error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
