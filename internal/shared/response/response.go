package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookgallery-backend/pkg/logger"
	"bookgallery-backend/pkg/result"
)

// JSON writes data as the response body.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Errors writes an ordered error list as the body.
func Errors(c *gin.Context, statusCode int, errors []string) {
	c.JSON(statusCode, errors)
}

// ValidationErrors writes the field -> messages map with a 400.
func ValidationErrors(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, fields)
}

// Unauthorized writes the error list with a 401.
func Unauthorized(c *gin.Context, errors []string) {
	c.JSON(http.StatusUnauthorized, errors)
}

// FromFailure maps a failed Result onto the wire: validation failures
// become a 400 field map, not-found becomes 404, everything else 400.
func FromFailure(c *gin.Context, r result.Result) {
	if r.ValidationFailed() {
		ValidationErrors(c, r.ValidationErrors)
		return
	}
	if r.IsNotFound() {
		Errors(c, http.StatusNotFound, r.Errors)
		return
	}
	Errors(c, http.StatusBadRequest, r.Errors)
}

// InternalError is the single mapping for unexpected failures. The body
// is fixed; details go to the log only.
func InternalError(c *gin.Context, err error) {
	logger.Error("request failed", err)
	c.JSON(http.StatusInternalServerError, []string{"An unexpected error occurred."})
}
