package response

import (
	"github.com/gin-gonic/gin"

	"portfolio-api/pkg/apperror"
)

// Error writes the standardized error body. Every error response in the API
// is `{"msg": "..."}` with the status taken from the error taxonomy.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)
	c.JSON(code, gin.H{"msg": apperror.Message(err)})
}

// AbortError is Error for middleware, stopping the handler chain.
func AbortError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)
	c.AbortWithStatusJSON(code, gin.H{"msg": apperror.Message(err)})
}

// Message writes a success body that only carries a human-readable message.
func Message(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"msg": msg})
}
