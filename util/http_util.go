// util/http_util.go
package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/evgrid/console/logging"
	"github.com/evgrid/console/upstream"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// RespondUpstreamError relays a normalized gateway failure. Backend 4xx
// statuses pass through with the resolved message; transport failures
// that never reached the backend surface as 502.
func RespondUpstreamError(c *gin.Context, err error) {
	ue := upstream.AsError(err)
	status := ue.Status
	if status == 0 {
		status = http.StatusBadGateway
	}
	RespondWithError(c, status, ue.Message, err)
}
