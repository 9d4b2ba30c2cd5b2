package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
)

// writeFailure logs err under route and answers with a generic message.
// Validation failures keep the 500 mapping the API has always had.
func writeFailure(c *gin.Context, log *zap.Logger, route string, err error, message string) {
	if httperr.IsValidation(err) {
		log.Warn(route+" rejected", zap.Error(err))
	} else {
		log.Error(route+" error", zap.Error(err))
	}
	httperr.Internal(c, message)
}
