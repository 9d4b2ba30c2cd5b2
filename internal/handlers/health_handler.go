package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-agenda/internal/httpresp"
)

type HealthHandler struct {
	storeMode string
}

func NewHealthHandler(storeMode string) *HealthHandler {
	return &HealthHandler{storeMode: storeMode}
}

func (h *HealthHandler) Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"message": "API is running 🚀", "store": h.storeMode})
}

func (h *HealthHandler) HelloWorld(c *gin.Context) {
	httpresp.OK(c, gin.H{"message": "Hello, World!"})
}
