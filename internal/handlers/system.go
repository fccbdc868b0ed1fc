// internal/handlers/system.go
package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/threadly/clothing-store-backend/internal/services"
	"github.com/threadly/clothing-store-backend/internal/utils"
)

type SystemHandler struct {
	store services.DocumentStore
}

func NewSystemHandler(store services.DocumentStore) *SystemHandler {
	return &SystemHandler{store: store}
}

// GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Clothing Store Backend running",
	})
}

// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": "1.0.0",
	})
}

// GET /test
//
// Connectivity diagnostics. Store errors are folded into the status text
// instead of failing the request.
func (h *SystemHandler) TestDatabase(c *gin.Context) {
	// The env status fields stay null until a connection exists.
	response := gin.H{
		"backend":           "running",
		"database":          "not_available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store.Connected() {
		response["database"] = "connected"
		response["database_url"] = envStatus("DATABASE_URL")
		response["database_name"] = envStatus("DATABASE_NAME")
		response["connection_status"] = "Connected"

		collections, err := h.store.ListCollections(c.Request.Context())
		if err != nil {
			response["database"] = "connected_with_error: " + utils.Truncate(err.Error(), 50)
		} else {
			response["collections"] = collections
		}
	}

	c.JSON(http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not_set"
}
