// internal/handlers/seed.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/threadly/clothing-store-backend/internal/services"
	"github.com/threadly/clothing-store-backend/internal/utils"
)

type SeedHandler struct {
	seedService *services.SeedService
}

func NewSeedHandler(seedService *services.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// POST /seed
func (h *SeedHandler) SeedProducts(c *gin.Context) {
	result, err := h.seedService.Seed(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if result.AlreadySeeded {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Products already seeded",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"inserted": result.Inserted,
	})
}
