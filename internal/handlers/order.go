// internal/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/threadly/clothing-store-backend/internal/models"
	"github.com/threadly/clothing-store-backend/internal/services"
	"github.com/threadly/clothing-store-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	// Reject before any store interaction.
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&order)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	orderID, err := h.orderService.CreateOrder(c.Request.Context(), &order)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"order_id": orderID,
	})
}
