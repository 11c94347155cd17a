package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/application/checkout"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/order"
)

type CheckoutHandler struct {
	svc *checkout.Service
}

func NewCheckoutHandler(svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// Checkout accepts a finalized order, persists it, and returns the
// assigned id. Notifications happen after the response, never on it.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var cmd checkout.SubmitOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.svc.Submit(c.Request.Context(), cmd)
	if err != nil {
		if errors.Is(err, order.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist order: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"order_id": id,
	})
}
