package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/repository"
)

// OrdersHandler serves the read-only order listing for administrators.
// It never writes the store and tolerates an absent or corrupt backing
// resource by returning an empty list.
type OrdersHandler struct {
	store repository.OrderStore
}

func NewOrdersHandler(store repository.OrderStore) *OrdersHandler {
	return &OrdersHandler{store: store}
}

func (h *OrdersHandler) ListOrders(c *gin.Context) {
	orders := h.store.Load(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// Health is the trivial liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
