package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/interfaces/http/handler"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/interfaces/http/middleware"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/metrics"
)

func RegisterRoutes(r *gin.Engine, checkoutHandler *handler.CheckoutHandler, ordersHandler *handler.OrdersHandler) {
	r.Use(middleware.RequestID(), middleware.CORS())

	api := r.Group("/api")
	{
		api.POST("/checkout", checkoutHandler.Checkout)
		api.GET("/orders", ordersHandler.ListOrders)
	}

	r.GET("/healthz", handler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
