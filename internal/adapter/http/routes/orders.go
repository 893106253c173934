package routes

import (
	"portal_pedidos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathOrders = "/orders"

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.CreateOrder)
		orders.GET("/:order_id", h.GetOrder)
		orders.POST("/:order_id/invoice", h.InvoiceOrder)
		orders.PUT("/:order_id/freight", h.UpdateFreight)
		orders.PUT("/:order_id/installments", h.SetInstallmentSchedule)
		orders.POST("/:order_id/transitions", h.TransitionOrder)
		orders.POST("/:order_id/confirmations", h.ConfirmReceipt)
		orders.PATCH("/:order_id/payment-status", h.SetPaymentStatus)
	}
}
