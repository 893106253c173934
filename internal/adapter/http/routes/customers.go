package routes

import (
	"portal_pedidos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCustomers = "/customers"

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("/:customer_id/delinquency", h.CheckDelinquency)
		customers.POST("/:customer_id/unblock", h.UnblockCustomer)
	}
}
