package handlers

import (
	"net/http"

	response "portal_pedidos/internal/adapter/http/dto/response"
	"portal_pedidos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	usecase usecase.IDelinquencyUseCase
	log     *zap.Logger
}

func NewCustomerHandler(uc usecase.IDelinquencyUseCase, log *zap.Logger) *CustomerHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomerHandler{usecase: uc, log: log.Named("customers")}
}

// CheckDelinquency godoc
// @Summary      Evaluate the delinquency of a customer, blocking it when installments are overdue
// @Tags         customers
// @Produce      json
// @Param        customer_id  path      string  true   "Customer ID"
// @Param        store_id     query     string  false  "Store ID"
// @Success      200          {object}  response.DelinquencyResponse
// @Router       /customers/{customer_id}/delinquency [get]
func (h *CustomerHandler) CheckDelinquency(c *gin.Context) {
	report, err := h.usecase.Evaluate(c.Request.Context(), c.Param("customer_id"), c.Query("store_id"))
	if err != nil {
		abortWithError(c, h.log, "[customer][handler] check delinquency", err)
		return
	}
	if report.Blocked {
		h.log.Info("[customer][handler] customer blocked",
			zap.String("customer_id", report.CustomerID),
			zap.String("store_id", report.StoreID),
			zap.Int("overdue_installments", len(report.OverdueInstallments)),
		)
	}
	c.JSON(http.StatusOK, response.FromDelinquencyReport(report))
}

// UnblockCustomer godoc
// @Summary      Unblock a customer with no overdue installments
// @Tags         customers
// @Produce      json
// @Param        customer_id  path      string  true   "Customer ID"
// @Param        store_id     query     string  false  "Store ID"
// @Success      200          {object}  response.CustomerResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /customers/{customer_id}/unblock [post]
func (h *CustomerHandler) UnblockCustomer(c *gin.Context) {
	customer, err := h.usecase.Unblock(c.Request.Context(), c.Param("customer_id"), c.Query("store_id"))
	if err != nil {
		abortWithError(c, h.log, "[customer][handler] unblock", err)
		return
	}
	h.log.Info("[customer][handler] customer unblocked", zap.String("account_id", customer.ID))
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}
