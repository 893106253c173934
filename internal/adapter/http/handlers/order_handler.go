package handlers

import (
	"net/http"

	request "portal_pedidos/internal/adapter/http/dto/request"
	response "portal_pedidos/internal/adapter/http/dto/response"
	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler exposes the order lifecycle commands.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	log     *zap.Logger
}

func NewOrderHandler(uc usecase.IOrderUseCase, log *zap.Logger) *OrderHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderHandler{usecase: uc, log: log.Named("orders")}
}

// CreateOrder godoc
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.CreateOrderRequest  true  "Order"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      403    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWithError(c, h.log, "[order][handler] create", err)
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), in)
	if err != nil {
		abortWithError(c, h.log, "[order][handler] create", err)
		return
	}
	h.log.Info("[order][handler] order created", zap.String("order_id", order.ID))
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary      Get an order with its installments and totals
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  response.OrderViewResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	view, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		abortWithError(c, h.log, "[order][handler] get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderView(view))
}

// InvoiceOrder godoc
// @Summary      Invoice an order and materialize its installments
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                       true  "Order ID"
// @Param        invoice   body      request.InvoiceOrderRequest  true  "Invoice"
// @Success      200       {object}  response.OrderViewResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/invoice [post]
func (h *OrderHandler) InvoiceOrder(c *gin.Context) {
	var payload request.InvoiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWithError(c, h.log, "[order][handler] invoice", err)
		return
	}
	h.respondView(c, "[order][handler] invoice", func() (usecase.OrderView, error) {
		return h.usecase.InvoiceOrder(c.Request.Context(), c.Param("order_id"), in)
	})
}

// UpdateFreight godoc
// @Summary      Update the order freight and redistribute open installments
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                  true  "Order ID"
// @Param        freight   body      request.FreightRequest  true  "Freight"
// @Success      200       {object}  response.OrderViewResponse
// @Router       /orders/{order_id}/freight [put]
func (h *OrderHandler) UpdateFreight(c *gin.Context) {
	var payload request.FreightRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWithError(c, h.log, "[order][handler] update freight", err)
		return
	}
	h.respondView(c, "[order][handler] update freight", func() (usecase.OrderView, error) {
		return h.usecase.UpdateFreight(c.Request.Context(), c.Param("order_id"), in)
	})
}

// SetInstallmentSchedule godoc
// @Summary      Replace the installment plan of an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                   true  "Order ID"
// @Param        schedule  body      request.ScheduleRequest  true  "Schedule"
// @Success      200       {object}  response.OrderViewResponse
// @Failure      422       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/installments [put]
func (h *OrderHandler) SetInstallmentSchedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWithError(c, h.log, "[order][handler] set schedule", err)
		return
	}
	h.respondView(c, "[order][handler] set schedule", func() (usecase.OrderView, error) {
		return h.usecase.SetInstallmentSchedule(c.Request.Context(), c.Param("order_id"), in)
	})
}

// TransitionOrder godoc
// @Summary      Apply a lifecycle action (approve, invoice, ship, deliver, finalize, cancel)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id    path      string                     true  "Order ID"
// @Param        transition  body      request.TransitionRequest  true  "Action"
// @Success      200         {object}  response.OrderViewResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /orders/{order_id}/transitions [post]
func (h *OrderHandler) TransitionOrder(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWithError(c, h.log, "[order][handler] transition", err)
		return
	}
	h.respondView(c, "[order][handler] transition", func() (usecase.OrderView, error) {
		return h.usecase.TransitionOrder(c.Request.Context(), c.Param("order_id"), in)
	})
}

// ConfirmReceipt godoc
// @Summary      Record a receipt confirmation by the buyer
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id      path      string                         true  "Order ID"
// @Param        confirmation  body      request.ConfirmReceiptRequest  true  "Kind: invoice, boleto or goods"
// @Success      200           {object}  response.OrderViewResponse
// @Router       /orders/{order_id}/confirmations [post]
func (h *OrderHandler) ConfirmReceipt(c *gin.Context) {
	var payload request.ConfirmReceiptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	kind, err := entities.ParseReceiptKind(payload.Kind)
	if err != nil {
		abortWithError(c, h.log, "[order][handler] confirm receipt", err)
		return
	}
	h.respondView(c, "[order][handler] confirm receipt", func() (usecase.OrderView, error) {
		return h.usecase.ConfirmReceipt(c.Request.Context(), c.Param("order_id"), kind)
	})
}

// SetPaymentStatus godoc
// @Summary      Set the payment status of an order without installments
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                        true  "Order ID"
// @Param        status    body      request.PaymentStatusRequest  true  "Payment status"
// @Success      200       {object}  response.OrderViewResponse
// @Router       /orders/{order_id}/payment-status [patch]
func (h *OrderHandler) SetPaymentStatus(c *gin.Context) {
	var payload request.PaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	status, err := entities.ParsePaymentStatus(payload.PaymentStatus)
	if err != nil {
		abortWithError(c, h.log, "[order][handler] set payment status", err)
		return
	}
	h.respondView(c, "[order][handler] set payment status", func() (usecase.OrderView, error) {
		return h.usecase.SetPaymentStatus(c.Request.Context(), c.Param("order_id"), status)
	})
}

func (h *OrderHandler) respondView(c *gin.Context, action string, run func() (usecase.OrderView, error)) {
	view, err := run()
	if err != nil {
		abortWithError(c, h.log, action, err)
		return
	}
	h.log.Info(action+" done",
		zap.String("order_id", view.Order.ID),
		zap.String("status", string(view.Order.Status)),
		zap.Int64("version", view.Order.Version),
	)
	c.JSON(http.StatusOK, response.FromOrderView(view))
}
