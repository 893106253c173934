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

// InstallmentHandler exposes the ledger and payment proof commands on a single installment.
type InstallmentHandler struct {
	ledger usecase.ILedgerUseCase
	proofs usecase.IPaymentProofUseCase
	log    *zap.Logger
}

func NewInstallmentHandler(ledger usecase.ILedgerUseCase, proofs usecase.IPaymentProofUseCase, log *zap.Logger) *InstallmentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InstallmentHandler{ledger: ledger, proofs: proofs, log: log.Named("installments")}
}

// GetInstallment godoc
// @Summary      Get an installment
// @Tags         installments
// @Produce      json
// @Param        installment_id  path      string  true  "Installment ID"
// @Success      200             {object}  response.InstallmentResponse
// @Failure      404             {object}  pkg.HTTPError
// @Router       /installments/{installment_id} [get]
func (h *InstallmentHandler) GetInstallment(c *gin.Context) {
	h.respond(c, "[installment][handler] get", func() (entities.Installment, error) {
		return h.ledger.GetInstallment(c.Request.Context(), c.Param("installment_id"))
	})
}

// SubmitPaymentProof godoc
// @Summary      Attach a payment proof and put the installment under review
// @Tags         installments
// @Accept       json
// @Produce      json
// @Param        installment_id  path      string                      true  "Installment ID"
// @Param        proof           body      request.SubmitProofRequest  true  "Proof"
// @Success      200             {object}  response.InstallmentResponse
// @Router       /installments/{installment_id}/proof [post]
func (h *InstallmentHandler) SubmitPaymentProof(c *gin.Context) {
	var payload request.SubmitProofRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	claimed, err := payload.ResolveClaimedDate()
	if err != nil {
		abortWithError(c, h.log, "[installment][handler] submit proof", err)
		return
	}
	h.respond(c, "[installment][handler] submit proof", func() (entities.Installment, error) {
		return h.proofs.Submit(c.Request.Context(), c.Param("installment_id"), payload.ProofURL, claimed)
	})
}

// ApprovePaymentProof godoc
// @Summary      Approve the proof and mark the installment as paid
// @Tags         installments
// @Accept       json
// @Produce      json
// @Param        installment_id  path      string                       true  "Installment ID"
// @Param        approval        body      request.ApproveProofRequest  true  "Confirmed payment date"
// @Success      200             {object}  response.InstallmentResponse
// @Router       /installments/{installment_id}/proof/approve [post]
func (h *InstallmentHandler) ApprovePaymentProof(c *gin.Context) {
	var payload request.ApproveProofRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	confirmed, err := payload.ResolveConfirmedDate()
	if err != nil {
		abortWithError(c, h.log, "[installment][handler] approve proof", err)
		return
	}
	h.respond(c, "[installment][handler] approve proof", func() (entities.Installment, error) {
		return h.proofs.Approve(c.Request.Context(), c.Param("installment_id"), confirmed)
	})
}

// RejectPaymentProof godoc
// @Summary      Reject the proof and return the installment to pending
// @Tags         installments
// @Accept       json
// @Produce      json
// @Param        installment_id  path      string                      true  "Installment ID"
// @Param        rejection       body      request.RejectProofRequest  true  "Reason"
// @Success      200             {object}  response.InstallmentResponse
// @Router       /installments/{installment_id}/proof/reject [post]
func (h *InstallmentHandler) RejectPaymentProof(c *gin.Context) {
	var payload request.RejectProofRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	h.respond(c, "[installment][handler] reject proof", func() (entities.Installment, error) {
		return h.proofs.Reject(c.Request.Context(), c.Param("installment_id"), payload.Reason)
	})
}

// MarkInstallmentPaid godoc
// @Summary      Mark an installment as paid
// @Tags         installments
// @Accept       json
// @Produce      json
// @Param        installment_id  path      string                   true  "Installment ID"
// @Param        payment         body      request.MarkPaidRequest  true  "Payment date"
// @Success      200             {object}  response.InstallmentResponse
// @Router       /installments/{installment_id}/mark-paid [post]
func (h *InstallmentHandler) MarkInstallmentPaid(c *gin.Context) {
	var payload request.MarkPaidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	paidAt, err := payload.ResolvePaymentDate()
	if err != nil {
		abortWithError(c, h.log, "[installment][handler] mark paid", err)
		return
	}
	h.respond(c, "[installment][handler] mark paid", func() (entities.Installment, error) {
		return h.ledger.MarkInstallmentPaid(c.Request.Context(), c.Param("installment_id"), paidAt)
	})
}

// MarkInstallmentPending godoc
// @Summary      Revert a paid installment to pending
// @Tags         installments
// @Produce      json
// @Param        installment_id  path      string  true  "Installment ID"
// @Success      200             {object}  response.InstallmentResponse
// @Router       /installments/{installment_id}/mark-pending [post]
func (h *InstallmentHandler) MarkInstallmentPending(c *gin.Context) {
	h.respond(c, "[installment][handler] mark pending", func() (entities.Installment, error) {
		return h.ledger.MarkInstallmentPending(c.Request.Context(), c.Param("installment_id"))
	})
}

// IssueBoleto godoc
// @Summary      Issue the boleto of an installment
// @Tags         installments
// @Accept       json
// @Produce      json
// @Param        installment_id  path      string                      true   "Installment ID"
// @Param        payer           body      request.IssueBoletoRequest  false  "Payer"
// @Success      200             {object}  response.InstallmentResponse
// @Router       /installments/{installment_id}/boleto [post]
func (h *InstallmentHandler) IssueBoleto(c *gin.Context) {
	var payload request.IssueBoletoRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			badPayload(c, err)
			return
		}
	}
	h.respond(c, "[installment][handler] issue boleto", func() (entities.Installment, error) {
		return h.ledger.IssueBoleto(c.Request.Context(), c.Param("installment_id"), payload.Payer())
	})
}

func (h *InstallmentHandler) respond(c *gin.Context, action string, run func() (entities.Installment, error)) {
	it, err := run()
	if err != nil {
		abortWithError(c, h.log, action, err)
		return
	}
	h.log.Debug(action+" done", zap.String("installment_id", it.ID), zap.String("status", string(it.Status)))
	c.JSON(http.StatusOK, response.FromInstallment(it))
}
