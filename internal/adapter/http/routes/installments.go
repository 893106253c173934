package routes

import (
	"portal_pedidos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathInstallments = "/installments"

func addInstallmentRoutes(rg *gin.RouterGroup, h *handlers.InstallmentHandler) {
	installments := rg.Group(PathInstallments)
	{
		installments.GET("/:installment_id", h.GetInstallment)
		installments.POST("/:installment_id/proof", h.SubmitPaymentProof)
		installments.POST("/:installment_id/proof/approve", h.ApprovePaymentProof)
		installments.POST("/:installment_id/proof/reject", h.RejectPaymentProof)
		installments.POST("/:installment_id/mark-paid", h.MarkInstallmentPaid)
		installments.POST("/:installment_id/mark-pending", h.MarkInstallmentPending)
		installments.POST("/:installment_id/boleto", h.IssueBoleto)
	}
}
