package handlers

import (
	"net/http"
	"testing"
	"time"

	"portal_pedidos/internal/adapter/http/handlers/mocks"
	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInstallmentRouter(t *testing.T) (*gin.Engine, *mocks.MockILedgerUseCase, *mocks.MockIPaymentProofUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockILedgerUseCase(ctrl)
	proofs := mocks.NewMockIPaymentProofUseCase(ctrl)
	h := NewInstallmentHandler(ledger, proofs, nil)

	r := gin.New()
	r.GET("/v1/installments/:installment_id", h.GetInstallment)
	r.POST("/v1/installments/:installment_id/proof", h.SubmitPaymentProof)
	r.POST("/v1/installments/:installment_id/proof/approve", h.ApprovePaymentProof)
	r.POST("/v1/installments/:installment_id/proof/reject", h.RejectPaymentProof)
	r.POST("/v1/installments/:installment_id/mark-paid", h.MarkInstallmentPaid)
	r.POST("/v1/installments/:installment_id/mark-pending", h.MarkInstallmentPending)
	r.POST("/v1/installments/:installment_id/boleto", h.IssueBoleto)
	return r, ledger, proofs
}

func TestInstallmentHandler_GetInstallment(t *testing.T) {
	r, ledger, _ := newInstallmentRouter(t)
	ledger.EXPECT().GetInstallment(gomock.Any(), "missing").Return(entities.Installment{}, entities.NotFoundError("installment missing"))

	w := doJSON(r, http.MethodGet, "/v1/installments/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestInstallmentHandler_ProofWorkflow(t *testing.T) {
	t.Run("submit without proof url", func(t *testing.T) {
		r, _, _ := newInstallmentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/installments/i1/proof", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submit", func(t *testing.T) {
		r, _, proofs := newInstallmentRouter(t)
		claimed := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		proofs.EXPECT().Submit(gomock.Any(), "i1", "https://files.example.com/p.pdf", claimed).
			Return(entities.Installment{ID: "i1", Status: entities.InstallmentUnderReview}, nil)

		w := doJSON(r, http.MethodPost, "/v1/installments/i1/proof", `{"proof_url":"https://files.example.com/p.pdf","claimed_date":"2026-03-14"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("approve a pending installment", func(t *testing.T) {
		r, _, proofs := newInstallmentRouter(t)
		proofs.EXPECT().Approve(gomock.Any(), "i1", gomock.Any()).
			Return(entities.Installment{}, entities.InvalidTransitionError("installment i1 has no proof under review"))

		w := doJSON(r, http.MethodPost, "/v1/installments/i1/proof/approve", `{"confirmed_date":"2026-03-14"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		r, _, _ := newInstallmentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/installments/i1/proof/reject", `{"reason":""}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject", func(t *testing.T) {
		r, _, proofs := newInstallmentRouter(t)
		proofs.EXPECT().Reject(gomock.Any(), "i1", "ilegível").
			Return(entities.Installment{ID: "i1", Status: entities.InstallmentPending}, nil)

		w := doJSON(r, http.MethodPost, "/v1/installments/i1/proof/reject", `{"reason":"ilegível"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInstallmentHandler_MarkPaid(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		r, _, _ := newInstallmentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/installments/i1/mark-paid", `{"payment_date":"14/03/2026"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, ledger, _ := newInstallmentRouter(t)
		paid := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		ledger.EXPECT().MarkInstallmentPaid(gomock.Any(), "i1", paid).
			Return(entities.Installment{ID: "i1", Status: entities.InstallmentPaid, PaidAt: &paid}, nil)

		w := doJSON(r, http.MethodPost, "/v1/installments/i1/mark-paid", `{"payment_date":"2026-03-14"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mark pending on a frozen order", func(t *testing.T) {
		r, ledger, _ := newInstallmentRouter(t)
		ledger.EXPECT().MarkInstallmentPending(gomock.Any(), "i1").
			Return(entities.Installment{}, entities.InvalidTransitionError("order o1 is finalized"))

		w := doJSON(r, http.MethodPost, "/v1/installments/i1/mark-pending", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestInstallmentHandler_IssueBoleto(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		r, ledger, _ := newInstallmentRouter(t)
		ledger.EXPECT().IssueBoleto(gomock.Any(), "i1", interfaces.BoletoPayer{}).
			Return(entities.Installment{ID: "i1", Boleto: entities.Boleto{ExternalID: "987", URL: "https://mp/ticket"}}, nil)

		w := doJSON(r, http.MethodPost, "/v1/installments/i1/boleto", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("payer identification is passed through", func(t *testing.T) {
		r, ledger, _ := newInstallmentRouter(t)
		want := interfaces.BoletoPayer{Email: "fin@loja.com.br", FirstName: "Maria", LastName: "Souza", DocumentType: "CPF", DocumentNumber: "19119119100"}
		ledger.EXPECT().IssueBoleto(gomock.Any(), "i1", want).
			Return(entities.Installment{ID: "i1", Boleto: entities.Boleto{ExternalID: "987"}}, nil)

		body := `{"payer_email":"fin@loja.com.br","payer_first_name":"Maria","payer_last_name":"Souza","payer_document_type":"CPF","payer_document_number":"19119119100"}`
		w := doJSON(r, http.MethodPost, "/v1/installments/i1/boleto", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown document type", func(t *testing.T) {
		r, _, _ := newInstallmentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/installments/i1/boleto", `{"payer_document_type":"RG"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		r, _, _ := newInstallmentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/installments/i1/boleto", `{"payer_email":"nope"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
