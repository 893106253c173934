package request

import (
	"strings"
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase/interfaces"
)

// optionalDate parses a YYYY-MM-DD value; empty means "not informed".
func optionalDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return entities.ParseDate(s)
}

type SubmitProofRequest struct {
	ProofURL    string `json:"proof_url" binding:"required" example:"https://files.example.com/comprovante.pdf"`
	ClaimedDate string `json:"claimed_date" example:"2026-03-14"`
}

func (r SubmitProofRequest) ResolveClaimedDate() (time.Time, error) {
	return optionalDate(r.ClaimedDate)
}

type ApproveProofRequest struct {
	ConfirmedDate string `json:"confirmed_date" binding:"required" example:"2026-03-14"`
}

func (r ApproveProofRequest) ResolveConfirmedDate() (time.Time, error) {
	return entities.ParseDate(r.ConfirmedDate)
}

type RejectProofRequest struct {
	Reason string `json:"reason" binding:"required" example:"comprovante ilegível"`
}

type MarkPaidRequest struct {
	PaymentDate string `json:"payment_date" binding:"required" example:"2026-03-14"`
}

func (r MarkPaidRequest) ResolvePaymentDate() (time.Time, error) {
	return entities.ParseDate(r.PaymentDate)
}

type IssueBoletoRequest struct {
	PayerEmail          string `json:"payer_email" binding:"omitempty,email" example:"financeiro@loja.com.br"`
	PayerFirstName      string `json:"payer_first_name" example:"Maria"`
	PayerLastName       string `json:"payer_last_name" example:"Souza"`
	PayerDocumentType   string `json:"payer_document_type" binding:"omitempty,oneof=CPF CNPJ cpf cnpj" example:"CPF"`
	PayerDocumentNumber string `json:"payer_document_number" binding:"omitempty,numeric" example:"19119119100"`
}

func (r IssueBoletoRequest) Payer() interfaces.BoletoPayer {
	return interfaces.BoletoPayer{
		Email:          r.PayerEmail,
		FirstName:      r.PayerFirstName,
		LastName:       r.PayerLastName,
		DocumentType:   r.PayerDocumentType,
		DocumentNumber: r.PayerDocumentNumber,
	}
}
