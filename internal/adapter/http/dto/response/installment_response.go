package response

import (
	"time"

	"portal_pedidos/internal/domain/entities"
)

type ProofResponse struct {
	Status          string     `json:"status"`
	URL             string     `json:"url,omitempty"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	ClaimedDate     string     `json:"claimed_date,omitempty"`
	Analyzed        bool       `json:"analyzed"`
	Approved        bool       `json:"approved"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

type BoletoResponse struct {
	URL        string     `json:"url,omitempty"`
	Barcode    string     `json:"barcode,omitempty"`
	ExternalID string     `json:"external_id,omitempty"`
	IssuedAt   *time.Time `json:"issued_at,omitempty"`
}

type InstallmentResponse struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	CustomerID string          `json:"customer_id"`
	StoreID    string          `json:"store_id,omitempty"`
	Sequence   int             `json:"sequence"`
	TotalCount int             `json:"total_count"`
	Amount     string          `json:"amount" example:"333.34"`
	DueDate    string          `json:"due_date" example:"2026-04-15"`
	Status     string          `json:"status"`
	PaidAt     string          `json:"paid_at,omitempty"`
	Proof      ProofResponse   `json:"proof"`
	Boleto     *BoletoResponse `json:"boleto,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func money(m entities.Money) string {
	return m.StringFixed(2)
}

func datePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return entities.FormatDate(*t)
}

func FromInstallment(i entities.Installment) InstallmentResponse {
	res := InstallmentResponse{
		ID:         i.ID,
		OrderID:    i.OrderID,
		CustomerID: i.CustomerID,
		StoreID:    i.StoreID,
		Sequence:   i.Sequence,
		TotalCount: i.TotalCount,
		Amount:     money(i.Amount),
		DueDate:    entities.FormatDate(i.DueDate),
		Status:     string(i.Status),
		PaidAt:     datePtr(i.PaidAt),
		Proof: ProofResponse{
			Status:          string(i.Proof.Status),
			URL:             i.Proof.URL,
			SubmittedAt:     i.Proof.SubmittedAt,
			ClaimedDate:     datePtr(i.Proof.ClaimedDate),
			Analyzed:        i.Proof.Analyzed,
			Approved:        i.Proof.Approved,
			RejectionReason: i.Proof.RejectionReason,
		},
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
	if i.Boleto.ExternalID != "" || i.Boleto.URL != "" {
		res.Boleto = &BoletoResponse{
			URL:        i.Boleto.URL,
			Barcode:    i.Boleto.Barcode,
			ExternalID: i.Boleto.ExternalID,
			IssuedAt:   i.Boleto.IssuedAt,
		}
	}
	return res
}

func FromInstallments(items []entities.Installment) []InstallmentResponse {
	out := make([]InstallmentResponse, len(items))
	for i, it := range items {
		out[i] = FromInstallment(it)
	}
	return out
}
