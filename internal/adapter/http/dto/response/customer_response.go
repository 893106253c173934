package response

import (
	"time"

	"portal_pedidos/internal/domain/entities"
)

type CustomerResponse struct {
	ID               string    `json:"id"`
	CustomerID       string    `json:"customer_id"`
	StoreID          string    `json:"store_id,omitempty"`
	Blocked          bool      `json:"blocked"`
	BlockReason      string    `json:"block_reason,omitempty"`
	BlockDate        string    `json:"block_date,omitempty"`
	TotalOverdue     string    `json:"total_overdue"`
	TotalOutstanding string    `json:"total_outstanding"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type DelinquencyResponse struct {
	CustomerID          string                `json:"customer_id"`
	StoreID             string                `json:"store_id,omitempty"`
	Blocked             bool                  `json:"blocked"`
	BlockReason         string                `json:"block_reason,omitempty"`
	BlockDate           string                `json:"block_date,omitempty"`
	OverdueInstallments []InstallmentResponse `json:"overdue_installments"`
	TotalOverdue        string                `json:"total_overdue"`
	TotalOutstanding    string                `json:"total_outstanding"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:               c.ID,
		CustomerID:       c.CustomerID,
		StoreID:          c.StoreID,
		Blocked:          c.Blocked,
		BlockReason:      c.BlockReason,
		BlockDate:        datePtr(c.BlockDate),
		TotalOverdue:     money(c.TotalOverdue),
		TotalOutstanding: money(c.TotalOutstanding),
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromDelinquencyReport(r entities.DelinquencyReport) DelinquencyResponse {
	return DelinquencyResponse{
		CustomerID:          r.CustomerID,
		StoreID:             r.StoreID,
		Blocked:             r.Blocked,
		BlockReason:         r.BlockReason,
		BlockDate:           datePtr(r.BlockDate),
		OverdueInstallments: FromInstallments(r.OverdueInstallments),
		TotalOverdue:        money(r.TotalOverdue),
		TotalOutstanding:    money(r.TotalOutstanding),
	}
}
