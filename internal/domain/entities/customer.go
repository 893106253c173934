package entities

import (
	"fmt"
	"strings"
	"time"
)

const accountSeparator = "#"

// AccountID identifies a customer account, optionally scoped to one of its stores.
func AccountID(customerID, storeID string) string {
	customerID = strings.TrimSpace(customerID)
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return customerID
	}
	return customerID + accountSeparator + storeID
}

// Customer is the financial state of a buyer account (or of one of its stores).
//
// Storage model:
//   - PK: id (AccountID)
//
// TotalOutstanding is moved with atomic increments by the ledger. TotalOverdue is
// owned by the delinquency check alone, which replaces it with a fresh snapshot
// conditional on the value it read.
type Customer struct {
	ID               string     `json:"id"`
	CustomerID       string     `json:"customer_id"`
	StoreID          string     `json:"store_id,omitempty"`
	Blocked          bool       `json:"blocked"`
	BlockReason      string     `json:"block_reason,omitempty"`
	BlockDate        *time.Time `json:"block_date,omitempty"`
	TotalOverdue     Money      `json:"total_overdue"`
	TotalOutstanding Money      `json:"total_outstanding"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CustomerDelta is an atomic adjustment of a customer account's totals.
type CustomerDelta struct {
	AccountID   string
	CustomerID  string
	StoreID     string
	Outstanding Money
}

func (d CustomerDelta) IsZero() bool {
	return d.Outstanding.IsZero()
}

// BlockReason renders the message stored when an account is blocked.
func BlockReason(overdue []Installment) string {
	oldest := time.Time{}
	for _, it := range overdue {
		if oldest.IsZero() || it.DueDate.Before(oldest) {
			oldest = it.DueDate
		}
	}
	return fmt.Sprintf("%d parcela(s) em atraso desde %s", len(overdue), FormatDate(oldest))
}

// DelinquencyReport is the outcome of a delinquency check.
type DelinquencyReport struct {
	CustomerID          string        `json:"customer_id"`
	StoreID             string        `json:"store_id,omitempty"`
	Blocked             bool          `json:"blocked"`
	BlockReason         string        `json:"block_reason,omitempty"`
	BlockDate           *time.Time    `json:"block_date,omitempty"`
	OverdueInstallments []Installment `json:"overdue_installments"`
	TotalOverdue        Money         `json:"total_overdue"`
	TotalOutstanding    Money         `json:"total_outstanding"`
}
