package interfaces

import (
	"context"
	"time"

	"portal_pedidos/internal/domain/entities"
)

// BoletoPayer identifies who the bank slip is drawn against.
type BoletoPayer struct {
	Email          string
	FirstName      string
	LastName       string
	DocumentType   string // CPF or CNPJ
	DocumentNumber string
}

// BoletoRequest is what a payment provider needs to issue a bank slip for an installment.
type BoletoRequest struct {
	InstallmentID string
	OrderID       string
	CustomerID    string
	Payer         BoletoPayer
	Description   string
	Amount        entities.Money
	DueDate       time.Time
}

// IBoletoGateway abstracts the boleto issuer (e.g. Mercado Pago).
//
// IssueBoleto is idempotent per InstallmentID: a retry for the same installment,
// amount and due date returns the slip already issued instead of a second one.
type IBoletoGateway interface {
	IssueBoleto(ctx context.Context, req BoletoRequest) (entities.Boleto, error)
}
