package interfaces

import (
	"context"
	"portal_pedidos/internal/domain/entities"
)

// IInstallmentRepository reads the ledger.
//
// The billing ledger must be able to:
//   - resolve an installment by id (proof workflow, manual payment)
//   - list every installment of an order (schedule regeneration, aggregates)
//   - list every installment of a customer (delinquency check)

type IInstallmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Installment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Installment, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Installment, error)
}
