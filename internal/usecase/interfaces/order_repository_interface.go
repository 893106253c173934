package interfaces

import (
	"context"
	"portal_pedidos/internal/domain/entities"
)

// IOrderRepository reads orders. Writes go through ITransactor so the order row and
// its installments change together.
//
// GetByID returns a zero Order (empty ID) when the order does not exist.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
}
