package interfaces

import (
	"context"
	"portal_pedidos/internal/domain/entities"
)

// ICustomerRepository persists the delinquency state of customer accounts.
//
//   - Block is conditional: it only writes when the account is not blocked yet and
//     always returns the stored state.
//   - SetTotalOverdue stores an absolute snapshot, so repeated checks never double count.
//     The write only lands while the stored total still equals expected (zero for an
//     account that does not exist yet); otherwise it returns ErrConcurrentModification.
//   - GetByID returns a zero Customer (empty ID) for unknown accounts.

type ICustomerRepository interface {
	GetByID(ctx context.Context, accountID string) (entities.Customer, error)
	Block(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Unblock(ctx context.Context, accountID string) (entities.Customer, error)
	SetTotalOverdue(ctx context.Context, accountID, customerID, storeID string, expected, total entities.Money) error
	ListWithOutstanding(ctx context.Context) ([]entities.Customer, error)
}
