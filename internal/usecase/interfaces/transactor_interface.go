package interfaces

import (
	"context"
	"portal_pedidos/internal/domain/entities"
)

// ITransactor commits a Changeset atomically. A stale ExpectedVersion (or an
// existing order when NewOrder is set) fails with entities.ErrConcurrentModification
// and nothing is written.

type ITransactor interface {
	Commit(ctx context.Context, cs entities.Changeset) error
}
