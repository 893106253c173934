package interfaces

import "context"

// INotifier delivers customer notifications (e-mail, push). Calls are fire-and-forget:
// the core dispatches them after commit and only logs failures.

type INotifier interface {
	Notify(ctx context.Context, customerID string, event string, payload map[string]any) error
}
