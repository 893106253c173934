package notifications

import (
	"context"

	"portal_pedidos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogNotifier writes customer notifications to the application log.
// It stands in for the messaging integration, which lives outside this service.
type LogNotifier struct {
	log *zap.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log.Named("notifications")}
}

func (n *LogNotifier) Notify(ctx context.Context, customerID, event string, payload map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.log.Info("[notification][customer] "+event,
		zap.String("customer_id", customerID),
		zap.Any("payload", payload),
	)
	return nil
}
