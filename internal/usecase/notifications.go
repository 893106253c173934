package usecase

import (
	"context"
	"sync"
	"time"

	"portal_pedidos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Notification events emitted after a successful commit.
const (
	EventOrderCreated        = "order.created"
	EventOrderStatusChanged  = "order.status_changed"
	EventInstallmentsUpdated = "installments.updated"
	EventInstallmentPaid     = "installment.paid"
	EventInstallmentReopened = "installment.reopened"
	EventProofSubmitted      = "payment_proof.submitted"
	EventProofApproved       = "payment_proof.approved"
	EventProofRejected       = "payment_proof.rejected"
	EventBoletoIssued        = "installment.boleto_issued"
	EventCustomerBlocked     = "customer.blocked"
	EventCustomerUnblocked   = "customer.unblocked"
)

const notifyTimeout = 10 * time.Second

type notification struct {
	customerID string
	event      string
	payload    map[string]any
}

// dispatcher fires notifications without blocking the caller. A failed delivery
// never affects the committed state.
type dispatcher struct {
	notifier interfaces.INotifier
	logger   *zap.Logger
	wg       sync.WaitGroup
}

func (d *dispatcher) dispatch(batch []notification) {
	if d == nil || d.notifier == nil {
		return
	}
	for _, n := range batch {
		d.wg.Add(1)
		go func(n notification) {
			defer d.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := d.notifier.Notify(ctx, n.customerID, n.event, n.payload); err != nil {
				d.logger.Warn("[notify] delivery failed",
					zap.String("customer_id", n.customerID),
					zap.String("event", n.event),
					zap.Error(err))
			}
		}(n)
	}
}

// wait blocks until in-flight deliveries finish.
func (d *dispatcher) wait() {
	if d != nil {
		d.wg.Wait()
	}
}
