package entities

import (
	"strings"
	"time"
)

// OrderStatus is the fulfillment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "new"
	OrderStatusInProduction    OrderStatus = "in_production"
	OrderStatusInvoiced        OrderStatus = "invoiced"
	OrderStatusInTransit       OrderStatus = "in_transit"
	OrderStatusAwaitingPayment OrderStatus = "awaiting_payment"
	OrderStatusFinalized       OrderStatus = "finalized"
	OrderStatusCancelled       OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := orderTransitions[st]; !ok {
		return "", ValidationError("unknown order status %q", s)
	}
	return st, nil
}

// OrderAction is an operator-driven command on the order lifecycle.
type OrderAction string

const (
	ActionApprove       OrderAction = "approve"
	ActionInvoice       OrderAction = "invoice"
	ActionShip          OrderAction = "ship"
	ActionMarkDelivered OrderAction = "mark_delivered"
	ActionCancel        OrderAction = "cancel"
)

func ParseOrderAction(s string) (OrderAction, error) {
	switch a := OrderAction(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionApprove, ActionInvoice, ActionShip, ActionMarkDelivered, ActionCancel:
		return a, nil
	}
	return "", ValidationError("unknown order action %q", s)
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:             {OrderStatusInProduction, OrderStatusCancelled},
	OrderStatusInProduction:    {OrderStatusInvoiced, OrderStatusCancelled},
	OrderStatusInvoiced:        {OrderStatusInTransit, OrderStatusCancelled},
	OrderStatusInTransit:       {OrderStatusAwaitingPayment, OrderStatusFinalized, OrderStatusCancelled},
	OrderStatusAwaitingPayment: {OrderStatusFinalized, OrderStatusCancelled},
	OrderStatusFinalized:       {OrderStatusAwaitingPayment},
	OrderStatusCancelled:       {},
}

type edge struct{ from, to OrderStatus }

// Edges that only the ledger may drive.
var automaticEdges = map[edge]bool{
	{OrderStatusAwaitingPayment, OrderStatusFinalized}: true,
	{OrderStatusFinalized, OrderStatusAwaitingPayment}: true,
}

// CanTransition reports whether from -> to is an edge of the lifecycle.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo moves the order along one edge. Operator calls (automatic=false)
// cannot use the ledger-driven awaiting_payment <-> finalized edges.
func (o *Order) TransitionTo(next OrderStatus, automatic bool) error {
	if !CanTransition(o.Status, next) {
		return InvalidTransitionError("order %s cannot go from %s to %s", o.ID, o.Status, next)
	}
	if automaticEdges[edge{o.Status, next}] && !automatic {
		return InvalidTransitionError("order %s: %s -> %s is driven by the ledger", o.ID, o.Status, next)
	}
	o.Status = next
	return nil
}

// Approve accepts a new order into production.
func (o *Order) Approve() error {
	if o.Status != OrderStatusNew {
		return InvalidTransitionError("order %s must be %s to approve, got %s", o.ID, OrderStatusNew, o.Status)
	}
	return o.TransitionTo(OrderStatusInProduction, false)
}

// Invoice records the supplier invoice (nota fiscal).
func (o *Order) Invoice(invoiceRef string) error {
	invoiceRef = strings.TrimSpace(invoiceRef)
	if invoiceRef == "" {
		return ValidationError("invoice reference is required")
	}
	if o.Status != OrderStatusInProduction {
		return InvalidTransitionError("order %s must be %s to invoice, got %s", o.ID, OrderStatusInProduction, o.Status)
	}
	if err := o.TransitionTo(OrderStatusInvoiced, false); err != nil {
		return err
	}
	o.InvoiceRef = invoiceRef
	return nil
}

// ShipParams carries the ship action inputs. Either carrier and tracking code, or an
// explicit freight type selection (e.g. FOB pickup by the buyer) must be informed.
type ShipParams struct {
	Carrier      string
	TrackingCode string
	FreightType  FreightType
}

func (o *Order) Ship(p ShipParams) error {
	if o.Status != OrderStatusInvoiced {
		return InvalidTransitionError("order %s must be %s to ship, got %s", o.ID, OrderStatusInvoiced, o.Status)
	}
	carrier := strings.TrimSpace(p.Carrier)
	tracking := strings.TrimSpace(p.TrackingCode)
	hasCarrier := carrier != "" && tracking != ""
	if !hasCarrier && p.FreightType == "" {
		return InvalidTransitionError("order %s: ship requires transportadora and tracking code, or a freight type", o.ID)
	}
	if err := o.TransitionTo(OrderStatusInTransit, false); err != nil {
		return err
	}
	o.Carrier = carrier
	o.TrackingCode = tracking
	if p.FreightType != "" {
		o.FreightType = p.FreightType
	}
	return nil
}

// MarkDelivered flags the goods as delivered; the caller settles the order right after.
func (o *Order) MarkDelivered(at time.Time) error {
	if o.Status != OrderStatusInTransit {
		return InvalidTransitionError("order %s must be %s to mark delivered, got %s", o.ID, OrderStatusInTransit, o.Status)
	}
	o.DeliveredAt = &at
	return nil
}

// Cancel is allowed from every state except finalized and cancelled.
func (o *Order) Cancel(reason string, at time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ValidationError("cancel reason is required")
	}
	if o.Status == OrderStatusFinalized || o.Status == OrderStatusCancelled {
		return InvalidTransitionError("order %s cannot be cancelled from %s", o.ID, o.Status)
	}
	if err := o.TransitionTo(OrderStatusCancelled, false); err != nil {
		return err
	}
	o.CancelReason = reason
	o.CancelledAt = &at
	o.PaymentStatus = PaymentStatusCancelled
	return nil
}

// Settle derives the payment status from the ledger and applies the automatic
// lifecycle rules. It reports whether the order status changed.
func (o *Order) Settle(l Ledger, today time.Time) (bool, error) {
	if o.Status == OrderStatusCancelled {
		return false, nil
	}
	if status, ok := l.PaymentStatus(today); ok {
		o.PaymentStatus = status
	}

	allPaid := o.AllPaid(l)
	before := o.Status
	switch o.Status {
	case OrderStatusInTransit, OrderStatusAwaitingPayment:
		if !o.receivedOrDelivered() {
			break
		}
		target := OrderStatusAwaitingPayment
		if allPaid {
			target = OrderStatusFinalized
		}
		if target != o.Status {
			if err := o.TransitionTo(target, true); err != nil {
				return false, err
			}
		}
	case OrderStatusFinalized:
		if !allPaid {
			if err := o.TransitionTo(OrderStatusAwaitingPayment, true); err != nil {
				return false, err
			}
		}
	}
	return before != o.Status, nil
}

// AllPaid is the ledger verdict, falling back to the payment status when the
// order has no installments at all.
func (o Order) AllPaid(l Ledger) bool {
	if l.ActiveCount() > 0 {
		return l.AllPaid()
	}
	return o.PaymentStatus == PaymentStatusPaid
}
