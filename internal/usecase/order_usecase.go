package usecase

import (
	"context"
	"strings"
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/domain/freight"
	"portal_pedidos/internal/domain/schedule"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FreightInput is the freight policy informed by the supplier.
type FreightInput struct {
	Amount  entities.Money
	Type    entities.FreightType
	Include bool
	Mode    entities.ChargeMode
}

// ScheduleInput asks for Count installments due on DueDates.
type ScheduleInput struct {
	Count    int
	DueDates []time.Time
}

type CreateOrderInput struct {
	BuyerID       string
	SupplierID    string
	StoreID       string
	PaymentMethod string
	Items         []entities.LineItem
	Freight       *FreightInput
}

type InvoiceInput struct {
	InvoiceRef string
	Freight    *FreightInput
	Schedule   *ScheduleInput
}

type TransitionInput struct {
	Action       entities.OrderAction
	InvoiceRef   string
	Carrier      string
	TrackingCode string
	FreightType  entities.FreightType
	Reason       string
}

// OrderView is an order with its ledger.
type OrderView struct {
	Order        entities.Order
	Installments []entities.Installment
	Totals       entities.LedgerTotals
}

// IOrderUseCase drives an order through its lifecycle.
//
// Requested behavior:
//   - Blocked customers cannot place orders.
//   - Invoicing computes the payable total and materializes the installments.
//   - Freight or schedule changes redistribute the open installments, keeping paid ones.
//   - Payment driven transitions (awaiting_payment <-> finalized) are never requested directly.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (OrderView, error)
	InvoiceOrder(ctx context.Context, orderID string, in InvoiceInput) (OrderView, error)
	UpdateFreight(ctx context.Context, orderID string, in FreightInput) (OrderView, error)
	SetInstallmentSchedule(ctx context.Context, orderID string, in ScheduleInput) (OrderView, error)
	TransitionOrder(ctx context.Context, orderID string, in TransitionInput) (OrderView, error)
	ConfirmReceipt(ctx context.Context, orderID string, kind entities.ReceiptKind) (OrderView, error)
	SetPaymentStatus(ctx context.Context, orderID string, status entities.PaymentStatus) (OrderView, error)
}

type OrderUseCase struct {
	core  *LedgerCore
	guard IDelinquencyUseCase
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(core *LedgerCore, guard IDelinquencyUseCase) *OrderUseCase {
	return &OrderUseCase{core: core, guard: guard}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	in.BuyerID = strings.TrimSpace(in.BuyerID)
	in.SupplierID = strings.TrimSpace(in.SupplierID)
	in.StoreID = strings.TrimSpace(in.StoreID)
	if in.BuyerID == "" || in.SupplierID == "" {
		return entities.Order{}, entities.ValidationError("buyer_id and supplier_id are required")
	}
	if len(in.Items) == 0 {
		return entities.Order{}, entities.ValidationError("an order needs at least one item")
	}
	for i, li := range in.Items {
		if strings.TrimSpace(li.ProductID) == "" || li.Quantity <= 0 || li.UnitPrice.IsNegative() {
			return entities.Order{}, entities.ValidationError("item %d is invalid", i+1)
		}
	}

	if u.guard != nil {
		report, err := u.guard.Evaluate(ctx, in.BuyerID, in.StoreID)
		if err != nil {
			return entities.Order{}, err
		}
		if report.Blocked {
			u.core.logger.Info("[order][usecase] create refused, account blocked",
				zap.String("buyer_id", in.BuyerID), zap.String("store_id", in.StoreID))
			return entities.Order{}, entities.CustomerBlockedError("customer %s is blocked: %s", in.BuyerID, report.BlockReason)
		}
	}

	now := u.core.now()
	order := entities.Order{
		ID:                    uuid.NewString(),
		BuyerID:               in.BuyerID,
		SupplierID:            in.SupplierID,
		StoreID:               in.StoreID,
		Items:                 in.Items,
		GoodsTotal:            entities.GoodsTotalOf(in.Items),
		Status:                entities.OrderStatusNew,
		PaymentStatus:         entities.PaymentStatusPending,
		PaymentMethod:         strings.TrimSpace(in.PaymentMethod),
		OriginalPaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Version:               1,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	f := FreightInput{}
	if in.Freight != nil {
		f = *in.Freight
	}
	if err := order.ApplyFreight(f.Amount, f.Type, f.Include, f.Mode); err != nil {
		return entities.Order{}, err
	}

	if err := u.core.tx.Commit(ctx, entities.Changeset{Order: order, NewOrder: true}); err != nil {
		u.core.logger.Warn("[order][usecase] create failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.Order{}, err
	}
	u.core.logger.Info("[order][usecase] created",
		zap.String("order_id", order.ID),
		zap.String("buyer_id", order.BuyerID),
		zap.String("payable_total", order.PayableTotal.StringFixed(2)))
	u.core.notify.dispatch([]notification{{
		customerID: order.BuyerID,
		event:      EventOrderCreated,
		payload:    map[string]any{"order_id": order.ID, "payable_total": order.PayableTotal.StringFixed(2)},
	}})
	return order, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, orderID string) (OrderView, error) {
	order, ledger, err := u.core.snapshot(ctx, orderID)
	if err != nil {
		return OrderView{}, err
	}
	return u.view(order, ledger), nil
}

// InvoiceOrder records the invoice, applies the freight policy and, when asked,
// materializes the installment schedule in the same commit. Without a schedule the
// installments are only re-split when the freight changed how they add up.
func (u *OrderUseCase) InvoiceOrder(ctx context.Context, orderID string, in InvoiceInput) (OrderView, error) {
	s, err := u.core.withOrder(ctx, orderID, func(s *orderSession) error {
		before := s.order
		if in.Freight != nil {
			if err := s.order.ApplyFreight(in.Freight.Amount, in.Freight.Type, in.Freight.Include, in.Freight.Mode); err != nil {
				return err
			}
		}
		if err := s.order.Invoice(in.InvoiceRef); err != nil {
			return err
		}
		s.touch()
		if in.Schedule != nil {
			return s.redistribute(in.Schedule.Count, in.Schedule.DueDates)
		}
		if freightSplitChanged(before, s.order) {
			return s.redistributeCurrent()
		}
		return nil
	})
	if err != nil {
		u.core.logger.Info("[order][usecase] invoice refused", zap.String("order_id", orderID), zap.Error(err))
		return OrderView{}, err
	}
	return u.view(s.order, s.ledger), nil
}

// UpdateFreight changes the freight policy and spreads the new payable total over
// the current installments.
func (u *OrderUseCase) UpdateFreight(ctx context.Context, orderID string, in FreightInput) (OrderView, error) {
	s, err := u.core.withOrder(ctx, orderID, func(s *orderSession) error {
		if s.order.Frozen() {
			return entities.InvalidTransitionError("order %s is cancelled", s.order.ID)
		}
		if err := s.order.ApplyFreight(in.Amount, in.Type, in.Include, in.Mode); err != nil {
			return err
		}
		if err := freight.Validate(s.order); err != nil {
			return err
		}
		s.touch()
		return s.redistributeCurrent()
	})
	if err != nil {
		u.core.logger.Info("[order][usecase] freight update refused", zap.String("order_id", orderID), zap.Error(err))
		return OrderView{}, err
	}
	return u.view(s.order, s.ledger), nil
}

func (u *OrderUseCase) SetInstallmentSchedule(ctx context.Context, orderID string, in ScheduleInput) (OrderView, error) {
	s, err := u.core.withOrder(ctx, orderID, func(s *orderSession) error {
		return s.redistribute(in.Count, in.DueDates)
	})
	if err != nil {
		u.core.logger.Info("[order][usecase] schedule refused", zap.String("order_id", orderID), zap.Int("count", in.Count), zap.Error(err))
		return OrderView{}, err
	}
	return u.view(s.order, s.ledger), nil
}

func (u *OrderUseCase) TransitionOrder(ctx context.Context, orderID string, in TransitionInput) (OrderView, error) {
	s, err := u.core.withOrder(ctx, orderID, func(s *orderSession) error {
		var err error
		switch in.Action {
		case entities.ActionApprove:
			err = s.order.Approve()
		case entities.ActionInvoice:
			err = s.order.Invoice(in.InvoiceRef)
		case entities.ActionShip:
			err = s.order.Ship(entities.ShipParams{Carrier: in.Carrier, TrackingCode: in.TrackingCode, FreightType: in.FreightType})
		case entities.ActionMarkDelivered:
			err = s.order.MarkDelivered(s.now)
		case entities.ActionCancel:
			err = s.cancel(in.Reason)
		default:
			err = entities.ValidationError("unknown order action %q", in.Action)
		}
		if err != nil {
			return err
		}
		s.touch()
		return nil
	})
	if err != nil {
		u.core.logger.Info("[order][usecase] transition refused",
			zap.String("order_id", orderID), zap.String("action", string(in.Action)), zap.Error(err))
		return OrderView{}, err
	}
	return u.view(s.order, s.ledger), nil
}

func (u *OrderUseCase) ConfirmReceipt(ctx context.Context, orderID string, kind entities.ReceiptKind) (OrderView, error) {
	s, err := u.core.withOrder(ctx, orderID, func(s *orderSession) error {
		if err := s.order.ConfirmReceipt(kind, s.now); err != nil {
			return err
		}
		s.touch()
		return nil
	})
	if err != nil {
		return OrderView{}, err
	}
	return u.view(s.order, s.ledger), nil
}

// SetPaymentStatus overrides the payment status of an order without installments.
func (u *OrderUseCase) SetPaymentStatus(ctx context.Context, orderID string, status entities.PaymentStatus) (OrderView, error) {
	s, err := u.core.withOrder(ctx, orderID, func(s *orderSession) error {
		if s.ledger.ActiveCount() > 0 {
			return entities.ValidationError("order %s has installments, its payment status is derived from them", s.order.ID)
		}
		if err := s.order.SetPaymentStatus(status); err != nil {
			return err
		}
		s.touch()
		return nil
	})
	if err != nil {
		return OrderView{}, err
	}
	return u.view(s.order, s.ledger), nil
}

func (u *OrderUseCase) view(order entities.Order, ledger entities.Ledger) OrderView {
	return OrderView{
		Order:        order,
		Installments: ledger.Active(),
		Totals:       ledger.Totals(u.core.today()),
	}
}

// redistribute rebuilds the schedule with count installments, keeping paid ones.
func (s *orderSession) redistribute(count int, dueDates []time.Time) error {
	plan := freight.PlanFor(s.order, s.ledger, count, dueDates)
	next, err := schedule.RedistributePlan(s.ledger, plan)
	if err != nil {
		return err
	}
	changed, err := s.materialize(next)
	if err != nil {
		return err
	}
	if changed {
		s.emit(EventInstallmentsUpdated, map[string]any{"count": count})
	}
	return nil
}

// freightSplitChanged reports whether a freight update moves money between installments.
func freightSplitChanged(before, after entities.Order) bool {
	if !before.PayableTotal.Equal(after.PayableTotal) {
		return true
	}
	if !after.FreightIncluded {
		return false
	}
	return !before.FreightIncluded || before.FreightChargeMode != after.FreightChargeMode
}

// redistributeCurrent re-splits the payable total over the current installments and dates.
func (s *orderSession) redistributeCurrent() error {
	active := s.ledger.Active()
	if len(active) == 0 {
		return nil
	}
	dates := make([]time.Time, len(active))
	for i, it := range active {
		dates[i] = it.DueDate
	}
	return s.redistribute(len(active), dates)
}

// cancel cancels the order and voids its open installments.
func (s *orderSession) cancel(reason string) error {
	if err := s.order.Cancel(reason, s.now); err != nil {
		return err
	}
	for _, it := range s.ledger.Active() {
		if !it.Open() {
			continue
		}
		if err := it.Cancel(); err != nil {
			return err
		}
		s.put(it)
	}
	return nil
}
