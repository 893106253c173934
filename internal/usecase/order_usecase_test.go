package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"portal_pedidos/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderUseCase_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.orders.CreateOrder(ctx, CreateOrderInput{BuyerID: "c1"})
		assert.True(t, errors.Is(err, entities.ErrValidation))

		_, err = f.orders.CreateOrder(ctx, CreateOrderInput{
			BuyerID: "c1", SupplierID: "sup1",
			Items: []entities.LineItem{{ProductID: "p1", Quantity: 0, UnitPrice: entities.MustMoney("10")}},
		})
		assert.True(t, errors.Is(err, entities.ErrValidation))

		_, err = f.orders.CreateOrder(ctx, CreateOrderInput{
			BuyerID: "c1", SupplierID: "sup1",
			Items:   []entities.LineItem{{ProductID: "p1", Quantity: 1, UnitPrice: entities.MustMoney("10")}},
			Freight: &FreightInput{Type: entities.FreightTypeFOB, Include: true},
		})
		assert.True(t, errors.Is(err, entities.ErrValidation), "FOB included without amount")
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		o, err := f.orders.CreateOrder(ctx, CreateOrderInput{
			BuyerID: " c1 ", SupplierID: "sup1", StoreID: "s1", PaymentMethod: "boleto",
			Items: []entities.LineItem{
				{ProductID: "p1", Quantity: 3, UnitPrice: entities.MustMoney("100")},
				{ProductID: "p2", Quantity: 2, UnitPrice: entities.MustMoney("300")},
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, o.ID)
		assert.Equal(t, "c1", o.BuyerID)
		assert.Equal(t, entities.OrderStatusNew, o.Status)
		assert.Equal(t, entities.PaymentStatusPending, o.PaymentStatus)
		assert.Equal(t, "900.00", o.GoodsTotal.StringFixed(2))
		assert.Equal(t, "900.00", o.PayableTotal.StringFixed(2))
		assert.Equal(t, entities.FreightTypeCIF, o.FreightType)

		view, err := f.orders.GetOrder(ctx, o.ID)
		require.NoError(t, err)
		assert.Empty(t, view.Installments)
		assert.Equal(t, int64(1), view.Order.Version)
	})

	t.Run("blocked account is refused, other stores are not", func(t *testing.T) {
		f := newFixture(t)
		f.invoiced(t, "330", nil, []time.Time{testToday.AddDate(0, 0, -10)})

		_, err := f.orders.CreateOrder(ctx, CreateOrderInput{
			BuyerID: "c1", SupplierID: "sup1", StoreID: "s1",
			Items: []entities.LineItem{{ProductID: "p1", Quantity: 1, UnitPrice: entities.MustMoney("10")}},
		})
		require.True(t, errors.Is(err, entities.ErrCustomerBlocked), "got %v", err)
		assert.True(t, f.account(t, "c1#s1").Blocked)

		_, err = f.orders.CreateOrder(ctx, CreateOrderInput{
			BuyerID: "c1", SupplierID: "sup1", StoreID: "s2",
			Items: []entities.LineItem{{ProductID: "p1", Quantity: 1, UnitPrice: entities.MustMoney("10")}},
		})
		assert.NoError(t, err)
	})
}

func TestOrderUseCase_InvoiceWithFreight(t *testing.T) {
	t.Run("diluted", func(t *testing.T) {
		f := newFixture(t)
		view := f.invoiced(t, "900", fob("90", entities.ChargeModeDiluted), monthly(3))

		assert.Equal(t, entities.OrderStatusInvoiced, view.Order.Status)
		assert.Equal(t, "NF-1", view.Order.InvoiceRef)
		assert.Equal(t, "990.00", view.Order.PayableTotal.StringFixed(2))
		assert.Equal(t, []string{"330.00", "330.00", "330.00"}, amountsOf(view.Installments))
		requireBalanced(t, view)
		for i, it := range view.Installments {
			assert.Equal(t, i+1, it.Sequence)
			assert.Equal(t, 3, it.TotalCount)
			assert.Equal(t, "c1", it.CustomerID)
			assert.Equal(t, "s1", it.StoreID)
			assert.Equal(t, monthly(3)[i], it.DueDate)
		}

		assert.Equal(t, "990.00", f.account(t, "c1").TotalOutstanding.StringFixed(2))
		assert.Equal(t, "990.00", f.account(t, "c1#s1").TotalOutstanding.StringFixed(2))
	})

	t.Run("first installment", func(t *testing.T) {
		f := newFixture(t)
		view := f.invoiced(t, "900", fob("90", entities.ChargeModeFirstInstallment), monthly(3))
		assert.Equal(t, []string{"390.00", "300.00", "300.00"}, amountsOf(view.Installments))
		requireBalanced(t, view)
	})

	t.Run("CIF freight never reaches the installments", func(t *testing.T) {
		f := newFixture(t)
		view := f.invoiced(t, "900", &FreightInput{Amount: entities.MustMoney("90"), Type: entities.FreightTypeCIF, Include: true}, monthly(2))
		assert.Equal(t, []string{"450.00", "450.00"}, amountsOf(view.Installments))
		assert.False(t, view.Order.FreightIncluded)
	})

	t.Run("invoice without a schedule keeps a custom split", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		o := f.approvedOrder(t, "900")
		_, err := f.ledger.Materialize(ctx, o.ID, []entities.Installment{
			{Sequence: 1, Amount: entities.MustMoney("600"), DueDate: monthly(2)[0]},
			{Sequence: 2, Amount: entities.MustMoney("300"), DueDate: monthly(2)[1]},
		})
		require.NoError(t, err)

		view, err := f.orders.InvoiceOrder(ctx, o.ID, InvoiceInput{InvoiceRef: "NF-9"})
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusInvoiced, view.Order.Status)
		assert.Equal(t, []string{"600.00", "300.00"}, amountsOf(view.Installments))
	})

	t.Run("invoice freight that moves the total re-splits", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		o := f.approvedOrder(t, "900")
		_, err := f.ledger.Materialize(ctx, o.ID, []entities.Installment{
			{Sequence: 1, Amount: entities.MustMoney("600"), DueDate: monthly(2)[0]},
			{Sequence: 2, Amount: entities.MustMoney("300"), DueDate: monthly(2)[1]},
		})
		require.NoError(t, err)

		view, err := f.orders.InvoiceOrder(ctx, o.ID, InvoiceInput{InvoiceRef: "NF-9", Freight: fob("90", entities.ChargeModeDiluted)})
		require.NoError(t, err)
		assert.Equal(t, []string{"495.00", "495.00"}, amountsOf(view.Installments))
		requireBalanced(t, view)
	})

	t.Run("invoice from the wrong state changes nothing", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		o, err := f.orders.CreateOrder(ctx, CreateOrderInput{
			BuyerID: "c1", SupplierID: "sup1",
			Items: []entities.LineItem{{ProductID: "p1", Quantity: 1, UnitPrice: entities.MustMoney("100")}},
		})
		require.NoError(t, err)
		_, err = f.orders.InvoiceOrder(ctx, o.ID, InvoiceInput{InvoiceRef: "NF-9", Schedule: &ScheduleInput{Count: 1, DueDates: monthly(1)}})
		assert.True(t, errors.Is(err, entities.ErrInvalidTransition))

		view, err := f.orders.GetOrder(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusNew, view.Order.Status)
		assert.Empty(t, view.Installments)
	})
}

func TestOrderUseCase_SetInstallmentSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("first paid then shrink to two", func(t *testing.T) {
		f := newFixture(t)
		view := f.invoiced(t, "900", fob("90", entities.ChargeModeDiluted), monthly(3))
		first := view.Installments[0]
		_, err := f.ledger.MarkInstallmentPaid(ctx, first.ID, testToday)
		require.NoError(t, err)

		view, err = f.orders.SetInstallmentSchedule(ctx, view.Order.ID, ScheduleInput{Count: 2, DueDates: monthly(2)})
		require.NoError(t, err)
		require.Len(t, view.Installments, 2)
		assert.Equal(t, []string{"330.00", "660.00"}, amountsOf(view.Installments))
		requireBalanced(t, view)

		paid := view.Installments[0]
		assert.Equal(t, first.ID, paid.ID)
		assert.Equal(t, entities.InstallmentPaid, paid.Status)
		assert.Equal(t, first.DueDate, paid.DueDate)
		assert.Equal(t, 2, paid.TotalCount)

		assert.Equal(t, "660.00", f.account(t, "c1").TotalOutstanding.StringFixed(2))
	})

	t.Run("fewer installments than paid ones", func(t *testing.T) {
		f := newFixture(t)
		view := f.invoiced(t, "900", nil, monthly(3))
		for _, it := range view.Installments[:2] {
			_, err := f.ledger.MarkInstallmentPaid(ctx, it.ID, testToday)
			require.NoError(t, err)
		}
		before, err := f.orders.GetOrder(ctx, view.Order.ID)
		require.NoError(t, err)

		_, err = f.orders.SetInstallmentSchedule(ctx, view.Order.ID, ScheduleInput{Count: 1, DueDates: monthly(1)})
		assert.True(t, errors.Is(err, entities.ErrInvalidSchedule), "got %v", err)

		after, err := f.orders.GetOrder(ctx, view.Order.ID)
		require.NoError(t, err)
		assert.Equal(t, before.Order.Version, after.Order.Version)
		assert.Equal(t, amountsOf(before.Installments), amountsOf(after.Installments))
	})

	t.Run("same schedule twice is a no-op", func(t *testing.T) {
		f := newFixture(t)
		view := f.invoiced(t, "900", nil, monthly(3))
		again, err := f.orders.SetInstallmentSchedule(ctx, view.Order.ID, ScheduleInput{Count: 3, DueDates: monthly(3)})
		require.NoError(t, err)
		assert.Equal(t, view.Order.Version, again.Order.Version)
		for i := range view.Installments {
			assert.Equal(t, view.Installments[i].ID, again.Installments[i].ID)
		}
	})
}

func TestOrderUseCase_UpdateFreight(t *testing.T) {
	ctx := context.Background()

	t.Run("redistributes over the open installments", func(t *testing.T) {
		f := newFixture(t)
		view := f.invoiced(t, "900", nil, monthly(3))
		_, err := f.ledger.MarkInstallmentPaid(ctx, view.Installments[0].ID, testToday)
		require.NoError(t, err)

		view, err = f.orders.UpdateFreight(ctx, view.Order.ID, *fob("60", entities.ChargeModeDiluted))
		require.NoError(t, err)
		assert.Equal(t, "960.00", view.Order.PayableTotal.StringFixed(2))
		assert.Equal(t, []string{"300.00", "330.00", "330.00"}, amountsOf(view.Installments))
		requireBalanced(t, view)
		assert.Equal(t, "660.00", f.account(t, "c1#s1").TotalOutstanding.StringFixed(2))
	})

	t.Run("overpaid leaves everything untouched", func(t *testing.T) {
		f := newFixture(t)
		view := f.invoiced(t, "900", fob("90", entities.ChargeModeDiluted), monthly(3))
		for _, it := range view.Installments {
			_, err := f.ledger.MarkInstallmentPaid(ctx, it.ID, testToday)
			require.NoError(t, err)
		}

		_, err := f.orders.UpdateFreight(ctx, view.Order.ID, FreightInput{Type: entities.FreightTypeCIF})
		assert.True(t, errors.Is(err, entities.ErrOverpaidSchedule), "got %v", err)

		after, err := f.orders.GetOrder(ctx, view.Order.ID)
		require.NoError(t, err)
		assert.Equal(t, "990.00", after.Order.PayableTotal.StringFixed(2))
		assert.Equal(t, entities.FreightTypeFOB, after.Order.FreightType)
	})
}

func TestOrderUseCase_Lifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	view := f.invoiced(t, "900", fob("90", entities.ChargeModeDiluted), monthly(3))
	orderID := view.Order.ID

	_, err := f.orders.TransitionOrder(ctx, orderID, TransitionInput{Action: entities.ActionShip, Carrier: "Jadlog"})
	require.True(t, errors.Is(err, entities.ErrInvalidTransition), "tracking code missing")

	view, err = f.orders.TransitionOrder(ctx, orderID, TransitionInput{Action: entities.ActionShip, Carrier: "Jadlog", TrackingCode: "JD1"})
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusInTransit, view.Order.Status)

	view, err = f.orders.TransitionOrder(ctx, orderID, TransitionInput{Action: entities.ActionMarkDelivered})
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusAwaitingPayment, view.Order.Status)

	for _, it := range view.Installments {
		_, err := f.proofs.Submit(ctx, it.ID, "https://files.example.com/"+it.ID+".pdf", testToday)
		require.NoError(t, err)
		_, err = f.proofs.Approve(ctx, it.ID, testToday)
		require.NoError(t, err)
	}
	view, err = f.orders.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusFinalized, view.Order.Status)
	assert.Equal(t, entities.PaymentStatusPaid, view.Order.PaymentStatus)
	assert.True(t, view.Totals.AllPaid)
	assert.True(t, f.account(t, "c1").TotalOutstanding.IsZero())

	_, err = f.orders.TransitionOrder(ctx, orderID, TransitionInput{Action: entities.ActionCancel, Reason: "late"})
	assert.True(t, errors.Is(err, entities.ErrInvalidTransition), "finalized orders cannot be cancelled")

	_, err = f.proofs.Reject(ctx, view.Installments[1].ID, "estorno")
	require.NoError(t, err)
	view, err = f.orders.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusAwaitingPayment, view.Order.Status)
	assert.Equal(t, entities.PaymentStatusPending, view.Order.PaymentStatus)
	assert.Equal(t, "330.00", f.account(t, "c1").TotalOutstanding.StringFixed(2))
}

func TestOrderUseCase_IllegalTransitionLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	o := f.approvedOrder(t, "100")

	for _, action := range []entities.OrderAction{entities.ActionApprove, entities.ActionShip, entities.ActionMarkDelivered} {
		_, err := f.orders.TransitionOrder(ctx, o.ID, TransitionInput{Action: action, Carrier: "x", TrackingCode: "y"})
		assert.True(t, errors.Is(err, entities.ErrInvalidTransition), "%s: %v", action, err)
	}
	view, err := f.orders.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusInProduction, view.Order.Status)
	assert.Equal(t, int64(2), view.Order.Version)

	_, err = f.orders.TransitionOrder(ctx, o.ID, TransitionInput{Action: "refund"})
	assert.True(t, errors.Is(err, entities.ErrValidation))
}

func TestOrderUseCase_Cancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	view := f.invoiced(t, "900", nil, monthly(3))
	paid := view.Installments[0]
	_, err := f.ledger.MarkInstallmentPaid(ctx, paid.ID, testToday)
	require.NoError(t, err)

	_, err = f.orders.TransitionOrder(ctx, view.Order.ID, TransitionInput{Action: entities.ActionCancel})
	assert.True(t, errors.Is(err, entities.ErrValidation), "reason required")

	view, err = f.orders.TransitionOrder(ctx, view.Order.ID, TransitionInput{Action: entities.ActionCancel, Reason: "cliente desistiu"})
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCancelled, view.Order.Status)
	assert.Equal(t, entities.PaymentStatusCancelled, view.Order.PaymentStatus)
	require.Len(t, view.Installments, 1, "only the paid installment stays active")
	assert.Equal(t, paid.ID, view.Installments[0].ID)

	all, err := f.store.Installments().ListByOrderID(ctx, view.Order.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3, "cancelled installments are kept")
	assert.True(t, f.account(t, "c1").TotalOutstanding.IsZero())

	_, err = f.orders.SetInstallmentSchedule(ctx, view.Order.ID, ScheduleInput{Count: 2, DueDates: monthly(2)})
	assert.True(t, errors.Is(err, entities.ErrInvalidTransition), "got %v", err)
	_, err = f.proofs.Submit(ctx, all[1].ID, "https://files.example.com/x.pdf", testToday)
	assert.True(t, errors.Is(err, entities.ErrInvalidTransition), "got %v", err)
}

func TestOrderUseCase_ReceiptsAndManualPaymentStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	o := f.approvedOrder(t, "500")
	_, err := f.orders.InvoiceOrder(ctx, o.ID, InvoiceInput{InvoiceRef: "NF-2"})
	require.NoError(t, err)

	view, err := f.orders.ConfirmReceipt(ctx, o.ID, entities.ReceiptInvoice)
	require.NoError(t, err)
	assert.NotNil(t, view.Order.InvoiceReceiptAt)

	_, err = f.orders.TransitionOrder(ctx, o.ID, TransitionInput{Action: entities.ActionShip, FreightType: entities.FreightTypeFOB})
	require.NoError(t, err)

	view, err = f.orders.ConfirmReceipt(ctx, o.ID, entities.ReceiptGoods)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusAwaitingPayment, view.Order.Status)

	view, err = f.orders.SetPaymentStatus(ctx, o.ID, entities.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusFinalized, view.Order.Status, "no installments: the manual status decides")

	g := newFixture(t)
	withLedger := g.invoiced(t, "100", nil, monthly(1))
	_, err = g.orders.SetPaymentStatus(ctx, withLedger.Order.ID, entities.PaymentStatusPaid)
	assert.True(t, errors.Is(err, entities.ErrValidation))
}

// racingTransactor lets another writer bump the order right before the first commit.
type racingTransactor struct {
	inner interface {
		Commit(context.Context, entities.Changeset) error
	}
	once sync.Once
	race func()
}

func (r *racingTransactor) Commit(ctx context.Context, cs entities.Changeset) error {
	if !cs.NewOrder {
		r.once.Do(r.race)
	}
	return r.inner.Commit(ctx, cs)
}

func TestOrderUseCase_StaleWriteIsNotRetried(t *testing.T) {
	ctx := context.Background()
	racer := &racingTransactor{}
	f := newFixture(t, withTransactor(racer))
	racer.inner = f.store

	o, err := f.orders.CreateOrder(ctx, CreateOrderInput{
		BuyerID: "c1", SupplierID: "sup1",
		Items: []entities.LineItem{{ProductID: "p1", Quantity: 1, UnitPrice: entities.MustMoney("100")}},
	})
	require.NoError(t, err)
	racer.race = func() {
		other := o
		other.Version = o.Version + 1
		other.CancelReason = "other writer"
		require.NoError(t, f.store.Commit(ctx, entities.Changeset{Order: other, ExpectedVersion: o.Version}))
	}

	_, err = f.orders.TransitionOrder(ctx, o.ID, TransitionInput{Action: entities.ActionApprove})
	require.True(t, errors.Is(err, entities.ErrConcurrentModification), "got %v", err)

	view, err := f.orders.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusNew, view.Order.Status)
	assert.Equal(t, "other writer", view.Order.CancelReason)

	_, err = f.orders.TransitionOrder(ctx, o.ID, TransitionInput{Action: entities.ActionApprove})
	assert.NoError(t, err, "a fresh attempt succeeds")
}
