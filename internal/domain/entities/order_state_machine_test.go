package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func TestCanTransition_OnlyDeclaredEdges(t *testing.T) {
	all := []OrderStatus{
		OrderStatusNew, OrderStatusInProduction, OrderStatusInvoiced, OrderStatusInTransit,
		OrderStatusAwaitingPayment, OrderStatusFinalized, OrderStatusCancelled,
	}
	allowed := map[edge]bool{
		{OrderStatusNew, OrderStatusInProduction}:             true,
		{OrderStatusInProduction, OrderStatusInvoiced}:        true,
		{OrderStatusInvoiced, OrderStatusInTransit}:           true,
		{OrderStatusInTransit, OrderStatusAwaitingPayment}:    true,
		{OrderStatusInTransit, OrderStatusFinalized}:          true,
		{OrderStatusAwaitingPayment, OrderStatusFinalized}:    true,
		{OrderStatusFinalized, OrderStatusAwaitingPayment}:    true,
		{OrderStatusNew, OrderStatusCancelled}:                true,
		{OrderStatusInProduction, OrderStatusCancelled}:       true,
		{OrderStatusInvoiced, OrderStatusCancelled}:           true,
		{OrderStatusInTransit, OrderStatusCancelled}:          true,
		{OrderStatusAwaitingPayment, OrderStatusCancelled}:    true,
	}
	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[edge{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("illegal edge leaves state unchanged", func(t *testing.T) {
		o := Order{ID: "o1", Status: OrderStatusNew}
		err := o.TransitionTo(OrderStatusInvoiced, false)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
		assert.Equal(t, OrderStatusNew, o.Status)
	})

	t.Run("automatic edge refused to operators", func(t *testing.T) {
		o := Order{ID: "o1", Status: OrderStatusAwaitingPayment}
		err := o.TransitionTo(OrderStatusFinalized, false)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
		require.NoError(t, o.TransitionTo(OrderStatusFinalized, true))
		assert.Equal(t, OrderStatusFinalized, o.Status)
	})
}

func TestOrder_OperatorActions(t *testing.T) {
	o := Order{ID: "o1", Status: OrderStatusNew}

	assert.True(t, errors.Is(o.Ship(ShipParams{Carrier: "Jadlog", TrackingCode: "X"}), ErrInvalidTransition), "cannot skip states")

	require.NoError(t, o.Approve())
	assert.Equal(t, OrderStatusInProduction, o.Status)
	assert.True(t, errors.Is(o.Approve(), ErrInvalidTransition))

	assert.True(t, errors.Is(o.Invoice(" "), ErrValidation))
	require.NoError(t, o.Invoice("NF-123"))
	assert.Equal(t, OrderStatusInvoiced, o.Status)
	assert.Equal(t, "NF-123", o.InvoiceRef)

	assert.True(t, errors.Is(o.Ship(ShipParams{Carrier: "Jadlog"}), ErrInvalidTransition), "tracking code missing")
	assert.Equal(t, OrderStatusInvoiced, o.Status)
	require.NoError(t, o.Ship(ShipParams{Carrier: "Jadlog", TrackingCode: "JD123"}))
	assert.Equal(t, OrderStatusInTransit, o.Status)

	require.NoError(t, o.MarkDelivered(today))
	changed, err := o.Settle(nil, today)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, OrderStatusAwaitingPayment, o.Status)
}

func TestOrder_ShipWithFreightSelection(t *testing.T) {
	o := Order{ID: "o1", Status: OrderStatusInvoiced, FreightType: FreightTypeCIF}
	require.NoError(t, o.Ship(ShipParams{FreightType: FreightTypeFOB}))
	assert.Equal(t, FreightTypeFOB, o.FreightType)
}

func TestOrder_Cancel(t *testing.T) {
	o := Order{ID: "o1", Status: OrderStatusInTransit}
	assert.True(t, errors.Is(o.Cancel("", today), ErrValidation))
	require.NoError(t, o.Cancel("cliente desistiu", today))
	assert.Equal(t, OrderStatusCancelled, o.Status)
	assert.Equal(t, PaymentStatusCancelled, o.PaymentStatus)
	assert.True(t, errors.Is(o.Cancel("again", today), ErrInvalidTransition))

	f := Order{ID: "o2", Status: OrderStatusFinalized}
	assert.True(t, errors.Is(f.Cancel("late", today), ErrInvalidTransition))
}

func ledgerOf(statuses ...InstallmentStatus) Ledger {
	l := make(Ledger, len(statuses))
	for i, st := range statuses {
		l[i] = Installment{ID: string(rune('a' + i)), Sequence: i + 1, Amount: MustMoney("100"), DueDate: today.AddDate(0, 0, 10), Status: st}
	}
	return l
}

func TestOrder_Settle(t *testing.T) {
	t.Run("awaiting payment finalizes when all paid", func(t *testing.T) {
		o := Order{ID: "o1", Status: OrderStatusAwaitingPayment, DeliveredAt: &today}
		changed, err := o.Settle(ledgerOf(InstallmentPaid, InstallmentPaid), today)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, OrderStatusFinalized, o.Status)
		assert.Equal(t, PaymentStatusPaid, o.PaymentStatus)
	})

	t.Run("finalized reverts when a payment is undone", func(t *testing.T) {
		o := Order{ID: "o1", Status: OrderStatusFinalized, DeliveredAt: &today}
		changed, err := o.Settle(ledgerOf(InstallmentPaid, InstallmentPending), today)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, OrderStatusAwaitingPayment, o.Status)
		assert.Equal(t, PaymentStatusPending, o.PaymentStatus)
	})

	t.Run("in transit without receipt stays put", func(t *testing.T) {
		o := Order{ID: "o1", Status: OrderStatusInTransit}
		changed, err := o.Settle(ledgerOf(InstallmentPaid), today)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, OrderStatusInTransit, o.Status)
		assert.Equal(t, PaymentStatusPaid, o.PaymentStatus)
	})

	t.Run("goods receipt with everything paid finalizes directly", func(t *testing.T) {
		o := Order{ID: "o1", Status: OrderStatusInTransit}
		require.NoError(t, o.ConfirmReceipt(ReceiptGoods, today))
		_, err := o.Settle(ledgerOf(InstallmentPaid, InstallmentPaid), today)
		require.NoError(t, err)
		assert.Equal(t, OrderStatusFinalized, o.Status)
	})

	t.Run("zero installments relies on manual payment status", func(t *testing.T) {
		o := Order{ID: "o1", Status: OrderStatusAwaitingPayment, DeliveredAt: &today}
		require.NoError(t, o.SetPaymentStatus(PaymentStatusPaid))
		_, err := o.Settle(nil, today)
		require.NoError(t, err)
		assert.Equal(t, OrderStatusFinalized, o.Status)
	})

	t.Run("cancelled orders are left alone", func(t *testing.T) {
		o := Order{ID: "o1", Status: OrderStatusCancelled, PaymentStatus: PaymentStatusCancelled}
		changed, err := o.Settle(ledgerOf(InstallmentPaid), today)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, PaymentStatusCancelled, o.PaymentStatus)
	})
}

func TestParsers(t *testing.T) {
	_, err := ParseOrderStatus("shipped")
	assert.True(t, errors.Is(err, ErrValidation))
	st, err := ParseOrderStatus(" Awaiting_Payment ")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusAwaitingPayment, st)

	_, err = ParseOrderAction("refund")
	assert.True(t, errors.Is(err, ErrValidation))

	mode, err := ParseChargeMode("")
	require.NoError(t, err)
	assert.Equal(t, ChargeModeDiluted, mode)

	ft, err := ParseFreightType("fob")
	require.NoError(t, err)
	assert.Equal(t, FreightTypeFOB, ft)
}

func TestOrder_ApplyFreight(t *testing.T) {
	o := Order{GoodsTotal: MustMoney("900")}
	assert.True(t, errors.Is(o.ApplyFreight(Zero, FreightTypeFOB, true, ChargeModeDiluted), ErrValidation))

	require.NoError(t, o.ApplyFreight(MustMoney("90"), FreightTypeFOB, true, ChargeModeDiluted))
	assert.Equal(t, "990.00", o.PayableTotal.StringFixed(2))

	require.NoError(t, o.ApplyFreight(MustMoney("90"), FreightTypeCIF, true, ChargeModeDiluted))
	assert.Equal(t, "900.00", o.PayableTotal.StringFixed(2))
	assert.False(t, o.FreightIncluded)
	assert.True(t, o.PayableTotal.GreaterThanOrEqual(o.GoodsTotal))
}
