package usecase

import (
	"context"
	"testing"
	"time"

	"portal_pedidos/internal/adapter/persistence/memory"
	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase/interfaces"

	"github.com/stretchr/testify/require"
)

var (
	brt = time.FixedZone("BRT", -3*60*60)
	// 22:00 in São Paulo while UTC is already on the 16th.
	testNow   = time.Date(2026, 3, 16, 1, 0, 0, 0, time.UTC)
	testToday = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	store  *memory.Store
	core   *LedgerCore
	orders *OrderUseCase
	ledger *LedgerUseCase
	proofs *PaymentProofUseCase
	guard  *DelinquencyUseCase
}

type fixtureOption func(*Deps)

func withNotifier(n interfaces.INotifier) fixtureOption {
	return func(d *Deps) { d.Notifier = n }
}

func withBoletos(g interfaces.IBoletoGateway) fixtureOption {
	return func(d *Deps) { d.Boletos = g }
}

// withClock reads the current time through now, so tests can advance it.
func withClock(now *time.Time) fixtureOption {
	return func(d *Deps) { d.Now = func() time.Time { return *now } }
}

func withTransactor(tx interfaces.ITransactor) fixtureOption {
	return func(d *Deps) { d.Transactor = tx }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	store := memory.NewStore()
	deps := Deps{
		Orders:       store.Orders(),
		Installments: store.Installments(),
		Customers:    store.Customers(),
		Transactor:   store,
		Location:     brt,
		Now:          func() time.Time { return testNow },
	}
	for _, opt := range opts {
		opt(&deps)
	}
	core := NewLedgerCore(deps)
	t.Cleanup(core.Wait)
	guard := NewDelinquencyUseCase(core)
	return &fixture{
		store:  store,
		core:   core,
		orders: NewOrderUseCase(core, guard),
		ledger: NewLedgerUseCase(core),
		proofs: NewPaymentProofUseCase(core),
		guard:  guard,
	}
}

func monthly(n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = testToday.AddDate(0, i+1, 0)
	}
	return out
}

func fob(amount string, mode entities.ChargeMode) *FreightInput {
	return &FreightInput{Amount: entities.MustMoney(amount), Type: entities.FreightTypeFOB, Include: true, Mode: mode}
}

// approvedOrder creates an order for c1/s1 and moves it to in_production.
func (f *fixture) approvedOrder(t *testing.T, goods string) entities.Order {
	t.Helper()
	ctx := context.Background()
	o, err := f.orders.CreateOrder(ctx, CreateOrderInput{
		BuyerID:    "c1",
		SupplierID: "sup1",
		StoreID:    "s1",
		Items:      []entities.LineItem{{ProductID: "p1", Quantity: 1, UnitPrice: entities.MustMoney(goods)}},
	})
	require.NoError(t, err)
	_, err = f.orders.TransitionOrder(ctx, o.ID, TransitionInput{Action: entities.ActionApprove})
	require.NoError(t, err)
	return o
}

func (f *fixture) invoiced(t *testing.T, goods string, freight *FreightInput, dueDates []time.Time) OrderView {
	t.Helper()
	o := f.approvedOrder(t, goods)
	view, err := f.orders.InvoiceOrder(context.Background(), o.ID, InvoiceInput{
		InvoiceRef: "NF-1",
		Freight:    freight,
		Schedule:   &ScheduleInput{Count: len(dueDates), DueDates: dueDates},
	})
	require.NoError(t, err)
	return view
}

func (f *fixture) account(t *testing.T, id string) entities.Customer {
	t.Helper()
	c, err := f.store.Customers().GetByID(context.Background(), id)
	require.NoError(t, err)
	return c
}

func amountsOf(items []entities.Installment) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Amount.StringFixed(2)
	}
	return out
}

func requireBalanced(t *testing.T, view OrderView) {
	t.Helper()
	sum := entities.Ledger(view.Installments).Sum()
	require.True(t, entities.WithinTolerance(sum, view.Order.PayableTotal),
		"installments sum %s, payable total %s", sum.StringFixed(2), view.Order.PayableTotal.StringFixed(2))
}
