package usecase

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"portal_pedidos/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SerializesPerKey(t *testing.T) {
	k := newKeyedMutex()
	counts := map[string]*int{"a": new(int), "b": new(int)}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		key := "a"
		if i%2 == 1 {
			key = "b"
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock(key)
			defer unlock()
			n := *counts[key]
			runtime.Gosched()
			*counts[key] = n + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 32, *counts["a"])
	assert.Equal(t, 32, *counts["b"])
	assert.Empty(t, k.locks, "released keys are dropped")
}

// Run with -race: schedule rewrites and payments on one order interleave freely.
func TestLedgerCore_ConcurrentCommandsKeepTheSum(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	view := f.invoiced(t, "1200", nil, monthly(4))

	tolerated := func(err error) bool {
		return err == nil ||
			errors.Is(err, entities.ErrInvalidSchedule) ||
			errors.Is(err, entities.ErrOverpaidSchedule) ||
			errors.Is(err, entities.ErrInvalidTransition) ||
			errors.Is(err, entities.ErrNotFound) ||
			errors.Is(err, entities.ErrConcurrentModification)
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		paid   = map[string]entities.Installment{}
		failed []error
	)
	record := func(err error) {
		if !tolerated(err) {
			mu.Lock()
			failed = append(failed, err)
			mu.Unlock()
		}
	}

	for i := 0; i < 24; i++ {
		wg.Add(2)
		count := 2 + i%4
		go func() {
			defer wg.Done()
			_, err := f.orders.SetInstallmentSchedule(ctx, view.Order.ID, ScheduleInput{Count: count, DueDates: monthly(count)})
			record(err)
		}()
		go func() {
			defer wg.Done()
			current, err := f.orders.GetOrder(ctx, view.Order.ID)
			if err != nil {
				record(err)
				return
			}
			for _, it := range current.Installments {
				if !it.Open() {
					continue
				}
				got, err := f.ledger.MarkInstallmentPaid(ctx, it.ID, testToday)
				record(err)
				if err == nil {
					mu.Lock()
					paid[got.ID] = got
					mu.Unlock()
				}
				return
			}
		}()
	}
	wg.Wait()
	require.Empty(t, failed)

	final, err := f.orders.GetOrder(ctx, view.Order.ID)
	require.NoError(t, err)
	requireBalanced(t, final)

	seqs := map[int]bool{}
	open := entities.Zero
	for _, it := range final.Installments {
		assert.False(t, seqs[it.Sequence], "sequence %d appears twice", it.Sequence)
		seqs[it.Sequence] = true
		assert.Equal(t, len(final.Installments), it.TotalCount)
		if it.Open() {
			open = open.Add(it.Amount)
		}
	}

	for id, want := range paid {
		stored, err := f.store.Installments().GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entities.InstallmentPaid, stored.Status, "paid installment %s", id)
		assert.True(t, want.Amount.Equal(stored.Amount), "paid installment %s changed amount", id)
		assert.True(t, want.DueDate.Equal(stored.DueDate), "paid installment %s changed due date", id)
	}

	assert.Equal(t, open.StringFixed(2), f.account(t, "c1").TotalOutstanding.StringFixed(2))
	assert.Equal(t, open.StringFixed(2), f.account(t, "c1#s1").TotalOutstanding.StringFixed(2))
}
