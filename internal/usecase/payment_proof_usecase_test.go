package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portal_pedidos/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentProofUseCase_Workflow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	view := f.invoiced(t, "200", nil, monthly(2))
	target := view.Installments[0]

	_, err := f.proofs.Approve(ctx, target.ID, testToday)
	assert.True(t, errors.Is(err, entities.ErrInvalidTransition), "nothing submitted")

	_, err = f.proofs.Submit(ctx, target.ID, "ftp://files/x.pdf", testToday)
	assert.True(t, errors.Is(err, entities.ErrValidation))

	it, err := f.proofs.Submit(ctx, target.ID, "https://files.example.com/a.pdf", testToday.AddDate(0, 0, -2))
	require.NoError(t, err)
	assert.Equal(t, entities.InstallmentUnderReview, it.Status)
	assert.Equal(t, entities.ProofSubmitted, it.Proof.Status)

	_, err = f.proofs.Submit(ctx, target.ID, "https://files.example.com/b.pdf", testToday)
	assert.True(t, errors.Is(err, entities.ErrInvalidTransition), "already under review")

	_, err = f.proofs.Reject(ctx, target.ID, "")
	assert.True(t, errors.Is(err, entities.ErrValidation))

	it, err = f.proofs.Reject(ctx, target.ID, "comprovante ilegível")
	require.NoError(t, err)
	assert.Equal(t, entities.InstallmentPending, it.Status)
	assert.Equal(t, entities.ProofRejected, it.Proof.Status)
	assert.Empty(t, it.Proof.URL)
	assert.Equal(t, "comprovante ilegível", it.Proof.RejectionReason)

	_, err = f.proofs.Submit(ctx, target.ID, "https://files.example.com/c.pdf", testToday)
	require.NoError(t, err, "resubmission after rejection")

	confirmed := testToday.AddDate(0, 0, -1)
	it, err = f.proofs.Approve(ctx, target.ID, confirmed)
	require.NoError(t, err)
	assert.Equal(t, entities.InstallmentPaid, it.Status)
	assert.Equal(t, confirmed, *it.PaidAt)
	assert.True(t, it.Proof.Approved)
	assert.Equal(t, "100.00", f.account(t, "c1").TotalOutstanding.StringFixed(2))

	order, err := f.orders.GetOrder(ctx, view.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusPending, order.Order.PaymentStatus)
	assert.Equal(t, 1, order.Totals.PaidCount)
}

func TestPaymentProofUseCase_ApproveRequiresDate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	view := f.invoiced(t, "100", nil, monthly(1))
	_, err := f.proofs.Submit(ctx, view.Installments[0].ID, "https://files.example.com/a.pdf", testToday)
	require.NoError(t, err)

	_, err = f.proofs.Approve(ctx, view.Installments[0].ID, time.Time{})
	assert.True(t, errors.Is(err, entities.ErrValidation))

	_, err = f.proofs.Submit(ctx, "missing", "https://files.example.com/a.pdf", testToday)
	assert.True(t, errors.Is(err, entities.ErrNotFound))
}
