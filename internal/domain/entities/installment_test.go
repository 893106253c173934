package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallment_ProofWorkflow(t *testing.T) {
	it := Installment{ID: "i1", Amount: MustMoney("330"), DueDate: today, Status: InstallmentPending}

	assert.True(t, errors.Is(it.ApproveProof(today), ErrInvalidTransition), "nothing submitted yet")
	assert.True(t, errors.Is(it.SubmitProof("not a url", today, today), ErrValidation))

	require.NoError(t, it.SubmitProof("https://files.example.com/comprovante.pdf", today, today))
	assert.Equal(t, InstallmentUnderReview, it.Status)
	assert.Equal(t, ProofSubmitted, it.Proof.Status)
	assert.True(t, errors.Is(it.SubmitProof("https://files.example.com/2.pdf", today, today), ErrInvalidTransition))

	assert.True(t, errors.Is(it.RejectProof("  "), ErrValidation))
	require.NoError(t, it.RejectProof("comprovante ilegível"))
	assert.Equal(t, InstallmentPending, it.Status)
	assert.Empty(t, it.Proof.URL)
	assert.Equal(t, ProofRejected, it.Proof.Status)

	require.NoError(t, it.SubmitProof("https://files.example.com/2.pdf", today, today), "resubmission after rejection")
	confirmed := today.AddDate(0, 0, -1)
	require.NoError(t, it.ApproveProof(confirmed))
	assert.Equal(t, InstallmentPaid, it.Status)
	assert.Equal(t, confirmed, *it.PaidAt)
	assert.True(t, it.Proof.Approved)

	require.NoError(t, it.RejectProof("estorno"))
	assert.Equal(t, InstallmentPending, it.Status)
	assert.Nil(t, it.PaidAt)
}

func TestInstallment_MarkPaidAndPending(t *testing.T) {
	it := Installment{ID: "i1", Status: InstallmentPending}
	assert.True(t, errors.Is(it.MarkPaid(time.Time{}), ErrValidation))
	require.NoError(t, it.MarkPaid(today))
	assert.True(t, errors.Is(it.MarkPaid(today), ErrInvalidTransition))
	require.NoError(t, it.MarkPending())
	assert.True(t, errors.Is(it.MarkPending(), ErrInvalidTransition))

	c := Installment{ID: "i2", Status: InstallmentCancelled}
	assert.True(t, errors.Is(c.MarkPaid(today), ErrInvalidTransition))
}

func TestInstallment_Exposure(t *testing.T) {
	late := Installment{Amount: MustMoney("10"), DueDate: today.AddDate(0, 0, -1), Status: InstallmentPending}
	assert.Equal(t, "10.00", late.Exposure().StringFixed(2))
	assert.True(t, late.Overdue(today))

	dueToday := late
	dueToday.DueDate = today
	assert.False(t, dueToday.Overdue(today), "due today is not overdue yet")

	review := late
	review.Status = InstallmentUnderReview
	assert.Equal(t, "10.00", review.Exposure().StringFixed(2))
	assert.False(t, review.Overdue(today))

	paid := late
	paid.Status = InstallmentPaid
	assert.True(t, paid.Exposure().IsZero())
}

func TestChangeset_TrackRollsUpAccounts(t *testing.T) {
	var cs Changeset
	before := Installment{ID: "i1", CustomerID: "c1", StoreID: "s1", Amount: MustMoney("100"), DueDate: today.AddDate(0, 0, -3), Status: InstallmentPending}
	after := before
	require.NoError(t, after.MarkPaid(today))
	cs.Track(&before, &after)

	deltas := cs.EffectiveDeltas()
	require.Len(t, deltas, 2)
	assert.Equal(t, "c1", deltas[0].AccountID)
	assert.Equal(t, "c1#s1", deltas[1].AccountID)
	for _, d := range deltas {
		assert.Equal(t, "-100.00", d.Outstanding.StringFixed(2))
	}
	assert.Len(t, cs.Upserts, 1)

	var noop Changeset
	same := before
	noop.Track(&before, &same)
	assert.Empty(t, noop.EffectiveDeltas())
}

func TestChangeset_LateInstallmentMovesOnlyOutstanding(t *testing.T) {
	// Created on time, paid after it fell overdue: the commit only sees outstanding.
	created := Installment{ID: "i1", CustomerID: "c1", Amount: MustMoney("300"), DueDate: today.AddDate(0, 0, -10), Status: InstallmentPending}
	var open Changeset
	open.Track(nil, &created)

	paid := created
	require.NoError(t, paid.MarkPaid(today))
	var settle Changeset
	settle.Track(&created, &paid)

	net := open.EffectiveDeltas()[0].Outstanding.Add(settle.EffectiveDeltas()[0].Outstanding)
	assert.True(t, net.IsZero(), "got %s", net.StringFixed(2))
}

func TestLedger_Aggregates(t *testing.T) {
	l := Ledger{
		{ID: "a", Sequence: 1, Amount: MustMoney("100"), DueDate: today.AddDate(0, 0, -5), Status: InstallmentPaid},
		{ID: "b", Sequence: 2, Amount: MustMoney("100"), DueDate: today.AddDate(0, 0, -1), Status: InstallmentPending},
		{ID: "c", Sequence: 3, Amount: MustMoney("100"), DueDate: today.AddDate(0, 1, 0), Status: InstallmentUnderReview},
		{ID: "x", Sequence: 3, Amount: MustMoney("999"), DueDate: today, Status: InstallmentCancelled},
	}
	totals := l.Totals(today)
	assert.Equal(t, 3, totals.Count)
	assert.Equal(t, 1, totals.PaidCount)
	assert.Equal(t, "300.00", totals.Sum.StringFixed(2))
	assert.Equal(t, "100.00", totals.TotalPaid.StringFixed(2))
	assert.Equal(t, "200.00", totals.TotalPending.StringFixed(2))
	assert.Equal(t, "100.00", totals.TotalOverdue.StringFixed(2))
	assert.False(t, totals.AllPaid)

	status, ok := l.PaymentStatus(today)
	require.True(t, ok)
	assert.Equal(t, PaymentStatusUnderReview, status)

	_, ok = Ledger{}.PaymentStatus(today)
	assert.False(t, ok)
}
