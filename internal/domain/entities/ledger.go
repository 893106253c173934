package entities

import (
	"sort"
	"time"
)

// Ledger is the set of installments of one order. Cancelled rows are kept for history
// but never count towards any aggregate.
type Ledger []Installment

// Active returns the non-cancelled installments ordered by sequence.
func (l Ledger) Active() []Installment {
	out := make([]Installment, 0, len(l))
	for _, it := range l {
		if it.Status != InstallmentCancelled {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Sequence < out[b].Sequence })
	return out
}

func (l Ledger) ActiveCount() int {
	return len(l.Active())
}

func (l Ledger) PaidCount() int {
	n := 0
	for _, it := range l {
		if it.Status == InstallmentPaid {
			n++
		}
	}
	return n
}

// AllPaid is true when there is at least one active installment and every active one is paid.
func (l Ledger) AllPaid() bool {
	active := l.Active()
	if len(active) == 0 {
		return false
	}
	for _, it := range active {
		if it.Status != InstallmentPaid {
			return false
		}
	}
	return true
}

func (l Ledger) Sum() Money {
	total := Zero
	for _, it := range l.Active() {
		total = total.Add(it.Amount)
	}
	return total
}

func (l Ledger) TotalPaid() Money {
	total := Zero
	for _, it := range l {
		if it.Status == InstallmentPaid {
			total = total.Add(it.Amount)
		}
	}
	return total
}

// TotalPending sums every open installment, under review included.
func (l Ledger) TotalPending() Money {
	total := Zero
	for _, it := range l {
		if it.Open() {
			total = total.Add(it.Amount)
		}
	}
	return total
}

func (l Ledger) TotalOverdue(today time.Time) Money {
	total := Zero
	for _, it := range l {
		if it.Overdue(today) {
			total = total.Add(it.Amount)
		}
	}
	return total
}

// PaymentStatus derives the order payment status. ok is false when the ledger is empty
// and the order keeps whatever status was set manually.
func (l Ledger) PaymentStatus(today time.Time) (status PaymentStatus, ok bool) {
	active := l.Active()
	if len(active) == 0 {
		return "", false
	}
	if l.AllPaid() {
		return PaymentStatusPaid, true
	}
	underReview, overdue := false, false
	for _, it := range active {
		if it.Status == InstallmentUnderReview {
			underReview = true
		}
		if it.Overdue(today) {
			overdue = true
		}
	}
	switch {
	case underReview:
		return PaymentStatusUnderReview, true
	case overdue:
		return PaymentStatusOverdue, true
	}
	return PaymentStatusPending, true
}

// Find returns the installment with the given id.
func (l Ledger) Find(id string) (Installment, bool) {
	for _, it := range l {
		if it.ID == id {
			return it, true
		}
	}
	return Installment{}, false
}

// LedgerTotals is the aggregate view exposed to callers.
type LedgerTotals struct {
	Count        int   `json:"count"`
	PaidCount    int   `json:"paid_count"`
	Sum          Money `json:"sum"`
	TotalPaid    Money `json:"total_paid"`
	TotalPending Money `json:"total_pending"`
	TotalOverdue Money `json:"total_overdue"`
	AllPaid      bool  `json:"all_paid"`
}

func (l Ledger) Totals(today time.Time) LedgerTotals {
	return LedgerTotals{
		Count:        l.ActiveCount(),
		PaidCount:    l.PaidCount(),
		Sum:          l.Sum(),
		TotalPaid:    l.TotalPaid(),
		TotalPending: l.TotalPending(),
		TotalOverdue: l.TotalOverdue(today),
		AllPaid:      l.AllPaid(),
	}
}
