// Package schedule splits an order's payable total into installments and
// redistributes it when the installment count or the total changes.
//
// Paid installments are anchors: their amount, due date and sequence number are
// never touched, only their total count is renumbered.
package schedule

import (
	"sort"
	"time"

	"portal_pedidos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Plan describes one split. FrontLoad is added on top of the first open position
// after the even split of Total-FrontLoad (freight charged on the first installment).
type Plan struct {
	Total     entities.Money
	Count     int
	DueDates  []time.Time
	FrontLoad entities.Money
}

// Generate divides total into count installments, the rounding remainder going to the last one.
func Generate(total entities.Money, count int, dueDates []time.Time) ([]entities.Installment, error) {
	return GeneratePlan(Plan{Total: total, Count: count, DueDates: dueDates})
}

// GeneratePlan is Generate with a front-loaded amount.
func GeneratePlan(p Plan) ([]entities.Installment, error) {
	return RedistributePlan(nil, p)
}

// Redistribute keeps the paid installments of existing and splits what is left of
// currentTotal over the remaining newCount-paidCount positions.
func Redistribute(existing []entities.Installment, newCount int, newDueDates []time.Time, currentTotal entities.Money) ([]entities.Installment, error) {
	return RedistributePlan(existing, Plan{Total: currentTotal, Count: newCount, DueDates: newDueDates})
}

// RedistributePlan is Redistribute with a front-loaded amount.
//
// Due dates are positional over the resulting schedule ordered by sequence; the
// dates at positions held by paid installments are ignored. Open installments keep
// their ids and relative order, new ones are appended with an empty id, and when
// shrinking open installments are dropped from the end.
func RedistributePlan(existing []entities.Installment, p Plan) ([]entities.Installment, error) {
	if err := validatePlan(p); err != nil {
		return nil, err
	}

	active := entities.Ledger(existing).Active()
	paid := make([]entities.Installment, 0, len(active))
	open := make([]entities.Installment, 0, len(active))
	for _, it := range active {
		if it.Status == entities.InstallmentPaid {
			paid = append(paid, it)
		} else {
			open = append(open, it)
		}
	}
	if p.Count < len(paid) {
		return nil, entities.InvalidScheduleError("%d installments requested but %d are already paid", p.Count, len(paid))
	}

	total := entities.Cents(p.Total)
	paidSum := entities.Zero
	for _, it := range paid {
		paidSum = paidSum.Add(it.Amount)
	}
	remaining := total.Sub(paidSum)
	if remaining.IsNegative() {
		return nil, entities.OverpaidScheduleError("paid %s exceeds total %s", paidSum.StringFixed(2), total.StringFixed(2))
	}

	slots := p.Count - len(paid)
	if slots == 0 && remaining.IsPositive() {
		return nil, entities.InvalidScheduleError("no open installment left to carry the remaining %s", remaining.StringFixed(2))
	}

	if len(open) > slots {
		open = open[:slots]
	}
	for len(open) < slots {
		open = append(open, entities.Installment{
			Status: entities.InstallmentPending,
			Proof:  entities.PaymentProof{Status: entities.ProofNone},
		})
	}

	amounts := splitFrontLoaded(remaining, slots, p.FrontLoad)
	seqs := freeSequences(paid, slots)
	for i := range open {
		open[i].Sequence = seqs[i]
		open[i].Amount = amounts[i]
		open[i].TotalCount = p.Count
	}

	result := make([]entities.Installment, 0, p.Count)
	for _, it := range paid {
		it.TotalCount = p.Count
		result = append(result, it)
	}
	result = append(result, open...)
	sort.SliceStable(result, func(a, b int) bool { return result[a].Sequence < result[b].Sequence })

	for i := range result {
		if result[i].Status != entities.InstallmentPaid {
			result[i].DueDate = entities.DateOnly(p.DueDates[i])
		}
	}
	return result, nil
}

// Split divides total in count shares truncated to cents; the last share takes the remainder.
func Split(total entities.Money, count int) []entities.Money {
	if count < 1 {
		return nil
	}
	total = entities.Cents(total)
	share := total.Div(decimal.NewFromInt(int64(count))).Truncate(2)
	out := make([]entities.Money, count)
	allocated := entities.Zero
	for i := 0; i < count-1; i++ {
		out[i] = share
		allocated = allocated.Add(share)
	}
	out[count-1] = total.Sub(allocated)
	return out
}

func splitFrontLoaded(total entities.Money, count int, front entities.Money) []entities.Money {
	if count < 1 {
		return nil
	}
	front = entities.Cents(front)
	if front.IsNegative() {
		front = entities.Zero
	}
	if front.GreaterThan(total) {
		front = total
	}
	out := Split(total.Sub(front), count)
	out[0] = out[0].Add(front)
	return out
}

// freeSequences returns the n lowest sequence numbers not held by a paid installment.
func freeSequences(paid []entities.Installment, n int) []int {
	taken := make(map[int]bool, len(paid))
	for _, it := range paid {
		taken[it.Sequence] = true
	}
	out := make([]int, 0, n)
	for seq := 1; len(out) < n; seq++ {
		if !taken[seq] {
			out = append(out, seq)
		}
	}
	return out
}

func validatePlan(p Plan) error {
	if p.Count < 1 {
		return entities.InvalidScheduleError("installment count must be at least 1, got %d", p.Count)
	}
	if len(p.DueDates) != p.Count {
		return entities.InvalidScheduleError("%d due dates informed for %d installments", len(p.DueDates), p.Count)
	}
	for i, d := range p.DueDates {
		if d.IsZero() {
			return entities.InvalidScheduleError("due date of installment %d is missing", i+1)
		}
	}
	if p.Total.IsNegative() {
		return entities.InvalidScheduleError("total cannot be negative")
	}
	return nil
}
