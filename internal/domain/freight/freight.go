// Package freight folds a FOB freight charge into the payable total and the
// installment schedule.
package freight

import (
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/domain/schedule"
)

// PayableTotal is goods plus freight when the buyer pays it (FOB) through the installments.
func PayableTotal(goods, freight entities.Money, t entities.FreightType, include bool) entities.Money {
	if t == entities.FreightTypeFOB && include {
		return entities.Cents(goods.Add(freight))
	}
	return entities.Cents(goods)
}

// ApplyToSchedule returns the per-installment shares of goods and freight.
//   - diluted: goods+freight split evenly.
//   - first_installment: goods split evenly, installment #1 also takes the whole freight.
func ApplyToSchedule(goods, freight entities.Money, mode entities.ChargeMode, count int) ([]entities.Money, error) {
	if count < 1 {
		return nil, entities.InvalidScheduleError("installment count must be at least 1, got %d", count)
	}
	if freight.IsNegative() {
		return nil, entities.ValidationError("freight amount cannot be negative")
	}
	switch mode {
	case entities.ChargeModeFirstInstallment:
		shares := schedule.Split(goods, count)
		shares[0] = shares[0].Add(entities.Cents(freight))
		return shares, nil
	case entities.ChargeModeDiluted, "":
		return schedule.Split(goods.Add(freight), count), nil
	}
	return nil, entities.ValidationError("unknown freight charge mode %q", mode)
}

// PlanFor builds the split plan of an order. In first-installment mode the freight
// is front-loaded only while installment #1 is still open; once it is paid the
// freight was already collected and the remainder is split evenly.
func PlanFor(o entities.Order, existing []entities.Installment, count int, dueDates []time.Time) schedule.Plan {
	p := schedule.Plan{
		Total:    PayableTotal(o.GoodsTotal, o.FreightAmount, o.FreightType, o.FreightIncluded),
		Count:    count,
		DueDates: dueDates,
	}
	if o.FreightType == entities.FreightTypeFOB && o.FreightIncluded &&
		o.FreightChargeMode == entities.ChargeModeFirstInstallment && !firstInstallmentPaid(existing) {
		p.FrontLoad = o.FreightAmount
	}
	return p
}

// Validate checks the freight fields of an order.
func Validate(o entities.Order) error {
	if o.FreightAmount.IsNegative() {
		return entities.ValidationError("freight amount cannot be negative")
	}
	if o.FreightType == entities.FreightTypeFOB && o.FreightIncluded && !o.FreightAmount.IsPositive() {
		return entities.ValidationError("freight amount is required when FOB freight is included in installments")
	}
	return nil
}

func firstInstallmentPaid(existing []entities.Installment) bool {
	for _, it := range existing {
		if it.Sequence == 1 && it.Status == entities.InstallmentPaid {
			return true
		}
	}
	return false
}
