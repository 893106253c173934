package response

import (
	"testing"
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase"
)

func TestFromOrderView(t *testing.T) {
	now := time.Now().UTC()
	paid := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	view := usecase.OrderView{
		Order: entities.Order{
			ID:           "o1",
			BuyerID:      "c1",
			GoodsTotal:   entities.MustMoney("1000"),
			PayableTotal: entities.MustMoney("1090"),
			Status:       entities.OrderStatusInTransit,
			Items:        []entities.LineItem{{ProductID: "p1", Quantity: 1, UnitPrice: entities.MustMoney("1000")}},
			CreatedAt:    now,
		},
		Installments: []entities.Installment{{
			ID:       "i1",
			Sequence: 1,
			Amount:   entities.MustMoney("363.3"),
			DueDate:  time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
			Status:   entities.InstallmentPaid,
			PaidAt:   &paid,
		}},
		Totals: entities.LedgerTotals{Count: 3, PaidCount: 1, TotalPaid: entities.MustMoney("363.3")},
	}

	res := FromOrderView(view)
	if res.Order.PayableTotal != "1090.00" || res.Order.GoodsTotal != "1000.00" || res.Order.Items[0].UnitPrice != "1000.00" {
		t.Fatalf("unexpected money fields: %+v", res.Order)
	}
	if res.Order.Status != "in_transit" || !res.Order.CreatedAt.Equal(now) {
		t.Fatalf("unexpected order fields: %+v", res.Order)
	}
	it := res.Installments[0]
	if it.Amount != "363.30" || it.DueDate != "2026-04-15" || it.PaidAt != "2026-03-10" {
		t.Fatalf("unexpected installment: %+v", it)
	}
	if it.Boleto != nil {
		t.Fatalf("boleto should be omitted when none was issued")
	}
	if res.Totals.TotalPaid != "363.30" || res.Totals.PaidCount != 1 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
}

func TestFromDelinquencyReport(t *testing.T) {
	blockDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	res := FromDelinquencyReport(entities.DelinquencyReport{
		CustomerID:   "c1",
		Blocked:      true,
		BlockDate:    &blockDate,
		TotalOverdue: entities.MustMoney("330"),
	})
	if !res.Blocked || res.BlockDate != "2026-03-15" || res.TotalOverdue != "330.00" {
		t.Fatalf("unexpected report: %+v", res)
	}
	if res.OverdueInstallments == nil {
		t.Fatalf("overdue installments must render as an empty list")
	}
}
