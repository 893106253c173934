package request

import (
	"errors"
	"testing"
	"time"

	"portal_pedidos/internal/domain/entities"
)

func TestCreateOrderRequest_ToInput(t *testing.T) {
	r := CreateOrderRequest{
		BuyerID:    " c1 ",
		SupplierID: "sup1",
		Items:      []LineItemRequest{{ProductID: "p1", Quantity: 2, UnitPrice: entities.MustMoney("10")}},
		Freight:    &FreightRequest{Amount: entities.MustMoney("90"), Type: "fob", Include: true},
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.BuyerID != "c1" || len(in.Items) != 1 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Freight == nil || in.Freight.Type != entities.FreightTypeFOB || in.Freight.Mode != entities.ChargeModeDiluted {
		t.Fatalf("unexpected freight: %+v", in.Freight)
	}

	r.Freight.ChargeMode = "per_item"
	if _, err := r.ToInput(); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestInvoiceOrderRequest_ToInput(t *testing.T) {
	r := InvoiceOrderRequest{
		InvoiceRef: "NF-1",
		Schedule:   &ScheduleRequest{Count: 2, DueDates: []string{"2026-04-15", "2026-05-15"}},
	}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Schedule == nil || in.Schedule.Count != 2 {
		t.Fatalf("unexpected schedule: %+v", in.Schedule)
	}
	if !in.Schedule.DueDates[1].Equal(time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected due date: %v", in.Schedule.DueDates[1])
	}

	r.Schedule.DueDates[0] = "15/04/2026"
	if _, err := r.ToInput(); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTransitionRequest_ToInput(t *testing.T) {
	in, err := TransitionRequest{Action: "SHIP", Carrier: "Jadlog", FreightType: "cif"}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Action != entities.ActionShip || in.FreightType != entities.FreightTypeCIF || in.Carrier != "Jadlog" {
		t.Fatalf("unexpected input: %+v", in)
	}

	if _, err := (TransitionRequest{Action: "teleport"}).ToInput(); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestInstallmentRequests_Dates(t *testing.T) {
	claimed, err := SubmitProofRequest{ProofURL: "https://x"}.ResolveClaimedDate()
	if err != nil || !claimed.IsZero() {
		t.Fatalf("empty claimed date should be zero, got %v %v", claimed, err)
	}

	if _, err := (ApproveProofRequest{ConfirmedDate: "yesterday"}).ResolveConfirmedDate(); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	paid, err := MarkPaidRequest{PaymentDate: "2026-03-14"}.ResolvePaymentDate()
	if err != nil || entities.FormatDate(paid) != "2026-03-14" {
		t.Fatalf("unexpected payment date %v %v", paid, err)
	}
}
