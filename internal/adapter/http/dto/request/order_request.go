package request

import (
	"strings"
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase"
)

type LineItemRequest struct {
	ProductID string         `json:"product_id" binding:"required"`
	Quantity  int            `json:"quantity" binding:"required"`
	UnitPrice entities.Money `json:"unit_price" swaggertype:"string" example:"199.90"`
}

// FreightRequest carries the freight informed by the supplier.
// Type defaults to CIF and ChargeMode to diluted.
type FreightRequest struct {
	Amount     entities.Money `json:"amount" swaggertype:"string" example:"90.00"`
	Type       string         `json:"type" example:"FOB"`
	Include    bool           `json:"included_in_installments"`
	ChargeMode string         `json:"charge_mode" example:"diluted"`
}

func (r FreightRequest) ToInput() (usecase.FreightInput, error) {
	in := usecase.FreightInput{Amount: r.Amount, Include: r.Include}
	if strings.TrimSpace(r.Type) != "" {
		t, err := entities.ParseFreightType(r.Type)
		if err != nil {
			return usecase.FreightInput{}, err
		}
		in.Type = t
	}
	mode, err := entities.ParseChargeMode(r.ChargeMode)
	if err != nil {
		return usecase.FreightInput{}, err
	}
	in.Mode = mode
	return in, nil
}

type ScheduleRequest struct {
	Count    int      `json:"count" binding:"required" example:"3"`
	DueDates []string `json:"due_dates" binding:"required" example:"2026-04-15,2026-05-15,2026-06-15"`
}

func (r ScheduleRequest) ToInput() (usecase.ScheduleInput, error) {
	dates := make([]time.Time, len(r.DueDates))
	for i, s := range r.DueDates {
		d, err := entities.ParseDate(s)
		if err != nil {
			return usecase.ScheduleInput{}, err
		}
		dates[i] = d
	}
	return usecase.ScheduleInput{Count: r.Count, DueDates: dates}, nil
}

type CreateOrderRequest struct {
	BuyerID       string            `json:"buyer_id" binding:"required"`
	SupplierID    string            `json:"supplier_id" binding:"required"`
	StoreID       string            `json:"store_id"`
	PaymentMethod string            `json:"payment_method" example:"boleto"`
	Items         []LineItemRequest `json:"items" binding:"required,dive"`
	Freight       *FreightRequest   `json:"freight"`
}

func (r CreateOrderRequest) ToInput() (usecase.CreateOrderInput, error) {
	items := make([]entities.LineItem, len(r.Items))
	for i, li := range r.Items {
		items[i] = entities.LineItem{ProductID: strings.TrimSpace(li.ProductID), Quantity: li.Quantity, UnitPrice: li.UnitPrice}
	}
	in := usecase.CreateOrderInput{
		BuyerID:       strings.TrimSpace(r.BuyerID),
		SupplierID:    strings.TrimSpace(r.SupplierID),
		StoreID:       strings.TrimSpace(r.StoreID),
		PaymentMethod: strings.TrimSpace(r.PaymentMethod),
		Items:         items,
	}
	if r.Freight != nil {
		f, err := r.Freight.ToInput()
		if err != nil {
			return usecase.CreateOrderInput{}, err
		}
		in.Freight = &f
	}
	return in, nil
}

type InvoiceOrderRequest struct {
	InvoiceRef string           `json:"invoice_ref" binding:"required" example:"NF-000123"`
	Freight    *FreightRequest  `json:"freight"`
	Schedule   *ScheduleRequest `json:"schedule"`
}

func (r InvoiceOrderRequest) ToInput() (usecase.InvoiceInput, error) {
	in := usecase.InvoiceInput{InvoiceRef: strings.TrimSpace(r.InvoiceRef)}
	if r.Freight != nil {
		f, err := r.Freight.ToInput()
		if err != nil {
			return usecase.InvoiceInput{}, err
		}
		in.Freight = &f
	}
	if r.Schedule != nil {
		s, err := r.Schedule.ToInput()
		if err != nil {
			return usecase.InvoiceInput{}, err
		}
		in.Schedule = &s
	}
	return in, nil
}

type TransitionRequest struct {
	Action       string `json:"action" binding:"required" example:"ship"`
	InvoiceRef   string `json:"invoice_ref"`
	Carrier      string `json:"transportadora"`
	TrackingCode string `json:"tracking_code"`
	FreightType  string `json:"freight_type"`
	Reason       string `json:"reason"`
}

func (r TransitionRequest) ToInput() (usecase.TransitionInput, error) {
	action, err := entities.ParseOrderAction(r.Action)
	if err != nil {
		return usecase.TransitionInput{}, err
	}
	in := usecase.TransitionInput{
		Action:       action,
		InvoiceRef:   strings.TrimSpace(r.InvoiceRef),
		Carrier:      strings.TrimSpace(r.Carrier),
		TrackingCode: strings.TrimSpace(r.TrackingCode),
		Reason:       strings.TrimSpace(r.Reason),
	}
	if strings.TrimSpace(r.FreightType) != "" {
		ft, err := entities.ParseFreightType(r.FreightType)
		if err != nil {
			return usecase.TransitionInput{}, err
		}
		in.FreightType = ft
	}
	return in, nil
}

type ConfirmReceiptRequest struct {
	Kind string `json:"kind" binding:"required" example:"goods"`
}

type PaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required" example:"paid"`
}
