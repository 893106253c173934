package response

import (
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase"
)

type LineItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type OrderResponse struct {
	ID                    string             `json:"id"`
	BuyerID               string             `json:"buyer_id"`
	SupplierID            string             `json:"supplier_id"`
	StoreID               string             `json:"store_id,omitempty"`
	Items                 []LineItemResponse `json:"items"`
	GoodsTotal            string             `json:"valor_total" example:"1000.00"`
	FreightAmount         string             `json:"valor_frete_fob" example:"90.00"`
	PayableTotal          string             `json:"valor_final" example:"1090.00"`
	FreightType           string             `json:"freight_type"`
	FreightIncluded       bool               `json:"freight_included_in_installments"`
	FreightChargeMode     string             `json:"freight_charge_mode"`
	Status                string             `json:"status"`
	PaymentStatus         string             `json:"payment_status"`
	PaymentMethod         string             `json:"payment_method,omitempty"`
	OriginalPaymentMethod string             `json:"original_payment_method,omitempty"`
	InvoiceRef            string             `json:"invoice_ref,omitempty"`
	Carrier               string             `json:"transportadora,omitempty"`
	TrackingCode          string             `json:"tracking_code,omitempty"`
	CancelReason          string             `json:"cancel_reason,omitempty"`
	InvoiceReceiptAt      *time.Time         `json:"invoice_receipt_at,omitempty"`
	BoletoReceiptAt       *time.Time         `json:"boleto_receipt_at,omitempty"`
	GoodsReceiptAt        *time.Time         `json:"goods_receipt_at,omitempty"`
	DeliveredAt           *time.Time         `json:"delivered_at,omitempty"`
	CancelledAt           *time.Time         `json:"cancelled_at,omitempty"`
	Version               int64              `json:"version"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

type TotalsResponse struct {
	Count        int    `json:"count"`
	PaidCount    int    `json:"paid_count"`
	Sum          string `json:"sum"`
	TotalPaid    string `json:"total_paid"`
	TotalPending string `json:"total_pending"`
	TotalOverdue string `json:"total_overdue"`
	AllPaid      bool   `json:"all_paid"`
}

type OrderViewResponse struct {
	Order        OrderResponse         `json:"order"`
	Installments []InstallmentResponse `json:"installments"`
	Totals       TotalsResponse        `json:"totals"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]LineItemResponse, len(o.Items))
	for i, li := range o.Items {
		items[i] = LineItemResponse{ProductID: li.ProductID, Quantity: li.Quantity, UnitPrice: money(li.UnitPrice)}
	}
	return OrderResponse{
		ID:                    o.ID,
		BuyerID:               o.BuyerID,
		SupplierID:            o.SupplierID,
		StoreID:               o.StoreID,
		Items:                 items,
		GoodsTotal:            money(o.GoodsTotal),
		FreightAmount:         money(o.FreightAmount),
		PayableTotal:          money(o.PayableTotal),
		FreightType:           string(o.FreightType),
		FreightIncluded:       o.FreightIncluded,
		FreightChargeMode:     string(o.FreightChargeMode),
		Status:                string(o.Status),
		PaymentStatus:         string(o.PaymentStatus),
		PaymentMethod:         o.PaymentMethod,
		OriginalPaymentMethod: o.OriginalPaymentMethod,
		InvoiceRef:            o.InvoiceRef,
		Carrier:               o.Carrier,
		TrackingCode:          o.TrackingCode,
		CancelReason:          o.CancelReason,
		InvoiceReceiptAt:      o.InvoiceReceiptAt,
		BoletoReceiptAt:       o.BoletoReceiptAt,
		GoodsReceiptAt:        o.GoodsReceiptAt,
		DeliveredAt:           o.DeliveredAt,
		CancelledAt:           o.CancelledAt,
		Version:               o.Version,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

func FromTotals(t entities.LedgerTotals) TotalsResponse {
	return TotalsResponse{
		Count:        t.Count,
		PaidCount:    t.PaidCount,
		Sum:          money(t.Sum),
		TotalPaid:    money(t.TotalPaid),
		TotalPending: money(t.TotalPending),
		TotalOverdue: money(t.TotalOverdue),
		AllPaid:      t.AllPaid,
	}
}

func FromOrderView(v usecase.OrderView) OrderViewResponse {
	return OrderViewResponse{
		Order:        FromOrder(v.Order),
		Installments: FromInstallments(v.Installments),
		Totals:       FromTotals(v.Totals),
	}
}
