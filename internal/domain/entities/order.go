package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FreightType tells who bears the freight cost.
//   - CIF: supplier pays, no effect on installments.
//   - FOB: buyer pays, the amount may be folded into the installments.
type FreightType string

const (
	FreightTypeCIF FreightType = "CIF"
	FreightTypeFOB FreightType = "FOB"
)

func ParseFreightType(s string) (FreightType, error) {
	switch FreightType(strings.ToUpper(strings.TrimSpace(s))) {
	case FreightTypeCIF:
		return FreightTypeCIF, nil
	case FreightTypeFOB:
		return FreightTypeFOB, nil
	}
	return "", ValidationError("unknown freight type %q", s)
}

// ChargeMode selects how an included FOB freight is spread over the installments.
type ChargeMode string

const (
	ChargeModeDiluted          ChargeMode = "diluted"
	ChargeModeFirstInstallment ChargeMode = "first_installment"
)

func ParseChargeMode(s string) (ChargeMode, error) {
	switch ChargeMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ChargeModeDiluted:
		return ChargeModeDiluted, nil
	case ChargeModeFirstInstallment:
		return ChargeModeFirstInstallment, nil
	}
	return "", ValidationError("unknown freight charge mode %q", s)
}

// PaymentStatus is the financial state of an order.
type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusUnderReview PaymentStatus = "under_review"
	PaymentStatusPaid        PaymentStatus = "paid"
	PaymentStatusOverdue     PaymentStatus = "overdue"
	PaymentStatusCancelled   PaymentStatus = "cancelled"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch p := PaymentStatus(strings.ToLower(strings.TrimSpace(s))); p {
	case PaymentStatusPending, PaymentStatusUnderReview, PaymentStatusPaid, PaymentStatusOverdue, PaymentStatusCancelled:
		return p, nil
	}
	return "", ValidationError("unknown payment status %q", s)
}

// ReceiptKind is one of the buyer confirmations tracked on an order.
type ReceiptKind string

const (
	ReceiptInvoice ReceiptKind = "invoice"
	ReceiptBoleto  ReceiptKind = "boleto"
	ReceiptGoods   ReceiptKind = "goods"
)

func ParseReceiptKind(s string) (ReceiptKind, error) {
	switch k := ReceiptKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ReceiptInvoice, ReceiptBoleto, ReceiptGoods:
		return k, nil
	}
	return "", ValidationError("unknown receipt kind %q", s)
}

// LineItem is opaque to the ledger; only its value contributes to the goods total.
type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
}

func (li LineItem) Total() Money {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Order is a purchase placed by a buyer (loja) against one supplier.
//
// Storage model:
//   - PK: id
//   - version: optimistic concurrency counter, incremented on every committed change
//
// Monetary fields:
//   - GoodsTotal (valor_total): goods value
//   - FreightAmount (valor_frete_fob): freight informed by the supplier
//   - PayableTotal (valor_final): what the installments must add up to
type Order struct {
	ID         string     `json:"id"`
	BuyerID    string     `json:"buyer_id"`
	SupplierID string     `json:"supplier_id"`
	StoreID    string     `json:"store_id,omitempty"`
	Items      []LineItem `json:"items"`

	GoodsTotal        Money       `json:"valor_total"`
	FreightAmount     Money       `json:"valor_frete_fob"`
	PayableTotal      Money       `json:"valor_final"`
	FreightType       FreightType `json:"freight_type"`
	FreightIncluded   bool        `json:"freight_included_in_installments"`
	FreightChargeMode ChargeMode  `json:"freight_charge_mode"`

	Status                OrderStatus   `json:"status"`
	PaymentStatus         PaymentStatus `json:"payment_status"`
	PaymentMethod         string        `json:"payment_method"`
	OriginalPaymentMethod string        `json:"original_payment_method"`

	InvoiceRef   string `json:"invoice_ref,omitempty"`
	Carrier      string `json:"transportadora,omitempty"`
	TrackingCode string `json:"tracking_code,omitempty"`
	CancelReason string `json:"cancel_reason,omitempty"`

	InvoiceReceiptAt *time.Time `json:"invoice_receipt_at,omitempty"`
	BoletoReceiptAt  *time.Time `json:"boleto_receipt_at,omitempty"`
	GoodsReceiptAt   *time.Time `json:"goods_receipt_at,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountID is the customer account the order's installments are charged to.
func (o Order) AccountID() string {
	return AccountID(o.BuyerID, o.StoreID)
}

// Frozen reports whether the ledger of this order no longer accepts schedule changes.
func (o Order) Frozen() bool {
	return o.Status == OrderStatusCancelled
}

// GoodsTotalOf sums the line items.
func GoodsTotalOf(items []LineItem) Money {
	total := Zero
	for _, li := range items {
		total = total.Add(li.Total())
	}
	return Cents(total)
}

// ApplyFreight stores the freight policy and recomputes the payable total.
// The caller is responsible for redistributing any existing schedule afterwards.
func (o *Order) ApplyFreight(amount Money, t FreightType, include bool, mode ChargeMode) error {
	if amount.IsNegative() {
		return ValidationError("freight amount cannot be negative")
	}
	if t == "" {
		t = FreightTypeCIF
	}
	if mode == "" {
		mode = ChargeModeDiluted
	}
	if t == FreightTypeFOB && include && !amount.IsPositive() {
		return ValidationError("freight amount is required when FOB freight is included in installments")
	}
	if t == FreightTypeCIF {
		include = false
	}
	o.FreightAmount = Cents(amount)
	o.FreightType = t
	o.FreightIncluded = include
	o.FreightChargeMode = mode
	o.PayableTotal = o.GoodsTotal
	if t == FreightTypeFOB && include {
		o.PayableTotal = o.GoodsTotal.Add(o.FreightAmount)
	}
	return nil
}

// ConfirmReceipt records one of the buyer confirmations.
func (o *Order) ConfirmReceipt(kind ReceiptKind, at time.Time) error {
	if o.Status == OrderStatusCancelled {
		return InvalidTransitionError("order %s is cancelled", o.ID)
	}
	switch kind {
	case ReceiptInvoice:
		if o.InvoiceRef == "" {
			return InvalidTransitionError("order %s has not been invoiced", o.ID)
		}
		o.InvoiceReceiptAt = &at
	case ReceiptBoleto:
		o.BoletoReceiptAt = &at
	case ReceiptGoods:
		if o.Status == OrderStatusNew || o.Status == OrderStatusInProduction {
			return InvalidTransitionError("order %s has not been shipped", o.ID)
		}
		o.GoodsReceiptAt = &at
	default:
		return ValidationError("unknown receipt kind %q", kind)
	}
	return nil
}

// SetPaymentStatus is the supplier/admin override. It only sticks while the order
// has no installments, otherwise the ledger derives the value.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if o.Status == OrderStatusCancelled {
		return InvalidTransitionError("order %s is cancelled", o.ID)
	}
	if status == PaymentStatusCancelled {
		return ValidationError("use the cancel action to cancel an order")
	}
	o.PaymentStatus = status
	return nil
}

func (o Order) receivedOrDelivered() bool {
	return o.GoodsReceiptAt != nil || o.DeliveredAt != nil
}
