package repository

import (
	"context"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type lineItemItem struct {
	ProductID string                `dynamodbav:"product_id"`
	Quantity  int                   `dynamodbav:"quantity"`
	UnitPrice attributevalue.Number `dynamodbav:"unit_price"`
}

type orderItem struct {
	ID         string         `dynamodbav:"id"`
	BuyerID    string         `dynamodbav:"buyer_id"`
	SupplierID string         `dynamodbav:"supplier_id"`
	StoreID    string         `dynamodbav:"store_id,omitempty"`
	Items      []lineItemItem `dynamodbav:"items"`

	GoodsTotal        attributevalue.Number `dynamodbav:"valor_total"`
	FreightAmount     attributevalue.Number `dynamodbav:"valor_frete_fob"`
	PayableTotal      attributevalue.Number `dynamodbav:"valor_final"`
	FreightType       string                `dynamodbav:"freight_type"`
	FreightIncluded   bool                  `dynamodbav:"freight_included_in_installments"`
	FreightChargeMode string                `dynamodbav:"freight_charge_mode"`

	Status                string `dynamodbav:"status"`
	PaymentStatus         string `dynamodbav:"payment_status"`
	PaymentMethod         string `dynamodbav:"payment_method,omitempty"`
	OriginalPaymentMethod string `dynamodbav:"original_payment_method,omitempty"`

	InvoiceRef   string `dynamodbav:"invoice_ref,omitempty"`
	Carrier      string `dynamodbav:"transportadora,omitempty"`
	TrackingCode string `dynamodbav:"tracking_code,omitempty"`
	CancelReason string `dynamodbav:"cancel_reason,omitempty"`

	InvoiceReceiptAt string `dynamodbav:"invoice_receipt_at,omitempty"`
	BoletoReceiptAt  string `dynamodbav:"boleto_receipt_at,omitempty"`
	GoodsReceiptAt   string `dynamodbav:"goods_receipt_at,omitempty"`
	DeliveredAt      string `dynamodbav:"delivered_at,omitempty"`
	CancelledAt      string `dynamodbav:"cancelled_at,omitempty"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository reads orders from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Writes go through DynamoTransactor so the order row and its installments
// change together.
type OrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tables Tables) *OrderDynamoRepository {
	return newOrderDynamoRepository(ddb, tables)
}

func newOrderDynamoRepository(ddb dynamoAPI, tables Tables) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tables.withDefaults().Orders}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	items := make([]lineItemItem, len(o.Items))
	for i, li := range o.Items {
		items[i] = lineItemItem{ProductID: li.ProductID, Quantity: li.Quantity, UnitPrice: number(li.UnitPrice)}
	}
	return orderItem{
		ID:                    o.ID,
		BuyerID:               o.BuyerID,
		SupplierID:            o.SupplierID,
		StoreID:               o.StoreID,
		Items:                 items,
		GoodsTotal:            number(o.GoodsTotal),
		FreightAmount:         number(o.FreightAmount),
		PayableTotal:          number(o.PayableTotal),
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
		InvoiceReceiptAt:      formatTimePtr(o.InvoiceReceiptAt),
		BoletoReceiptAt:       formatTimePtr(o.BoletoReceiptAt),
		GoodsReceiptAt:        formatTimePtr(o.GoodsReceiptAt),
		DeliveredAt:           formatTimePtr(o.DeliveredAt),
		CancelledAt:           formatTimePtr(o.CancelledAt),
		Version:               o.Version,
		CreatedAt:             formatTime(o.CreatedAt),
		UpdatedAt:             formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.LineItem, len(it.Items))
	for i, li := range it.Items {
		items[i] = entities.LineItem{ProductID: li.ProductID, Quantity: li.Quantity, UnitPrice: money(li.UnitPrice)}
	}
	return entities.Order{
		ID:                    it.ID,
		BuyerID:               it.BuyerID,
		SupplierID:            it.SupplierID,
		StoreID:               it.StoreID,
		Items:                 items,
		GoodsTotal:            money(it.GoodsTotal),
		FreightAmount:         money(it.FreightAmount),
		PayableTotal:          money(it.PayableTotal),
		FreightType:           entities.FreightType(it.FreightType),
		FreightIncluded:       it.FreightIncluded,
		FreightChargeMode:     entities.ChargeMode(it.FreightChargeMode),
		Status:                entities.OrderStatus(it.Status),
		PaymentStatus:         entities.PaymentStatus(it.PaymentStatus),
		PaymentMethod:         it.PaymentMethod,
		OriginalPaymentMethod: it.OriginalPaymentMethod,
		InvoiceRef:            it.InvoiceRef,
		Carrier:               it.Carrier,
		TrackingCode:          it.TrackingCode,
		CancelReason:          it.CancelReason,
		InvoiceReceiptAt:      parseTimePtr(it.InvoiceReceiptAt),
		BoletoReceiptAt:       parseTimePtr(it.BoletoReceiptAt),
		GoodsReceiptAt:        parseTimePtr(it.GoodsReceiptAt),
		DeliveredAt:           parseTimePtr(it.DeliveredAt),
		CancelledAt:           parseTimePtr(it.CancelledAt),
		Version:               it.Version,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}
