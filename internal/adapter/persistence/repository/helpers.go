package repository

import (
	"context"
	"os"
	"time"

	"portal_pedidos/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName       = "orders"
	defaultInstallmentsTableName = "installments"
	defaultCustomersTableName    = "customers"

	orderIDIndex    = "order_id-index"
	customerIDIndex = "customer_id-index"
)

// dynamoAPI is the subset of *dynamodb.Client used by the repositories.
type dynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ dynamoAPI = (*dynamodb.Client)(nil)

// Tables holds the DynamoDB table names. Empty fields fall back to
// ORDERS_TABLE, INSTALLMENTS_TABLE and CUSTOMERS_TABLE.
type Tables struct {
	Orders       string
	Installments string
	Customers    string
}

func (t Tables) withDefaults() Tables {
	if t.Orders == "" {
		t.Orders = getenvDefault("ORDERS_TABLE", defaultOrdersTableName)
	}
	if t.Installments == "" {
		t.Installments = getenvDefault("INSTALLMENTS_TABLE", defaultInstallmentsTableName)
	}
	if t.Customers == "" {
		t.Customers = getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName)
	}
	return t
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func mergeNames(base map[string]string, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func number(m entities.Money) attributevalue.Number {
	return attributevalue.Number(entities.Cents(m).StringFixed(2))
}

func numberAV(m entities.Money) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: string(number(m))}
}

func money(n attributevalue.Number) entities.Money {
	if n == "" {
		return entities.Zero
	}
	m, err := entities.NewMoney(string(n))
	if err != nil {
		return entities.Zero
	}
	return m
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	t := parseTime(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func parseDate(s string) time.Time {
	d, err := entities.ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return d
}
