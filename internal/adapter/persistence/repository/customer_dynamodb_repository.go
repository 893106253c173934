package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type customerItem struct {
	ID               string                `dynamodbav:"id"`
	CustomerID       string                `dynamodbav:"customer_id"`
	StoreID          string                `dynamodbav:"store_id,omitempty"`
	Blocked          bool                  `dynamodbav:"blocked"`
	BlockReason      string                `dynamodbav:"block_reason,omitempty"`
	BlockDate        string                `dynamodbav:"block_date,omitempty"`
	TotalOverdue     attributevalue.Number `dynamodbav:"total_overdue"`
	TotalOutstanding attributevalue.Number `dynamodbav:"total_outstanding"`
	UpdatedAt        string                `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists customer accounts in DynamoDB.
//
// Table requirements:
//   - PK: id (string, customer id or customer#store)
//
// total_outstanding is incremented by DynamoTransactor; this repository only
// writes the blocking flags and the overdue snapshot.
type CustomerDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client, tables Tables) *CustomerDynamoRepository {
	return newCustomerDynamoRepository(ddb, tables)
}

func newCustomerDynamoRepository(ddb dynamoAPI, tables Tables) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, tableName: tables.withDefaults().Customers, now: time.Now}
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, accountID string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(accountID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}
	return unmarshalCustomer(out.Item)
}

// Block marks the account as blocked unless it already is. When another
// writer got there first the stored account is returned unchanged.
func (r *CustomerDynamoRepository) Block(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	expr := "SET #blocked = :true, #block_reason = :reason, #block_date = :date, #customer_id = :customer_id, #updated_at = :updated_at"
	names := map[string]string{
		"#blocked":      "blocked",
		"#block_reason": "block_reason",
		"#block_date":   "block_date",
		"#customer_id":  "customer_id",
		"#updated_at":   "updated_at",
	}
	values := map[string]types.AttributeValue{
		":true":        &types.AttributeValueMemberBOOL{Value: true},
		":false":       &types.AttributeValueMemberBOOL{Value: false},
		":reason":      &types.AttributeValueMemberS{Value: c.BlockReason},
		":date":        &types.AttributeValueMemberS{Value: formatTimePtr(c.BlockDate)},
		":customer_id": &types.AttributeValueMemberS{Value: c.CustomerID},
		":updated_at":  &types.AttributeValueMemberS{Value: formatTime(r.now())},
	}
	if c.StoreID != "" {
		expr += ", #store_id = :store_id"
		names["#store_id"] = "store_id"
		values[":store_id"] = &types.AttributeValueMemberS{Value: c.StoreID}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(c.ID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_not_exists(#blocked) OR #blocked = :false"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.GetByID(ctx, c.ID)
		}
		return entities.Customer{}, err
	}
	return unmarshalCustomer(out.Attributes)
}

func (r *CustomerDynamoRepository) Unblock(ctx context.Context, accountID string) (entities.Customer, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(accountID),
		UpdateExpression:    aws.String("SET #blocked = :false, #updated_at = :updated_at REMOVE #block_reason, #block_date"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#blocked":      "blocked",
			"#block_reason": "block_reason",
			"#block_date":   "block_date",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	return unmarshalCustomer(out.Attributes)
}

// SetTotalOverdue overwrites the overdue snapshot, creating the account if needed.
// The update is conditional on the total the caller read.
func (r *CustomerDynamoRepository) SetTotalOverdue(ctx context.Context, accountID, customerID, storeID string, expected, total entities.Money) error {
	expr := "SET #total_overdue = :total, #customer_id = :customer_id, #updated_at = :updated_at"
	names := map[string]string{
		"#total_overdue": "total_overdue",
		"#customer_id":   "customer_id",
		"#updated_at":    "updated_at",
	}
	values := map[string]types.AttributeValue{
		":total":       numberAV(total),
		":expected":    numberAV(expected),
		":customer_id": &types.AttributeValueMemberS{Value: customerID},
		":updated_at":  &types.AttributeValueMemberS{Value: formatTime(r.now())},
	}
	if storeID != "" {
		expr += ", #store_id = :store_id"
		names["#store_id"] = "store_id"
		values[":store_id"] = &types.AttributeValueMemberS{Value: storeID}
	}

	cond := "#total_overdue = :expected"
	if expected.IsZero() {
		cond = "attribute_not_exists(#total_overdue) OR " + cond
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(accountID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ConcurrentModificationError("overdue total of account %s changed since it was read", accountID)
		}
		return err
	}
	return nil
}

func (r *CustomerDynamoRepository) ListWithOutstanding(ctx context.Context) ([]entities.Customer, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#total_outstanding > :zero"),
		ExpressionAttributeNames: map[string]string{
			"#total_outstanding": "total_outstanding",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
	})

	out := make([]entities.Customer, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, av := range page.Items {
			c, err := unmarshalCustomer(av)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func unmarshalCustomer(av map[string]types.AttributeValue) (entities.Customer, error) {
	var it customerItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:               it.ID,
		CustomerID:       it.CustomerID,
		StoreID:          it.StoreID,
		Blocked:          it.Blocked,
		BlockReason:      it.BlockReason,
		BlockDate:        parseTimePtr(it.BlockDate),
		TotalOverdue:     money(it.TotalOverdue),
		TotalOutstanding: money(it.TotalOutstanding),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
