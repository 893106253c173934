package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the DynamoDB limit for a single TransactWriteItems call.
const maxTransactItems = 100

// DynamoTransactor commits a changeset with one TransactWriteItems call.
//
// The order put is conditioned on the stored version; installment puts and
// deletes and the customer ADDs only apply if that condition holds.
type DynamoTransactor struct {
	ddb    dynamoAPI
	tables Tables
	now    func() time.Time
}

var _ interfaces.ITransactor = (*DynamoTransactor)(nil)

func NewDynamoTransactor(ddb *dynamodb.Client, tables Tables) *DynamoTransactor {
	return newDynamoTransactor(ddb, tables)
}

func newDynamoTransactor(ddb dynamoAPI, tables Tables) *DynamoTransactor {
	return &DynamoTransactor{ddb: ddb, tables: tables.withDefaults(), now: time.Now}
}

func (t *DynamoTransactor) Commit(ctx context.Context, cs entities.Changeset) error {
	items, err := t.build(cs)
	if err != nil {
		return err
	}

	_, err = t.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return t.mapError(cs, err)
	}
	return nil
}

func (t *DynamoTransactor) build(cs entities.Changeset) ([]types.TransactWriteItem, error) {
	deltas := cs.EffectiveDeltas()
	total := 1 + len(cs.Upserts) + len(cs.Deletes) + len(deltas)
	if total > maxTransactItems {
		return nil, entities.ValidationError("order %s changes %d items, more than one transaction can hold", cs.Order.ID, total)
	}

	orderAV, err := attributevalue.MarshalMap(toOrderItem(cs.Order))
	if err != nil {
		return nil, err
	}
	put := &types.Put{
		TableName:                aws.String(t.tables.Orders),
		Item:                     orderAV,
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
	if cs.NewOrder {
		put.ConditionExpression = aws.String("attribute_not_exists(#id)")
	} else {
		put.ConditionExpression = aws.String("attribute_exists(#id) AND #version = :expected")
		put.ExpressionAttributeNames = mergeNames(put.ExpressionAttributeNames, map[string]string{"#version": "version"})
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(cs.ExpectedVersion, 10)},
		}
	}

	items := make([]types.TransactWriteItem, 0, total)
	items = append(items, types.TransactWriteItem{Put: put})

	for _, it := range cs.Upserts {
		av, err := attributevalue.MarshalMap(toInstallmentItem(it))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName: aws.String(t.tables.Installments),
			Item:      av,
		}})
	}
	for _, it := range cs.Deletes {
		items = append(items, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(t.tables.Installments),
			Key:       idKey(it.ID),
		}})
	}

	now := formatTime(t.now())
	for _, d := range deltas {
		expr := "ADD #total_outstanding :outstanding SET #customer_id = :customer_id, #updated_at = :updated_at"
		names := map[string]string{
			"#total_outstanding": "total_outstanding",
			"#customer_id":       "customer_id",
			"#updated_at":        "updated_at",
		}
		values := map[string]types.AttributeValue{
			":outstanding": numberAV(d.Outstanding),
			":customer_id": &types.AttributeValueMemberS{Value: d.CustomerID},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		if d.StoreID != "" {
			expr += ", #store_id = :store_id"
			names["#store_id"] = "store_id"
			values[":store_id"] = &types.AttributeValueMemberS{Value: d.StoreID}
		}
		items = append(items, types.TransactWriteItem{Update: &types.Update{
			TableName:                 aws.String(t.tables.Customers),
			Key:                       idKey(d.AccountID),
			UpdateExpression:          aws.String(expr),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		}})
	}
	return items, nil
}

func (t *DynamoTransactor) mapError(cs entities.Changeset, err error) error {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for i, reason := range tce.CancellationReasons {
			code := aws.ToString(reason.Code)
			switch {
			case i == 0 && code == "ConditionalCheckFailed" && cs.NewOrder:
				return entities.ConcurrentModificationError("order %s already exists", cs.Order.ID)
			case i == 0 && code == "ConditionalCheckFailed":
				return entities.ConcurrentModificationError("order %s changed since version %d", cs.Order.ID, cs.ExpectedVersion)
			case code == "TransactionConflict":
				return entities.ConcurrentModificationError("order %s is being written by another transaction", cs.Order.ID)
			}
		}
		return fmt.Errorf("commit order %s: %w", cs.Order.ID, err)
	}
	var tip *types.TransactionInProgressException
	if errors.As(err, &tip) {
		return entities.ConcurrentModificationError("order %s is being written by another transaction", cs.Order.ID)
	}
	return err
}
