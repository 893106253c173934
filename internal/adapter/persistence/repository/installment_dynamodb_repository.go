package repository

import (
	"context"
	"sort"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type proofItem struct {
	Status          string `dynamodbav:"status"`
	URL             string `dynamodbav:"url,omitempty"`
	SubmittedAt     string `dynamodbav:"submitted_at,omitempty"`
	ClaimedDate     string `dynamodbav:"claimed_date,omitempty"`
	Analyzed        bool   `dynamodbav:"analyzed"`
	Approved        bool   `dynamodbav:"approved"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`
}

type boletoItem struct {
	URL        string `dynamodbav:"url,omitempty"`
	Barcode    string `dynamodbav:"barcode,omitempty"`
	ExternalID string `dynamodbav:"external_id,omitempty"`
	IssuedAt   string `dynamodbav:"issued_at,omitempty"`
}

type installmentItem struct {
	ID         string                `dynamodbav:"id"`
	OrderID    string                `dynamodbav:"order_id"`
	CustomerID string                `dynamodbav:"customer_id"`
	StoreID    string                `dynamodbav:"store_id,omitempty"`
	Sequence   int                   `dynamodbav:"sequence"`
	TotalCount int                   `dynamodbav:"total_count"`
	Amount     attributevalue.Number `dynamodbav:"amount"`
	DueDate    string                `dynamodbav:"due_date"`
	Status     string                `dynamodbav:"status"`
	PaidAt     string                `dynamodbav:"paid_at,omitempty"`
	Proof      proofItem             `dynamodbav:"proof"`
	Boleto     boletoItem            `dynamodbav:"boleto"`
	CreatedAt  string                `dynamodbav:"created_at"`
	UpdatedAt  string                `dynamodbav:"updated_at"`
}

// InstallmentDynamoRepository reads installments from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI order_id-index: order_id (string)
//   - GSI customer_id-index: customer_id (string)
//
// GSI reads are eventually consistent; the order version check on commit
// rejects writes computed from a stale ledger.
type InstallmentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IInstallmentRepository = (*InstallmentDynamoRepository)(nil)

func NewInstallmentDynamoRepository(ddb *dynamodb.Client, tables Tables) *InstallmentDynamoRepository {
	return newInstallmentDynamoRepository(ddb, tables)
}

func newInstallmentDynamoRepository(ddb dynamoAPI, tables Tables) *InstallmentDynamoRepository {
	return &InstallmentDynamoRepository{ddb: ddb, tableName: tables.withDefaults().Installments}
}

func (r *InstallmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Installment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Installment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Installment{}, nil
	}

	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Installment{}, err
	}
	return fromInstallmentItem(it), nil
}

func (r *InstallmentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Installment, error) {
	items, err := r.queryIndex(ctx, orderIDIndex, "order_id", orderID)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(a, b int) bool { return items[a].Sequence < items[b].Sequence })
	return items, nil
}

func (r *InstallmentDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Installment, error) {
	items, err := r.queryIndex(ctx, customerIDIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(a, b int) bool {
		if !items[a].DueDate.Equal(items[b].DueDate) {
			return items[a].DueDate.Before(items[b].DueDate)
		}
		return items[a].ID < items[b].ID
	})
	return items, nil
}

func (r *InstallmentDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Installment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})

	var out []entities.Installment
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []installmentItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromInstallmentItem(it))
		}
	}
	return out, nil
}

func toInstallmentItem(i entities.Installment) installmentItem {
	return installmentItem{
		ID:         i.ID,
		OrderID:    i.OrderID,
		CustomerID: i.CustomerID,
		StoreID:    i.StoreID,
		Sequence:   i.Sequence,
		TotalCount: i.TotalCount,
		Amount:     number(i.Amount),
		DueDate:    entities.FormatDate(i.DueDate),
		Status:     string(i.Status),
		PaidAt:     formatTimePtr(i.PaidAt),
		Proof: proofItem{
			Status:          string(i.Proof.Status),
			URL:             i.Proof.URL,
			SubmittedAt:     formatTimePtr(i.Proof.SubmittedAt),
			ClaimedDate:     formatTimePtr(i.Proof.ClaimedDate),
			Analyzed:        i.Proof.Analyzed,
			Approved:        i.Proof.Approved,
			RejectionReason: i.Proof.RejectionReason,
		},
		Boleto: boletoItem{
			URL:        i.Boleto.URL,
			Barcode:    i.Boleto.Barcode,
			ExternalID: i.Boleto.ExternalID,
			IssuedAt:   formatTimePtr(i.Boleto.IssuedAt),
		},
		CreatedAt: formatTime(i.CreatedAt),
		UpdatedAt: formatTime(i.UpdatedAt),
	}
}

func fromInstallmentItem(it installmentItem) entities.Installment {
	return entities.Installment{
		ID:         it.ID,
		OrderID:    it.OrderID,
		CustomerID: it.CustomerID,
		StoreID:    it.StoreID,
		Sequence:   it.Sequence,
		TotalCount: it.TotalCount,
		Amount:     money(it.Amount),
		DueDate:    parseDate(it.DueDate),
		Status:     entities.InstallmentStatus(it.Status),
		PaidAt:     parseTimePtr(it.PaidAt),
		Proof: entities.PaymentProof{
			Status:          entities.ProofStatus(it.Proof.Status),
			URL:             it.Proof.URL,
			SubmittedAt:     parseTimePtr(it.Proof.SubmittedAt),
			ClaimedDate:     parseTimePtr(it.Proof.ClaimedDate),
			Analyzed:        it.Proof.Analyzed,
			Approved:        it.Proof.Approved,
			RejectionReason: it.Proof.RejectionReason,
		},
		Boleto: entities.Boleto{
			URL:        it.Boleto.URL,
			Barcode:    it.Boleto.Barcode,
			ExternalID: it.Boleto.ExternalID,
			IssuedAt:   parseTimePtr(it.Boleto.IssuedAt),
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
