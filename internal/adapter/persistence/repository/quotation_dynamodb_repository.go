package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultQuotationsTableName = "quotations"

type quotationItem struct {
	ID             string `dynamodbav:"id"`
	CompanyID      string `dynamodbav:"company_id"`
	BondType       string `dynamodbav:"bond_type"`
	Status         string `dynamodbav:"status"`
	Draft          string `dynamodbav:"draft"`
	CreatedAt      string `dynamodbav:"created_at"`
	ExpiresAt      string `dynamodbav:"expires_at"`
	ExpiresAtEpoch int64  `dynamodbav:"expires_at_epoch"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The draft is stored as a JSON document. expires_at_epoch (number) backs
// the expiry sweep.
type QuotationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb DynamoAPI, tableName string) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOrDefault(tableName, DefaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it, err := toQuotationItem(q)
	if err != nil {
		return entities.Quotation{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it)
}

// ExpireBefore marks every active quotation whose expiry is before now as expired.
func (r *QuotationDynamoRepository) ExpireBefore(ctx context.Context, now time.Time) (int, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		FilterExpression:     aws.String("#status = :active AND #exp < :now"),
		ProjectionExpression: aws.String("#id"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
			"#exp":    "expires_at_epoch",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: string(entities.QuotationStatusActive)},
			":now":    &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
	})

	expired := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return expired, err
		}
		for _, raw := range page.Items {
			var key struct {
				ID string `dynamodbav:"id"`
			}
			if err := attributevalue.UnmarshalMap(raw, &key); err != nil {
				return expired, err
			}
			ok, err := r.markExpired(ctx, key.ID)
			if err != nil {
				return expired, err
			}
			if ok {
				expired++
			}
		}
	}
	return expired, nil
}

func (r *QuotationDynamoRepository) markExpired(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#status = :active"),
		UpdateExpression:    aws.String("SET #status = :expired"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":  &types.AttributeValueMemberS{Value: string(entities.QuotationStatusActive)},
			":expired": &types.AttributeValueMemberS{Value: string(entities.QuotationStatusExpired)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toQuotationItem(q entities.Quotation) (quotationItem, error) {
	draft, err := json.Marshal(q.Draft)
	if err != nil {
		return quotationItem{}, err
	}
	return quotationItem{
		ID:             q.ID,
		CompanyID:      q.Draft.CompanyID,
		BondType:       string(q.Draft.BondType),
		Status:         string(q.Status),
		Draft:          string(draft),
		CreatedAt:      formatTime(q.CreatedAt),
		ExpiresAt:      formatTime(q.ExpiresAt),
		ExpiresAtEpoch: q.ExpiresAt.Unix(),
	}, nil
}

func fromQuotationItem(it quotationItem) (entities.Quotation, error) {
	var draft entities.QuoteDraft
	if it.Draft != "" {
		if err := json.Unmarshal([]byte(it.Draft), &draft); err != nil {
			return entities.Quotation{}, err
		}
	}
	return entities.Quotation{
		ID:        it.ID,
		Draft:     draft,
		Status:    entities.QuotationStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		ExpiresAt: parseTime(it.ExpiresAt),
	}, nil
}
