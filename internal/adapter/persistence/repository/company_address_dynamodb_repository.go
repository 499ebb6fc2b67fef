package repository

import (
	"context"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultCompanyAddressesTableName = "company_addresses"

type companyAddressItem struct {
	CompanyID  string `dynamodbav:"company_id"`
	RecordedAt string `dynamodbav:"recorded_at"`
	Address    string `dynamodbav:"address"`
}

// CompanyAddressDynamoRepository persists prospect company addresses in DynamoDB.
//
// Table requirements:
//   - PK: company_id (string)
//   - SK: recorded_at (string, RFC3339Nano)
type CompanyAddressDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICompanyAddressRepository = (*CompanyAddressDynamoRepository)(nil)

func NewCompanyAddressDynamoRepository(ddb DynamoAPI, tableName string) *CompanyAddressDynamoRepository {
	return &CompanyAddressDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOrDefault(tableName, DefaultCompanyAddressesTableName),
	}
}

func (r *CompanyAddressDynamoRepository) Create(ctx context.Context, a entities.CompanyAddress) (entities.CompanyAddress, error) {
	av, err := attributevalue.MarshalMap(toCompanyAddressItem(a))
	if err != nil {
		return entities.CompanyAddress{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CompanyAddress{}, err
	}
	return a, nil
}

// ListByCompanyID returns the addresses recorded for a company, oldest first.
func (r *CompanyAddressDynamoRepository) ListByCompanyID(ctx context.Context, companyID string) ([]entities.CompanyAddress, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CompanyAddress, 0, len(out.Items))
	for _, raw := range out.Items {
		var it companyAddressItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCompanyAddressItem(it))
	}
	return items, nil
}

func toCompanyAddressItem(a entities.CompanyAddress) companyAddressItem {
	return companyAddressItem{
		CompanyID:  a.CompanyID,
		RecordedAt: formatTime(a.RecordedAt),
		Address:    a.Address,
	}
}

func fromCompanyAddressItem(it companyAddressItem) entities.CompanyAddress {
	return entities.CompanyAddress{
		CompanyID:  it.CompanyID,
		Address:    it.Address,
		RecordedAt: parseTime(it.RecordedAt),
	}
}
