package repository

import (
	"context"

	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCompaniesTableName = "companies"
	companiesWorkspaceIDIndex = "workspace_id-index"
)

type companyItem struct {
	ID             string   `dynamodbav:"id"`
	WorkspaceID    string   `dynamodbav:"workspace_id"`
	Name           string   `dynamodbav:"name"`
	Website        string   `dynamodbav:"website,omitempty"`
	FeesTaxable    bool     `dynamodbav:"fees_taxable"`
	TaxOverridePct *float64 `dynamodbav:"tax_override_pct,omitempty"`
}

// CompanyDynamoRepository persists vendor companies in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: workspace_id-index (PK: workspace_id)

type CompanyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompanyRepository = (*CompanyDynamoRepository)(nil)

func NewCompanyDynamoRepository(ddb *dynamodb.Client) *CompanyDynamoRepository {
	return &CompanyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPANIES_TABLE", defaultCompaniesTableName),
	}
}

func (r *CompanyDynamoRepository) Create(ctx context.Context, c entities.Company) (entities.Company, error) {
	av, err := attributevalue.MarshalMap(toCompanyItem(c))
	if err != nil {
		return entities.Company{}, err
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
		return entities.Company{}, err
	}
	return c, nil
}

func (r *CompanyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Company, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Company{}, err
	}
	if len(out.Item) == 0 {
		return entities.Company{}, nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

func (r *CompanyDynamoRepository) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Company, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(companiesWorkspaceIDIndex),
		KeyConditionExpression: aws.String("workspace_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workspaceID},
		},
	})
	if err != nil {
		return nil, err
	}

	companies := make([]entities.Company, 0, len(out.Items))
	for _, raw := range out.Items {
		var it companyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		companies = append(companies, fromCompanyItem(it))
	}
	return companies, nil
}

func (r *CompanyDynamoRepository) Update(ctx context.Context, c entities.Company) (entities.Company, error) {
	av, err := attributevalue.MarshalMap(toCompanyItem(c))
	if err != nil {
		return entities.Company{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Company{}, err
	}
	return c, nil
}

func (r *CompanyDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCompanyItem(c entities.Company) companyItem {
	return companyItem{
		ID:             c.ID,
		WorkspaceID:    c.WorkspaceID,
		Name:           c.Name,
		Website:        c.Website,
		FeesTaxable:    c.FeesTaxable,
		TaxOverridePct: c.TaxOverridePct,
	}
}

func fromCompanyItem(it companyItem) entities.Company {
	return entities.Company{
		ID:             it.ID,
		WorkspaceID:    it.WorkspaceID,
		Name:           it.Name,
		Website:        it.Website,
		FeesTaxable:    it.FeesTaxable,
		TaxOverridePct: it.TaxOverridePct,
	}
}
