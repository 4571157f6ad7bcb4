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

const defaultWorkspacesTableName = "workspaces"

type workspaceItem struct {
	ID              string  `dynamodbav:"id"`
	Name            string  `dynamodbav:"name"`
	Zip             string  `dynamodbav:"zip,omitempty"`
	Currency        string  `dynamodbav:"currency"`
	SalesTaxRatePct float64 `dynamodbav:"sales_tax_rate_pct"`
	MoveInDate      string  `dynamodbav:"move_in_date,omitempty"`
	CreatedBy       string  `dynamodbav:"created_by"`
	CreatedAt       string  `dynamodbav:"created_at"`
}

// WorkspaceDynamoRepository persists Workspace entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type WorkspaceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkspaceRepository = (*WorkspaceDynamoRepository)(nil)

func NewWorkspaceDynamoRepository(ddb *dynamodb.Client) *WorkspaceDynamoRepository {
	return &WorkspaceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKSPACES_TABLE", defaultWorkspacesTableName),
	}
}

func (r *WorkspaceDynamoRepository) Create(ctx context.Context, w entities.Workspace) (entities.Workspace, error) {
	av, err := attributevalue.MarshalMap(toWorkspaceItem(w))
	if err != nil {
		return entities.Workspace{}, err
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
		return entities.Workspace{}, err
	}
	return w, nil
}

func (r *WorkspaceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Workspace, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Workspace{}, err
	}
	if len(out.Item) == 0 {
		return entities.Workspace{}, nil
	}

	var it workspaceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Workspace{}, err
	}
	return fromWorkspaceItem(it), nil
}

func (r *WorkspaceDynamoRepository) Update(ctx context.Context, w entities.Workspace) (entities.Workspace, error) {
	av, err := attributevalue.MarshalMap(toWorkspaceItem(w))
	if err != nil {
		return entities.Workspace{}, err
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
		return entities.Workspace{}, err
	}
	return w, nil
}

func toWorkspaceItem(w entities.Workspace) workspaceItem {
	return workspaceItem{
		ID:              w.ID,
		Name:            w.Name,
		Zip:             w.Zip,
		Currency:        w.Currency,
		SalesTaxRatePct: w.SalesTaxRatePct,
		MoveInDate:      formatTimePtr(w.MoveInDate),
		CreatedBy:       w.CreatedBy,
		CreatedAt:       formatTime(w.CreatedAt),
	}
}

func fromWorkspaceItem(it workspaceItem) entities.Workspace {
	return entities.Workspace{
		ID:              it.ID,
		Name:            it.Name,
		Zip:             it.Zip,
		Currency:        it.Currency,
		SalesTaxRatePct: it.SalesTaxRatePct,
		MoveInDate:      parseTimePtr(it.MoveInDate),
		CreatedBy:       it.CreatedBy,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
