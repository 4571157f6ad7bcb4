package repository

import (
	"context"
	"errors"

	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultItemsTableName = "items"
	itemsWorkspaceIDIndex = "workspace_id-index"
)

type itemItem struct {
	ID          string `dynamodbav:"id"`
	WorkspaceID string `dynamodbav:"workspace_id"`
	Name        string `dynamodbav:"name"`
	Link        string `dynamodbav:"link,omitempty"`
	ImageURL    string `dynamodbav:"image_url,omitempty"`
	CategoryID  string `dynamodbav:"category_id,omitempty"`
	RoomID      string `dynamodbav:"room_id,omitempty"`
	CompanyID   string `dynamodbav:"company_id,omitempty"`
	Quantity    int64  `dynamodbav:"quantity"`
	Priority    int    `dynamodbav:"priority"`
	Purchased   bool   `dynamodbav:"purchased"`
	Notes       string `dynamodbav:"notes,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ItemDynamoRepository persists shopping items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: workspace_id-index (PK: workspace_id)

type ItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IItemRepository = (*ItemDynamoRepository)(nil)

func NewItemDynamoRepository(ddb *dynamodb.Client) *ItemDynamoRepository {
	return &ItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ITEMS_TABLE", defaultItemsTableName),
	}
}

func (r *ItemDynamoRepository) Create(ctx context.Context, it entities.Item) (entities.Item, error) {
	av, err := attributevalue.MarshalMap(toItemItem(it))
	if err != nil {
		return entities.Item{}, err
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
		return entities.Item{}, err
	}
	return it, nil
}

func (r *ItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.Item, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Item{}, err
	}
	if len(out.Item) == 0 {
		return entities.Item{}, nil
	}

	var it itemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Item{}, err
	}
	return fromItemItem(it), nil
}

func (r *ItemDynamoRepository) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Item, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(itemsWorkspaceIDIndex),
		KeyConditionExpression: aws.String("workspace_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workspaceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Item, 0, len(out.Items))
	for _, raw := range out.Items {
		var it itemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromItemItem(it))
	}
	return items, nil
}

func (r *ItemDynamoRepository) Update(ctx context.Context, it entities.Item) (entities.Item, error) {
	av, err := attributevalue.MarshalMap(toItemItem(it))
	if err != nil {
		return entities.Item{}, err
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
		return entities.Item{}, err
	}
	return it, nil
}

func (r *ItemDynamoRepository) SetPurchased(ctx context.Context, id string, purchased bool) (entities.Item, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #purchased = :purchased"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":purchased": &types.AttributeValueMemberBOOL{Value: purchased},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#purchased": "purchased",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Item{}, nil
		}
		return entities.Item{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Item{}, nil
	}

	var it itemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Item{}, err
	}
	return fromItemItem(it), nil
}

func (r *ItemDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toItemItem(it entities.Item) itemItem {
	return itemItem{
		ID:          it.ID,
		WorkspaceID: it.WorkspaceID,
		Name:        it.Name,
		Link:        it.Link,
		ImageURL:    it.ImageURL,
		CategoryID:  it.CategoryID,
		RoomID:      it.RoomID,
		CompanyID:   it.CompanyID,
		Quantity:    it.Quantity,
		Priority:    it.Priority,
		Purchased:   it.Purchased,
		Notes:       it.Notes,
		CreatedAt:   formatTime(it.CreatedAt),
	}
}

func fromItemItem(it itemItem) entities.Item {
	return entities.Item{
		ID:          it.ID,
		WorkspaceID: it.WorkspaceID,
		Name:        it.Name,
		Link:        it.Link,
		ImageURL:    it.ImageURL,
		CategoryID:  it.CategoryID,
		RoomID:      it.RoomID,
		CompanyID:   it.CompanyID,
		Quantity:    it.Quantity,
		Priority:    it.Priority,
		Purchased:   it.Purchased,
		Notes:       it.Notes,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
