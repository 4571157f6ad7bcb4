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
	defaultRoomBudgetsTableName = "room_budgets"
	roomBudgetsWorkspaceIDIndex = "workspace_id-index"
)

type roomBudgetItem struct {
	ID                  string `dynamodbav:"id"`
	WorkspaceID         string `dynamodbav:"workspace_id"`
	RoomID              string `dynamodbav:"room_id"`
	PlannedCents        int64  `dynamodbav:"planned_cents"`
	TargetDate          string `dynamodbav:"target_date,omitempty"`
	SavingsTargetSource string `dynamodbav:"savings_target_source"`
}

// RoomBudgetDynamoRepository persists room budgets in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: workspace_id-index (PK: workspace_id)

type RoomBudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRoomBudgetRepository = (*RoomBudgetDynamoRepository)(nil)

func NewRoomBudgetDynamoRepository(ddb *dynamodb.Client) *RoomBudgetDynamoRepository {
	return &RoomBudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ROOM_BUDGETS_TABLE", defaultRoomBudgetsTableName),
	}
}

func (r *RoomBudgetDynamoRepository) Create(ctx context.Context, b entities.RoomBudget) (entities.RoomBudget, error) {
	av, err := attributevalue.MarshalMap(toRoomBudgetItem(b))
	if err != nil {
		return entities.RoomBudget{}, err
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
		return entities.RoomBudget{}, err
	}
	return b, nil
}

func (r *RoomBudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.RoomBudget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RoomBudget{}, err
	}
	if len(out.Item) == 0 {
		return entities.RoomBudget{}, nil
	}

	var it roomBudgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RoomBudget{}, err
	}
	return fromRoomBudgetItem(it), nil
}

// GetByRoomID resolves the single budget of a (workspace, room) pair by
// filtering the workspace query; budget counts per workspace are small.
func (r *RoomBudgetDynamoRepository) GetByRoomID(ctx context.Context, workspaceID, roomID string) (entities.RoomBudget, error) {
	budgets, err := r.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return entities.RoomBudget{}, err
	}
	for _, b := range budgets {
		if b.RoomID == roomID {
			return b, nil
		}
	}
	return entities.RoomBudget{}, nil
}

func (r *RoomBudgetDynamoRepository) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.RoomBudget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(roomBudgetsWorkspaceIDIndex),
		KeyConditionExpression: aws.String("workspace_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workspaceID},
		},
	})
	if err != nil {
		return nil, err
	}

	budgets := make([]entities.RoomBudget, 0, len(out.Items))
	for _, raw := range out.Items {
		var it roomBudgetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		budgets = append(budgets, fromRoomBudgetItem(it))
	}
	return budgets, nil
}

func (r *RoomBudgetDynamoRepository) Update(ctx context.Context, b entities.RoomBudget) (entities.RoomBudget, error) {
	av, err := attributevalue.MarshalMap(toRoomBudgetItem(b))
	if err != nil {
		return entities.RoomBudget{}, err
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
		return entities.RoomBudget{}, err
	}
	return b, nil
}

func (r *RoomBudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toRoomBudgetItem(b entities.RoomBudget) roomBudgetItem {
	return roomBudgetItem{
		ID:                  b.ID,
		WorkspaceID:         b.WorkspaceID,
		RoomID:              b.RoomID,
		PlannedCents:        b.PlannedCents,
		TargetDate:          formatTimePtr(b.TargetDate),
		SavingsTargetSource: string(b.SavingsTargetSource),
	}
}

func fromRoomBudgetItem(it roomBudgetItem) entities.RoomBudget {
	return entities.RoomBudget{
		ID:                  it.ID,
		WorkspaceID:         it.WorkspaceID,
		RoomID:              it.RoomID,
		PlannedCents:        it.PlannedCents,
		TargetDate:          parseTimePtr(it.TargetDate),
		SavingsTargetSource: entities.SavingsTargetSource(it.SavingsTargetSource),
	}
}
