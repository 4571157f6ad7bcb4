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
	defaultTasksTableName = "tasks"
	tasksWorkspaceIDIndex = "workspace_id-index"
)

type taskItem struct {
	ID          string `dynamodbav:"id"`
	WorkspaceID string `dynamodbav:"workspace_id"`
	Title       string `dynamodbav:"title"`
	AssignedTo  string `dynamodbav:"assigned_to"`
	CategoryID  string `dynamodbav:"category_id,omitempty"`
	DueDate     string `dynamodbav:"due_date,omitempty"`
	Priority    int    `dynamodbav:"priority"`
	Notes       string `dynamodbav:"notes,omitempty"`
	Done        bool   `dynamodbav:"done"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// TaskDynamoRepository persists tasks in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: workspace_id-index (PK: workspace_id)

type TaskDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITaskRepository = (*TaskDynamoRepository)(nil)

func NewTaskDynamoRepository(ddb *dynamodb.Client) *TaskDynamoRepository {
	return &TaskDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TASKS_TABLE", defaultTasksTableName),
	}
}

func (r *TaskDynamoRepository) Create(ctx context.Context, t entities.Task) (entities.Task, error) {
	av, err := attributevalue.MarshalMap(toTaskItem(t))
	if err != nil {
		return entities.Task{}, err
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
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskDynamoRepository) GetByID(ctx context.Context, id string) (entities.Task, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Task{}, err
	}
	if len(out.Item) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func (r *TaskDynamoRepository) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Task, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(tasksWorkspaceIDIndex),
		KeyConditionExpression: aws.String("workspace_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workspaceID},
		},
	})
	if err != nil {
		return nil, err
	}

	tasks := make([]entities.Task, 0, len(out.Items))
	for _, raw := range out.Items {
		var it taskItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		tasks = append(tasks, fromTaskItem(it))
	}
	return tasks, nil
}

func (r *TaskDynamoRepository) Update(ctx context.Context, t entities.Task) (entities.Task, error) {
	av, err := attributevalue.MarshalMap(toTaskItem(t))
	if err != nil {
		return entities.Task{}, err
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
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskDynamoRepository) SetDone(ctx context.Context, id string, done bool) (entities.Task, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #done = :done"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":done": &types.AttributeValueMemberBOOL{Value: done},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#done": "done",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Task{}, nil
		}
		return entities.Task{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func (r *TaskDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toTaskItem(t entities.Task) taskItem {
	return taskItem{
		ID:          t.ID,
		WorkspaceID: t.WorkspaceID,
		Title:       t.Title,
		AssignedTo:  string(t.AssignedTo),
		CategoryID:  t.CategoryID,
		DueDate:     formatTimePtr(t.DueDate),
		Priority:    t.Priority,
		Notes:       t.Notes,
		Done:        t.Done,
		CreatedAt:   formatTime(t.CreatedAt),
	}
}

func fromTaskItem(it taskItem) entities.Task {
	return entities.Task{
		ID:          it.ID,
		WorkspaceID: it.WorkspaceID,
		Title:       it.Title,
		AssignedTo:  entities.AssignedTo(it.AssignedTo),
		CategoryID:  it.CategoryID,
		DueDate:     parseTimePtr(it.DueDate),
		Priority:    it.Priority,
		Notes:       it.Notes,
		Done:        it.Done,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
