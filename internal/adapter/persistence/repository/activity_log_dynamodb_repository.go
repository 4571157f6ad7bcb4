package repository

import (
	"context"
	"sort"

	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultActivityLogTableName = "activity_log"
	activityLogWorkspaceIDIndex = "workspace_id-index"
)

type activityEntryItem struct {
	ID          string                 `dynamodbav:"id"`
	WorkspaceID string                 `dynamodbav:"workspace_id"`
	ActorID     string                 `dynamodbav:"actor_id,omitempty"`
	Type        string                 `dynamodbav:"type"`
	Entity      string                 `dynamodbav:"entity"`
	EntityID    string                 `dynamodbav:"entity_id"`
	Payload     map[string]interface{} `dynamodbav:"payload,omitempty"`
	CreatedAt   string                 `dynamodbav:"created_at"`
}

// ActivityLogDynamoRepository persists the append-only activity feed in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: workspace_id-index (PK: workspace_id)

type ActivityLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActivityLogRepository = (*ActivityLogDynamoRepository)(nil)

func NewActivityLogDynamoRepository(ddb *dynamodb.Client) *ActivityLogDynamoRepository {
	return &ActivityLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITY_LOG_TABLE", defaultActivityLogTableName),
	}
}

func (r *ActivityLogDynamoRepository) Append(ctx context.Context, e entities.ActivityEntry) (entities.ActivityEntry, error) {
	av, err := attributevalue.MarshalMap(toActivityEntryItem(e))
	if err != nil {
		return entities.ActivityEntry{}, err
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
		return entities.ActivityEntry{}, err
	}
	return e, nil
}

// ListByWorkspaceID returns the feed newest first.
func (r *ActivityLogDynamoRepository) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.ActivityEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(activityLogWorkspaceIDIndex),
		KeyConditionExpression: aws.String("workspace_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workspaceID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.ActivityEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it activityEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromActivityEntryItem(it))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func toActivityEntryItem(e entities.ActivityEntry) activityEntryItem {
	return activityEntryItem{
		ID:          e.ID,
		WorkspaceID: e.WorkspaceID,
		ActorID:     e.ActorID,
		Type:        e.Type,
		Entity:      e.Entity,
		EntityID:    e.EntityID,
		Payload:     e.Payload,
		CreatedAt:   formatTime(e.CreatedAt),
	}
}

func fromActivityEntryItem(it activityEntryItem) entities.ActivityEntry {
	return entities.ActivityEntry{
		ID:          it.ID,
		WorkspaceID: it.WorkspaceID,
		ActorID:     it.ActorID,
		Type:        it.Type,
		Entity:      it.Entity,
		EntityID:    it.EntityID,
		Payload:     it.Payload,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
