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
	defaultMembersTableName = "members"
	membersWorkspaceIDIndex = "workspace_id-index"
)

type memberItem struct {
	ID          string `dynamodbav:"id"`
	WorkspaceID string `dynamodbav:"workspace_id"`
	UserID      string `dynamodbav:"user_id"`
	Role        string `dynamodbav:"role"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// MemberDynamoRepository persists workspace members in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: workspace_id-index (PK: workspace_id)

type MemberDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMemberRepository = (*MemberDynamoRepository)(nil)

func NewMemberDynamoRepository(ddb *dynamodb.Client) *MemberDynamoRepository {
	return &MemberDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEMBERS_TABLE", defaultMembersTableName),
	}
}

func (r *MemberDynamoRepository) Create(ctx context.Context, m entities.Member) (entities.Member, error) {
	av, err := attributevalue.MarshalMap(toMemberItem(m))
	if err != nil {
		return entities.Member{}, err
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
		return entities.Member{}, err
	}
	return m, nil
}

func (r *MemberDynamoRepository) GetByID(ctx context.Context, id string) (entities.Member, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Member{}, err
	}
	if len(out.Item) == 0 {
		return entities.Member{}, nil
	}

	var it memberItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Member{}, err
	}
	return fromMemberItem(it), nil
}

func (r *MemberDynamoRepository) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Member, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(membersWorkspaceIDIndex),
		KeyConditionExpression: aws.String("workspace_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workspaceID},
		},
	})
	if err != nil {
		return nil, err
	}

	members := make([]entities.Member, 0, len(out.Items))
	for _, raw := range out.Items {
		var it memberItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		members = append(members, fromMemberItem(it))
	}
	return members, nil
}

func (r *MemberDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toMemberItem(m entities.Member) memberItem {
	return memberItem{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        m.Role,
		CreatedAt:   formatTime(m.CreatedAt),
	}
}

func fromMemberItem(it memberItem) entities.Member {
	return entities.Member{
		ID:          it.ID,
		WorkspaceID: it.WorkspaceID,
		UserID:      it.UserID,
		Role:        it.Role,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
