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
	defaultInvitationsTableName = "invitations"
	invitationsWorkspaceIDIndex = "workspace_id-index"
)

type invitationItem struct {
	ID          string `dynamodbav:"id"`
	WorkspaceID string `dynamodbav:"workspace_id"`
	Email       string `dynamodbav:"email"`
	Status      string `dynamodbav:"status"`
	ExpiresAt   string `dynamodbav:"expires_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// InvitationDynamoRepository persists invitations in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: workspace_id-index (PK: workspace_id)

type InvitationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvitationRepository = (*InvitationDynamoRepository)(nil)

func NewInvitationDynamoRepository(ddb *dynamodb.Client) *InvitationDynamoRepository {
	return &InvitationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVITATIONS_TABLE", defaultInvitationsTableName),
	}
}

func (r *InvitationDynamoRepository) Create(ctx context.Context, inv entities.Invitation) (entities.Invitation, error) {
	av, err := attributevalue.MarshalMap(toInvitationItem(inv))
	if err != nil {
		return entities.Invitation{}, err
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
		return entities.Invitation{}, err
	}
	return inv, nil
}

func (r *InvitationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invitation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invitation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invitation{}, nil
	}

	var it invitationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invitation{}, err
	}
	return fromInvitationItem(it), nil
}

func (r *InvitationDynamoRepository) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Invitation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invitationsWorkspaceIDIndex),
		KeyConditionExpression: aws.String("workspace_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workspaceID},
		},
	})
	if err != nil {
		return nil, err
	}

	invitations := make([]entities.Invitation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invitationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invitations = append(invitations, fromInvitationItem(it))
	}
	return invitations, nil
}

func (r *InvitationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InvitationStatus) (entities.Invitation, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invitation{}, nil
		}
		return entities.Invitation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invitation{}, nil
	}

	var it invitationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invitation{}, err
	}
	return fromInvitationItem(it), nil
}

func toInvitationItem(inv entities.Invitation) invitationItem {
	return invitationItem{
		ID:          inv.ID,
		WorkspaceID: inv.WorkspaceID,
		Email:       inv.Email,
		Status:      string(inv.Status),
		ExpiresAt:   formatTimePtr(inv.ExpiresAt),
		CreatedAt:   formatTime(inv.CreatedAt),
	}
}

func fromInvitationItem(it invitationItem) entities.Invitation {
	return entities.Invitation{
		ID:          it.ID,
		WorkspaceID: it.WorkspaceID,
		Email:       it.Email,
		Status:      entities.InvitationStatus(it.Status),
		ExpiresAt:   parseTimePtr(it.ExpiresAt),
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
