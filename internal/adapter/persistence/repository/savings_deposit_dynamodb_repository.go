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
	defaultSavingsDepositsTableName = "savings_deposits"
	savingsDepositsWorkspaceIDIndex = "workspace_id-index"
)

type savingsDepositItem struct {
	ID          string `dynamodbav:"id"`
	WorkspaceID string `dynamodbav:"workspace_id"`
	RoomID      string `dynamodbav:"room_id"`
	Date        string `dynamodbav:"date"`
	AmountCents int64  `dynamodbav:"amount_cents"`
	Note        string `dynamodbav:"note,omitempty"`
}

// SavingsDepositDynamoRepository persists the signed savings ledger in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: workspace_id-index (PK: workspace_id)

type SavingsDepositDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISavingsDepositRepository = (*SavingsDepositDynamoRepository)(nil)

func NewSavingsDepositDynamoRepository(ddb *dynamodb.Client) *SavingsDepositDynamoRepository {
	return &SavingsDepositDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SAVINGS_DEPOSITS_TABLE", defaultSavingsDepositsTableName),
	}
}

func (r *SavingsDepositDynamoRepository) Create(ctx context.Context, d entities.SavingsDeposit) (entities.SavingsDeposit, error) {
	av, err := attributevalue.MarshalMap(toSavingsDepositItem(d))
	if err != nil {
		return entities.SavingsDeposit{}, err
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
		return entities.SavingsDeposit{}, err
	}
	return d, nil
}

func (r *SavingsDepositDynamoRepository) GetByID(ctx context.Context, id string) (entities.SavingsDeposit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SavingsDeposit{}, err
	}
	if len(out.Item) == 0 {
		return entities.SavingsDeposit{}, nil
	}

	var it savingsDepositItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SavingsDeposit{}, err
	}
	return fromSavingsDepositItem(it), nil
}

func (r *SavingsDepositDynamoRepository) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.SavingsDeposit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(savingsDepositsWorkspaceIDIndex),
		KeyConditionExpression: aws.String("workspace_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workspaceID},
		},
	})
	if err != nil {
		return nil, err
	}

	deposits := make([]entities.SavingsDeposit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it savingsDepositItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		deposits = append(deposits, fromSavingsDepositItem(it))
	}
	return deposits, nil
}

func (r *SavingsDepositDynamoRepository) Update(ctx context.Context, d entities.SavingsDeposit) (entities.SavingsDeposit, error) {
	av, err := attributevalue.MarshalMap(toSavingsDepositItem(d))
	if err != nil {
		return entities.SavingsDeposit{}, err
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
		return entities.SavingsDeposit{}, err
	}
	return d, nil
}

func (r *SavingsDepositDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSavingsDepositItem(d entities.SavingsDeposit) savingsDepositItem {
	return savingsDepositItem{
		ID:          d.ID,
		WorkspaceID: d.WorkspaceID,
		RoomID:      d.RoomID,
		Date:        formatTime(d.Date),
		AmountCents: d.AmountCents,
		Note:        d.Note,
	}
}

func fromSavingsDepositItem(it savingsDepositItem) entities.SavingsDeposit {
	return entities.SavingsDeposit{
		ID:          it.ID,
		WorkspaceID: it.WorkspaceID,
		RoomID:      it.RoomID,
		Date:        parseTime(it.Date),
		AmountCents: it.AmountCents,
		Note:        it.Note,
	}
}
