package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultItemPricesTableName = "item_prices"
	itemPricesItemIDIndex      = "item_id-index"
)

type itemPriceItem struct {
	ID              string `dynamodbav:"id"`
	ItemID          string `dynamodbav:"item_id"`
	EstUnitCents    int64  `dynamodbav:"est_unit_cents"`
	ActualUnitCents *int64 `dynamodbav:"actual_unit_cents,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// ItemPriceDynamoRepository persists item price history in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: item_id-index (PK: item_id)

type ItemPriceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IItemPriceRepository = (*ItemPriceDynamoRepository)(nil)

func NewItemPriceDynamoRepository(ddb *dynamodb.Client) *ItemPriceDynamoRepository {
	return &ItemPriceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ITEM_PRICES_TABLE", defaultItemPricesTableName),
	}
}

func (r *ItemPriceDynamoRepository) Create(ctx context.Context, p entities.ItemPrice) (entities.ItemPrice, error) {
	av, err := attributevalue.MarshalMap(toItemPriceItem(p))
	if err != nil {
		return entities.ItemPrice{}, err
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
		return entities.ItemPrice{}, err
	}
	return p, nil
}

// ListByItemID returns price records oldest first, so the last element is
// the item's current price.
func (r *ItemPriceDynamoRepository) ListByItemID(ctx context.Context, itemID string) ([]entities.ItemPrice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(itemPricesItemIDIndex),
		KeyConditionExpression: aws.String("item_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: itemID},
		},
	})
	if err != nil {
		return nil, err
	}

	prices := make([]entities.ItemPrice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it itemPriceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		prices = append(prices, fromItemPriceItem(it))
	}
	sort.SliceStable(prices, func(i, j int) bool {
		return prices[i].CreatedAt.Before(prices[j].CreatedAt)
	})
	return prices, nil
}

func (r *ItemPriceDynamoRepository) SetActualUnitCents(ctx context.Context, id string, actualUnitCents int64) (entities.ItemPrice, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #actual = :actual"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":actual": &types.AttributeValueMemberN{Value: strconv.FormatInt(actualUnitCents, 10)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#actual": "actual_unit_cents",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ItemPrice{}, nil
		}
		return entities.ItemPrice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ItemPrice{}, nil
	}

	var it itemPriceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ItemPrice{}, err
	}
	return fromItemPriceItem(it), nil
}

func (r *ItemPriceDynamoRepository) DeleteByItemID(ctx context.Context, itemID string) error {
	prices, err := r.ListByItemID(ctx, itemID)
	if err != nil {
		return err
	}
	for _, p := range prices {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: p.ID},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toItemPriceItem(p entities.ItemPrice) itemPriceItem {
	return itemPriceItem{
		ID:              p.ID,
		ItemID:          p.ItemID,
		EstUnitCents:    p.EstUnitCents,
		ActualUnitCents: p.ActualUnitCents,
		CreatedAt:       formatTime(p.CreatedAt),
	}
}

func fromItemPriceItem(it itemPriceItem) entities.ItemPrice {
	return entities.ItemPrice{
		ID:              it.ID,
		ItemID:          it.ItemID,
		EstUnitCents:    it.EstUnitCents,
		ActualUnitCents: it.ActualUnitCents,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
