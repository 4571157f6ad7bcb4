package repository

import (
	"context"
	"errors"
	"sort"

	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFeeRulesTableName = "company_fee_rules"
	feeRulesCompanyIDIndex   = "company_id-index"
)

type feeTierItem struct {
	ThresholdCents int64 `dynamodbav:"threshold_cents"`
	FeeCents       int64 `dynamodbav:"fee_cents"`
}

type feeRuleItem struct {
	ID          string        `dynamodbav:"id"`
	CompanyID   string        `dynamodbav:"company_id"`
	Type        string        `dynamodbav:"type"`
	FlatCents   *int64        `dynamodbav:"flat_cents,omitempty"`
	PercentRate *float64      `dynamodbav:"percent_rate,omitempty"`
	Version     int           `dynamodbav:"version"`
	Active      bool          `dynamodbav:"active"`
	CreatedAt   string        `dynamodbav:"created_at"`
	Tiers       []feeTierItem `dynamodbav:"tiers,omitempty"`
}

// FeeRuleDynamoRepository persists fee rules in DynamoDB. Tiers are owned
// children of their rule and always read together with it, so they live as
// a list attribute on the rule row rather than in a table of their own.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)

type FeeRuleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFeeRuleRepository = (*FeeRuleDynamoRepository)(nil)

func NewFeeRuleDynamoRepository(ddb *dynamodb.Client) *FeeRuleDynamoRepository {
	return &FeeRuleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FEE_RULES_TABLE", defaultFeeRulesTableName),
	}
}

func (r *FeeRuleDynamoRepository) Create(ctx context.Context, rule entities.FeeRule) (entities.FeeRule, error) {
	av, err := attributevalue.MarshalMap(toFeeRuleItem(rule))
	if err != nil {
		return entities.FeeRule{}, err
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
		return entities.FeeRule{}, err
	}
	return rule, nil
}

func (r *FeeRuleDynamoRepository) GetByID(ctx context.Context, id string) (entities.FeeRule, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FeeRule{}, err
	}
	if len(out.Item) == 0 {
		return entities.FeeRule{}, nil
	}

	var it feeRuleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FeeRule{}, err
	}
	return fromFeeRuleItem(it), nil
}

// ListByCompanyID returns the company's rules, newest version first.
func (r *FeeRuleDynamoRepository) ListByCompanyID(ctx context.Context, companyID string) ([]entities.FeeRule, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(feeRulesCompanyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return nil, err
	}

	rules := make([]entities.FeeRule, 0, len(out.Items))
	for _, raw := range out.Items {
		var it feeRuleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		rules = append(rules, fromFeeRuleItem(it))
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Version > rules[j].Version
	})
	return rules, nil
}

func (r *FeeRuleDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.FeeRule, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #active = :active"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: active},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#active": "active",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FeeRule{}, nil
		}
		return entities.FeeRule{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FeeRule{}, nil
	}

	var it feeRuleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FeeRule{}, err
	}
	return fromFeeRuleItem(it), nil
}

func (r *FeeRuleDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *FeeRuleDynamoRepository) DeleteByCompanyID(ctx context.Context, companyID string) error {
	rules, err := r.ListByCompanyID(ctx, companyID)
	if err != nil {
		return err
	}
	for _, rule := range rules {
		if err := r.Delete(ctx, rule.ID); err != nil {
			return err
		}
	}
	return nil
}

func toFeeRuleItem(rule entities.FeeRule) feeRuleItem {
	tiers := make([]feeTierItem, 0, len(rule.Tiers))
	for _, t := range rule.Tiers {
		tiers = append(tiers, feeTierItem(t))
	}
	if len(tiers) == 0 {
		tiers = nil
	}
	return feeRuleItem{
		ID:          rule.ID,
		CompanyID:   rule.CompanyID,
		Type:        string(rule.Type),
		FlatCents:   rule.FlatCents,
		PercentRate: rule.PercentRate,
		Version:     rule.Version,
		Active:      rule.Active,
		CreatedAt:   formatTime(rule.CreatedAt),
		Tiers:       tiers,
	}
}

func fromFeeRuleItem(it feeRuleItem) entities.FeeRule {
	var tiers []entities.FeeTier
	for _, t := range it.Tiers {
		tiers = append(tiers, entities.FeeTier(t))
	}
	return entities.FeeRule{
		ID:          it.ID,
		CompanyID:   it.CompanyID,
		Type:        entities.FeeRuleType(it.Type),
		FlatCents:   it.FlatCents,
		PercentRate: it.PercentRate,
		Version:     it.Version,
		Active:      it.Active,
		CreatedAt:   parseTime(it.CreatedAt),
		Tiers:       tiers,
	}
}
