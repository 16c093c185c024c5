package repository

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoDB keeps items keyed by their "id" attribute and understands the
// few expressions the repositories send.
type fakeDynamoDB struct {
	items map[string]map[string]types.AttributeValue
	err   error

	tables []string
}

func newFakeDynamoDB() *fakeDynamoDB {
	return &fakeDynamoDB{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(key map[string]types.AttributeValue) string {
	if s, ok := key["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func copyItem(in map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeDynamoDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.tables = append(f.tables, aws.ToString(in.TableName))
	if f.err != nil {
		return nil, f.err
	}
	id := keyOf(in.Item)
	if existing, exists := f.items[id]; exists && in.ConditionExpression != nil {
		// Only "... OR #applied = :false" lets an existing item be replaced.
		applied, ok := existing["applied"].(*types.AttributeValueMemberBOOL)
		if !strings.Contains(*in.ConditionExpression, "#applied") || !ok || applied.Value {
			return nil, conditionFailed()
		}
	}
	f.items[id] = copyItem(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.tables = append(f.tables, aws.ToString(in.TableName))
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[keyOf(in.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *fakeDynamoDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.tables = append(f.tables, aws.ToString(in.TableName))
	if f.err != nil {
		return nil, f.err
	}
	want := in.ExpressionAttributeValues[":cid"].(*types.AttributeValueMemberS).Value
	out := &dynamodb.QueryOutput{}
	for _, item := range f.items {
		if cid, ok := item["cart_id"].(*types.AttributeValueMemberS); ok && cid.Value == want {
			out.Items = append(out.Items, copyItem(item))
		}
	}
	return out, nil
}

func (f *fakeDynamoDB) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.tables = append(f.tables, aws.ToString(in.TableName))
	if f.err != nil {
		return nil, f.err
	}
	id := keyOf(in.Key)
	item, ok := f.items[id]
	if !ok {
		return nil, conditionFailed()
	}
	item = copyItem(item)
	for placeholder, attr := range in.ExpressionAttributeNames {
		if v, ok := in.ExpressionAttributeValues[":"+placeholder[1:]]; ok {
			item[attr] = v
		}
	}
	f.items[id] = item
	return &dynamodb.UpdateItemOutput{Attributes: copyItem(item)}, nil
}
