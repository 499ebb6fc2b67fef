package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table understanding only the expressions the
// repositories issue.
type fakeDynamo struct {
	mu    sync.Mutex
	keys  []string
	items map[string]map[string]types.AttributeValue
	err   error
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo(keys ...string) *fakeDynamo {
	return &fakeDynamo{keys: keys, items: map[string]map[string]types.AttributeValue{}}
}

func attrS(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func attrN(av types.AttributeValue) int64 {
	if n, ok := av.(*types.AttributeValueMemberN); ok {
		v, _ := strconv.ParseInt(n.Value, 10, 64)
		return v
	}
	return 0
}

func (f *fakeDynamo) keyOf(item map[string]types.AttributeValue) string {
	k := ""
	for _, name := range f.keys {
		k += attrS(item[name]) + "|"
	}
	return k
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k := f.keyOf(in.Item)
	if _, exists := f.items[k]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[f.keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[f.keyOf(in.Key)]
	if !ok || attrS(item["status"]) != attrS(in.ExpressionAttributeValues[":active"]) {
		return nil, &types.ConditionalCheckFailedException{}
	}
	item["status"] = in.ExpressionAttributeValues[":expired"]
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	cid := attrS(in.ExpressionAttributeValues[":cid"])
	var out []map[string]types.AttributeValue
	for _, item := range f.items {
		if attrS(item["company_id"]) == cid {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return attrS(out[i]["recorded_at"]) < attrS(out[j]["recorded_at"])
	})
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	active := attrS(in.ExpressionAttributeValues[":active"])
	now := attrN(in.ExpressionAttributeValues[":now"])
	var out []map[string]types.AttributeValue
	for _, item := range f.items {
		if attrS(item["status"]) == active && attrN(item["expires_at_epoch"]) < now {
			out = append(out, map[string]types.AttributeValue{"id": item["id"]})
		}
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}
