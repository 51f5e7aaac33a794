package orders

import (
	"context"
	"errors"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// mockDynamo is a small in-memory stand-in for the orders table. It keeps
// insertion order so query results are deterministic.
type mockDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	order []string

	failPut    error
	failGet    error
	failQuery  error
	failDelete error
}

func newMockDynamo() *mockDynamo {
	return &mockDynamo{
		items: map[string]map[string]types.AttributeValue{},
	}
}

func (m *mockDynamo) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut != nil {
		return nil, m.failPut
	}
	key, ok := params.Item["order_id"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("put item missing order_id")
	}
	if _, exists := m.items[key.Value]; !exists {
		m.order = append(m.order, key.Value)
	}
	m.items[key.Value] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return nil, m.failGet
	}
	key, ok := params.Key["order_id"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("get item missing order_id key")
	}
	item, exists := m.items[key.Value]
	if !exists {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *mockDynamo) DeleteItem(ctx context.Context, params *dyn.DeleteItemInput, optFns ...func(*dyn.Options)) (*dyn.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDelete != nil {
		return nil, m.failDelete
	}
	key, ok := params.Key["order_id"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("delete item missing order_id key")
	}
	delete(m.items, key.Value)
	for i, id := range m.order {
		if id == key.Value {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return &dyn.DeleteItemOutput{}, nil
}

func (m *mockDynamo) Query(ctx context.Context, params *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failQuery != nil {
		return nil, m.failQuery
	}
	want, ok := params.ExpressionAttributeValues[":cid"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("query missing :cid value")
	}
	var out []map[string]types.AttributeValue
	for _, id := range m.order {
		item := m.items[id]
		if cid, ok := item["customer_id"].(*types.AttributeValueMemberS); ok && cid.Value == want.Value {
			out = append(out, item)
		}
	}
	return &dyn.QueryOutput{Items: out}, nil
}
