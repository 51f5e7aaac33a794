package orders

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/chitsa/order-service/internal/aws"
)

// Store encapsulates operations on the orders table.
type Store struct {
	client        aws.DynamoDBAPI
	tableName     string
	customerIndex string
}

// NewStore creates a new orders Store. customerIndex names the GSI whose
// hash key is customer_id.
func NewStore(client aws.DynamoDBAPI, tableName, customerIndex string) *Store {
	return &Store{
		client:        client,
		tableName:     tableName,
		customerIndex: customerIndex,
	}
}

// Save persists the order as a single document write.
func (s *Store) Save(ctx context.Context, order Order) error {
	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

// GetByID fetches an order by order_id. Returns (nil, nil) if not found.
func (s *Store) GetByID(ctx context.Context, orderID string) (*Order, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var o Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

// FindByCustomerID returns all orders for a customer in store order.
func (s *Store) FindByCustomerID(ctx context.Context, customerID string) ([]Order, error) {
	out, err := s.client.Query(ctx, &dyn.QueryInput{
		TableName:              &s.tableName,
		IndexName:              &s.customerIndex,
		KeyConditionExpression: awsString("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query by customer: %w", err)
	}

	found := make([]Order, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &found); err != nil {
		return nil, fmt.Errorf("unmarshal orders: %w", err)
	}
	return found, nil
}

// Delete removes the order document. Deleting an absent id is not an error
// at this layer; existence checks belong to the workflow.
func (s *Store) Delete(ctx context.Context, orderID string) error {
	_, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func awsString(s string) *string { return &s }
