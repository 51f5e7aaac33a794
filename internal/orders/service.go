package orders

import (
	"context"

	"go.uber.org/zap"

	"github.com/chitsa/order-service/internal/apperrors"
	"github.com/chitsa/order-service/internal/logger"
	"github.com/chitsa/order-service/internal/metrics"
)

// Service sequences validation, mapping and persistence for orders, and
// enforces the ownership rule on delete.
type Service struct {
	store   *Store
	mapper  *Mapper
	emitter *metrics.Emitter
}

func NewService(store *Store, mapper *Mapper, emitter *metrics.Emitter) *Service {
	return &Service{
		store:   store,
		mapper:  mapper,
		emitter: emitter,
	}
}

// Create validates the request, maps it to an order document and persists it
// in a single write. Nothing is persisted when validation fails.
func (s *Service) Create(ctx context.Context, req *OrderRequest, customerID string) error {
	if err := ValidateOrderRequest(req, customerID); err != nil {
		return err
	}

	order := s.mapper.ToOrder(req, customerID)
	if err := s.store.Save(ctx, order); err != nil {
		logger.L().Error("save order failed", zap.String("order_id", order.OrderID), zap.Error(err))
		return apperrors.Wrap(apperrors.KindUpstream, "could not persist order", err)
	}

	s.emitter.OrderCreated(ctx)
	return nil
}

// ListByCustomer returns response DTOs for every order the customer has
// placed, in store order. A customer with zero orders is reported as not
// found, matching the historical behavior of this API.
func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]OrderResponse, error) {
	found, err := s.store.FindByCustomerID(ctx, customerID)
	if err != nil {
		logger.L().Error("find orders by customer failed", zap.String("customer_id", customerID), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.KindUpstream, "could not load orders", err)
	}
	if len(found) == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "orders not found")
	}

	responses := make([]OrderResponse, 0, len(found))
	for i := range found {
		responses = append(responses, s.mapper.ToOrderResponse(&found[i]))
	}
	return responses, nil
}

// GetItems returns the line items of one order, preserving item order.
func (s *Service) GetItems(ctx context.Context, orderID string) ([]OrderItemDTO, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	dtos := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		dtos = append(dtos, s.mapper.ToOrderItemDTO(item))
	}
	return dtos, nil
}

// Delete removes an order after checking that the requesting customer owns
// it. A mismatch is Unauthorized, not NotFound: the order's existence is not
// hidden from a non-owner, only the deletion is refused.
func (s *Service) Delete(ctx context.Context, orderID, customerID string) error {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.CustomerID != customerID {
		return apperrors.New(apperrors.KindUnauthorized, "you are not authorized to delete this order")
	}
	if err := s.store.Delete(ctx, orderID); err != nil {
		logger.L().Error("delete order failed", zap.String("order_id", orderID), zap.Error(err))
		return apperrors.Wrap(apperrors.KindUpstream, "could not delete order", err)
	}

	s.emitter.OrderDeleted(ctx)
	return nil
}

// GetByID returns the response DTO for a single order.
func (s *Service) GetByID(ctx context.Context, orderID string) (*OrderResponse, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := s.mapper.ToOrderResponse(order)
	return &resp, nil
}

func (s *Service) getOrder(ctx context.Context, orderID string) (*Order, error) {
	order, err := s.store.GetByID(ctx, orderID)
	if err != nil {
		logger.L().Error("get order failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.KindUpstream, "could not load order", err)
	}
	if order == nil {
		return nil, apperrors.Newf(apperrors.KindNotFound, "order %s not found", orderID)
	}
	return order, nil
}
