package order

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Publisher emits an event after an order has been persisted. Implemented
// by the events package; nil disables publishing.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, o *Order) error
}

// CreateInput is the caller-supplied part of a new order. The owner comes
// from the authenticated identity, never from the body.
type CreateInput struct {
	Items           []Item
	ShippingAddress *ShippingAddress
	PaymentMethod   string
	TaxPrice        float64
	ShippingPrice   float64
	TotalPrice      float64
}

// Service implements order placement and retrieval on top of the
// Repository. Ownership of getMyOrders is scoped by the caller identity;
// single-order reads are not cross-checked against the caller, matching
// the upstream behavior this service replaces.
type Service struct {
	repo   Repository
	events Publisher
	log    *logrus.Logger
}

func NewService(repo Repository, events Publisher, log *logrus.Logger) *Service {
	return &Service{repo: repo, events: events, log: log}
}

// Create validates the input, persists the order owned by callerID with
// isPaid and isDelivered false, and returns the stored document including
// its assigned id. Validation failures are *ValidationError and nothing
// is persisted.
func (s *Service) Create(ctx context.Context, callerID string, in CreateInput) (*Order, error) {
	owner, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, &ValidationError{Reasons: []error{ErrOwnerRequired}}
	}

	o := &Order{
		UserID:          owner,
		Items:           in.Items,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		TaxPrice:        in.TaxPrice,
		ShippingPrice:   in.ShippingPrice,
		TotalPrice:      in.TotalPrice,
		IsPaid:          false,
		IsDelivered:     false,
	}

	if reasons := o.validateInvariants(); len(reasons) > 0 {
		return nil, &ValidationError{Reasons: reasons}
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// Publishing is best effort: the order is already durable and there is
	// no compensating action, so a broker hiccup must not fail the request.
	if s.events != nil {
		if err := s.events.PublishOrderCreated(ctx, o); err != nil {
			s.log.WithError(err).WithField("order_id", o.ID.Hex()).
				Warn("failed to publish OrderCreated")
		}
	}

	return o, nil
}

// Get returns the order with its owner expanded, or ErrNotFound.
func (s *Service) Get(ctx context.Context, orderID string) (*WithOwner, error) {
	return s.repo.GetByIDWithOwner(ctx, orderID)
}

// ListMine returns the caller's orders in creation order.
func (s *Service) ListMine(ctx context.Context, callerID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, callerID)
}
