package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	// Create persists a new order as a single document, assigning its id
	// and timestamps.
	Create(ctx context.Context, o *Order) error
	// GetByID returns the order or ErrNotFound.
	GetByID(ctx context.Context, orderID string) (*Order, error)
	// GetByIDWithOwner returns the order with the owning user expanded to
	// a name/email projection, or ErrNotFound.
	GetByIDWithOwner(ctx context.Context, orderID string) (*WithOwner, error)
	// ListByUser returns the user's orders in creation order, newest last.
	// A user with no orders gets an empty slice, not an error.
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}

type repo struct {
	orders *mongo.Collection
	users  *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repo{
		orders: db.Collection("orders"),
		users:  db.Collection("users"),
	}
}

func (r *repo) Create(ctx context.Context, o *Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	o.CreatedAt = now
	o.UpdatedAt = now

	if _, err := r.orders.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *repo) GetByID(ctx context.Context, orderID string) (*Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		// A malformed id can never match a stored document.
		return nil, ErrNotFound
	}

	var o Order
	err = r.orders.FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &o, nil
}

func (r *repo) GetByIDWithOwner(ctx context.Context, orderID string) (*WithOwner, error) {
	o, err := r.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	out := WithOwner{Order: *o}

	projection := options.FindOne().SetProjection(bson.M{"name": 1, "email": 1})
	err = r.users.FindOne(ctx, bson.M{"_id": o.UserID}, projection).Decode(&out.Owner)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find order owner: %w", err)
	}
	// A dangling owner reference leaves the projection empty rather than
	// failing the read.

	return &out, nil
}

func (r *repo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []Order{}, nil
	}

	// _id breaks ties between orders created in the same millisecond.
	findOpts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: 1},
		{Key: "_id", Value: 1},
	})

	cur, err := r.orders.Find(ctx, bson.M{"user": uid}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	orders := []Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}
