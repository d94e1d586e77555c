package product

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	// List returns the whole catalog.
	List(ctx context.Context) ([]Product, error)
	// GetByID returns the product or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Product, error)
}

type repo struct {
	products *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repo{products: db.Collection("products")}
}

func (r *repo) List(ctx context.Context) ([]Product, error) {
	cur, err := r.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	products := []Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *repo) GetByID(ctx context.Context, id string) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var p Product
	err = r.products.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}
