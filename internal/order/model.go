package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item is a value snapshot of a product at the moment the order was
// placed. Later catalog changes never alter historical orders.
type Item struct {
	Name      string             `bson:"name" json:"name"`
	Qty       int                `bson:"qty" json:"qty"`
	Image     string             `bson:"image" json:"image"`
	Price     float64            `bson:"price" json:"price"`
	ProductID primitive.ObjectID `bson:"product" json:"product"`
}

// ShippingAddress is a best-effort capture; no field is validated beyond
// being a string.
type ShippingAddress struct {
	Address    string `bson:"address,omitempty" json:"address,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

// PaymentResult is filled in by a payment provider callback. No operation
// in this service writes it; it exists so stored documents round-trip.
type PaymentResult struct {
	ExternalID string `bson:"id,omitempty" json:"id,omitempty"`
	Status     string `bson:"status,omitempty" json:"status,omitempty"`
	UpdateTime string `bson:"update_time,omitempty" json:"update_time,omitempty"`
	PayerEmail string `bson:"email_address,omitempty" json:"email_address,omitempty"`
}

// Order is the persisted purchase document. Items are embedded so a
// create is a single atomic document write. UserID and Items are
// immutable after creation; the repository exposes no update.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user" json:"user"`
	Items           []Item             `bson:"orderItems" json:"orderItems"`
	ShippingAddress *ShippingAddress   `bson:"shippingAddress,omitempty" json:"shippingAddress,omitempty"`
	PaymentMethod   string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	PaymentResult   *PaymentResult     `bson:"paymentResult,omitempty" json:"paymentResult,omitempty"`
	TaxPrice        float64            `bson:"taxPrice" json:"taxPrice"`
	ShippingPrice   float64            `bson:"shippingPrice" json:"shippingPrice"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	IsPaid          bool               `bson:"isPaid" json:"isPaid"`
	PaidAt          *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	IsDelivered     bool               `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt     *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OwnerSummary is the minimal projection of the owning user, joined in by
// the repository when an order is read for display.
type OwnerSummary struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

// WithOwner is the read model for a single-order fetch: the order plus the
// expanded owner. Owner shadows the embedded UserID on the wire (same
// "user" key, shallower field wins), mirroring how the stored owner
// reference is replaced by the projection in the response.
type WithOwner struct {
	Order
	Owner OwnerSummary `json:"user"`
}

// validateInvariants collects every violated creation rule rather than
// stopping at the first, so a client can fix its request in one pass.
func (o *Order) validateInvariants() []error {
	var errs []error

	if o.UserID.IsZero() {
		errs = append(errs, ErrOwnerRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}
	for _, it := range o.Items {
		if it.Name == "" {
			errs = append(errs, ErrItemNameRequired)
		}
		if it.Qty <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if it.Image == "" {
			errs = append(errs, ErrItemImageRequired)
		}
		if it.Price < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
		if it.ProductID.IsZero() {
			errs = append(errs, ErrItemProductRequired)
		}
	}
	if o.TaxPrice < 0 || o.ShippingPrice < 0 || o.TotalPrice < 0 {
		errs = append(errs, ErrPriceNegative)
	}

	return errs
}
