package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validOrder() *Order {
	return &Order{
		UserID: primitive.NewObjectID(),
		Items: []Item{
			{Name: "Widget", Qty: 2, Image: "/uploads/widget.png", Price: 10, ProductID: primitive.NewObjectID()},
		},
		TaxPrice:      2,
		ShippingPrice: 5,
		TotalPrice:    27,
	}
}

func TestValidateInvariants_ValidOrder(t *testing.T) {
	assert.Empty(t, validOrder().validateInvariants())
}

func TestValidateInvariants_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *Order)
		want   error
	}{
		{"missing owner", func(o *Order) { o.UserID = primitive.NilObjectID }, ErrOwnerRequired},
		{"no items", func(o *Order) { o.Items = nil }, ErrItemsRequired},
		{"empty items", func(o *Order) { o.Items = []Item{} }, ErrItemsRequired},
		{"item without name", func(o *Order) { o.Items[0].Name = "" }, ErrItemNameRequired},
		{"zero qty", func(o *Order) { o.Items[0].Qty = 0 }, ErrItemQtyInvalid},
		{"negative qty", func(o *Order) { o.Items[0].Qty = -1 }, ErrItemQtyInvalid},
		{"item without image", func(o *Order) { o.Items[0].Image = "" }, ErrItemImageRequired},
		{"negative item price", func(o *Order) { o.Items[0].Price = -0.01 }, ErrItemPriceInvalid},
		{"item without product ref", func(o *Order) { o.Items[0].ProductID = primitive.NilObjectID }, ErrItemProductRequired},
		{"negative tax", func(o *Order) { o.TaxPrice = -1 }, ErrPriceNegative},
		{"negative shipping", func(o *Order) { o.ShippingPrice = -1 }, ErrPriceNegative},
		{"negative total", func(o *Order) { o.TotalPrice = -1 }, ErrPriceNegative},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := validOrder()
			tc.mutate(o)

			errs := o.validateInvariants()
			require.NotEmpty(t, errs)
			assert.Contains(t, errs, tc.want)
		})
	}
}

func TestValidateInvariants_CollectsAllViolations(t *testing.T) {
	o := validOrder()
	o.UserID = primitive.NilObjectID
	o.Items[0].Qty = 0
	o.TotalPrice = -1

	errs := o.validateInvariants()
	assert.Contains(t, errs, ErrOwnerRequired)
	assert.Contains(t, errs, ErrItemQtyInvalid)
	assert.Contains(t, errs, ErrPriceNegative)
}

func TestValidationError_Is(t *testing.T) {
	err := &ValidationError{Reasons: []error{ErrItemsRequired, ErrPriceNegative}}

	assert.ErrorIs(t, err, ErrItemsRequired)
	assert.ErrorIs(t, err, ErrPriceNegative)
	assert.NotErrorIs(t, err, ErrOwnerRequired)
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(ErrNotFound))
}
