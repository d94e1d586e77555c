package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/order"
)

// Pins the wire contract: downstream consumers depend on these exact keys.
func TestOrderCreatedContract(t *testing.T) {
	oid := primitive.NewObjectID()
	uid := primitive.NewObjectID()
	pid := primitive.NewObjectID()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	o := &order.Order{
		ID:         oid,
		UserID:     uid,
		TotalPrice: 27,
		CreatedAt:  createdAt,
		Items: []order.Item{
			{Name: "Widget", Qty: 2, Image: "/uploads/1.png", Price: 10, ProductID: pid},
		},
	}

	body, err := json.Marshal(newOrderCreated(o))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))

	assert.Equal(t, "OrderCreated", m["eventType"])
	assert.Equal(t, oid.Hex(), m["orderId"])
	assert.Equal(t, uid.Hex(), m["userId"])
	assert.Equal(t, 27.0, m["totalPrice"])
	assert.Equal(t, "2025-06-01T12:00:00Z", m["timestamp"])

	items, ok := m["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	item := items[0].(map[string]any)
	assert.Equal(t, pid.Hex(), item["productId"])
	assert.Equal(t, "Widget", item["name"])
	assert.Equal(t, 2.0, item["qty"])
	assert.Equal(t, 10.0, item["price"])
}
