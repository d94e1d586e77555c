package events

import (
	"time"

	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/order"
)

// OrderCreated is the wire contract consumed by downstream services
// (fulfilment, mail). Item snapshots mirror the order's embedded items.
type OrderCreated struct {
	EventType  string             `json:"eventType"`
	OrderID    string             `json:"orderId"`
	UserID     string             `json:"userId"`
	Items      []OrderCreatedItem `json:"items"`
	TotalPrice float64            `json:"totalPrice"`
	Timestamp  time.Time          `json:"timestamp"`
}

type OrderCreatedItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

func newOrderCreated(o *order.Order) OrderCreated {
	ev := OrderCreated{
		EventType:  "OrderCreated",
		OrderID:    o.ID.Hex(),
		UserID:     o.UserID.Hex(),
		TotalPrice: o.TotalPrice,
		Timestamp:  o.CreatedAt,
	}
	for _, it := range o.Items {
		ev.Items = append(ev.Items, OrderCreatedItem{
			ProductID: it.ProductID.Hex(),
			Name:      it.Name,
			Qty:       it.Qty,
			Price:     it.Price,
		})
	}
	return ev
}
