package avro

import (
	"fmt"
	"time"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/order"
)

// OrderPlacedEvent is the decoded form of an order-placed event.
type OrderPlacedEvent struct {
	OrderID       int64
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	ItemCount     int
	PlacedAt      time.Time
}

// OrderPlacedNative maps an order onto the OrderPlaced schema's native
// representation.
func OrderPlacedNative(o *order.Order, placedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		"order_id":       o.ID,
		"customer_id":    o.Customer.StudentID,
		"customer_name":  o.Customer.Name,
		"customer_email": o.Customer.Email,
		"item_count":     int32(len(o.Items)),
		"placed_at_ms":   placedAt.UnixMilli(),
	}
}

// OrderPlacedFromNative reverses OrderPlacedNative for consumers.
func OrderPlacedFromNative(record map[string]interface{}) (OrderPlacedEvent, error) {
	evt := OrderPlacedEvent{}

	orderID, ok := record["order_id"].(int64)
	if !ok {
		return evt, fmt.Errorf("order_id missing or not a long")
	}
	itemCount, ok := record["item_count"].(int32)
	if !ok {
		return evt, fmt.Errorf("item_count missing or not an int")
	}
	placedAtMS, ok := record["placed_at_ms"].(int64)
	if !ok {
		return evt, fmt.Errorf("placed_at_ms missing or not a long")
	}

	evt.OrderID = orderID
	evt.CustomerID, _ = record["customer_id"].(string)
	evt.CustomerName, _ = record["customer_name"].(string)
	evt.CustomerEmail, _ = record["customer_email"].(string)
	evt.ItemCount = int(itemCount)
	evt.PlacedAt = time.UnixMilli(placedAtMS).UTC()
	return evt, nil
}
