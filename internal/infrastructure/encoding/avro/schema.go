package avro

// OrderPlacedSchema describes the event emitted for every successfully
// persisted checkout. Consumers only need the order identity, who
// placed it, and how many cards it contains; the full order stays in
// the order store.
const OrderPlacedSchema = `{
	"type": "record",
	"name": "OrderPlaced",
	"namespace": "cardshop.events",
	"fields": [
		{"name": "order_id", "type": "long"},
		{"name": "customer_id", "type": "string"},
		{"name": "customer_name", "type": "string"},
		{"name": "customer_email", "type": "string"},
		{"name": "item_count", "type": "int"},
		{"name": "placed_at_ms", "type": "long"}
	]
}`
