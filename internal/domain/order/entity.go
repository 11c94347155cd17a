package order

// Customer identifies who placed an order. All fields are opaque
// strings; only presence is checked.
type Customer struct {
	StudentID string `json:"id"`
	Name      string `json:"name"`
	Institute string `json:"institute"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Room      string `json:"room"`
}

// OrderItem is one card in an order. Customer fields are denormalized
// into every item; the upstream data model has always worked that way
// and the stored file format keeps it for compatibility.
type OrderItem struct {
	ItemID     int64  `json:"item_id"`
	TemplateID string `json:"template_id"`
	StudentID  string `json:"student_id"`
	Name       string `json:"name"`
	Institute  string `json:"institute"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Room       string `json:"room"`
}

// Order is a persisted record of a finalized purchase. IDs are positive
// and strictly increasing in submission order. An order may legally
// contain zero items.
type Order struct {
	ID       int64       `json:"order_id"`
	Customer Customer    `json:"customer"`
	Items    []OrderItem `json:"items"`
}

// New builds an Order after validating the submission data.
func New(id int64, customer Customer, items []OrderItem) (*Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}
	if err := ValidateSubmission(customer, items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []OrderItem{}
	}
	return &Order{
		ID:       id,
		Customer: customer,
		Items:    items,
	}, nil
}

// ValidateSubmission checks required-field presence on an incoming
// submission before any store access. No semantic validation is done.
func ValidateSubmission(customer Customer, items []OrderItem) error {
	if customer.StudentID == "" || customer.Name == "" || customer.Institute == "" ||
		customer.Phone == "" || customer.Email == "" || customer.Room == "" {
		return ErrMissingField
	}
	for _, item := range items {
		if item.TemplateID == "" || item.StudentID == "" || item.Name == "" ||
			item.Institute == "" || item.Phone == "" || item.Email == "" || item.Room == "" {
			return ErrMissingField
		}
	}
	return nil
}
