package notification

import (
	"fmt"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/order"
)

const (
	recipientCustomer = "customer"
	recipientAdmin    = "admin"
)

type message struct {
	recipient string // customer or admin, for logs and metrics
	to        string
	subject   string
	body      string
}

// buildMessages produces the customer confirmation and the admin
// notification for one checkout. A message with no destination address
// is omitted.
func buildMessages(o *order.Order, adminEmail, fromName string) []message {
	msgs := make([]message, 0, 2)

	if o.Customer.Email != "" {
		msgs = append(msgs, message{
			recipient: recipientCustomer,
			to:        o.Customer.Email,
			subject:   fmt.Sprintf("Your RFID business card order #%d", o.ID),
			body: fmt.Sprintf(
				"Hello %s,\n\n"+
					"Thank you for ordering your RFID-enabled business card.\n"+
					"Your order ID is %d. We will process your request and notify you once it is ready.\n\n"+
					"Regards,\n%s",
				o.Customer.Name, o.ID, fromName),
		})
	}

	if adminEmail != "" {
		msgs = append(msgs, message{
			recipient: recipientAdmin,
			to:        adminEmail,
			subject:   fmt.Sprintf("New RFID card order #%d", o.ID),
			body: fmt.Sprintf(
				"A new RFID business card order has been placed.\n"+
					"Order ID: %d\n"+
					"Customer: %s (%s)\n"+
					"Number of items: %d\n"+
					"Please log into the admin portal to view full details.",
				o.ID, o.Customer.Name, o.Customer.Email, len(o.Items)),
		})
	}

	return msgs
}
