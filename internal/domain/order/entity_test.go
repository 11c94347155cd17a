package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() Customer {
	return Customer{
		StudentID: "S1",
		Name:      "Ann",
		Institute: "X",
		Phone:     "555",
		Email:     "ann@x.edu",
		Room:      "12",
	}
}

func validItem() OrderItem {
	return OrderItem{
		ItemID:     1,
		TemplateID: "classic-blue",
		StudentID:  "S1",
		Name:       "Ann",
		Institute:  "X",
		Phone:      "555",
		Email:      "ann@x.edu",
		Room:       "12",
	}
}

func TestNew_Valid(t *testing.T) {
	o, err := New(1, validCustomer(), []OrderItem{validItem()})

	require.NoError(t, err)
	assert.Equal(t, int64(1), o.ID)
	assert.Len(t, o.Items, 1)
}

func TestNew_EmptyItemsIsLegal(t *testing.T) {
	o, err := New(1, validCustomer(), nil)

	require.NoError(t, err)
	assert.NotNil(t, o.Items)
	assert.Empty(t, o.Items)
}

func TestNew_InvalidID(t *testing.T) {
	_, err := New(0, validCustomer(), nil)

	assert.ErrorIs(t, err, ErrInvalidOrderID)
}

func TestNew_MissingCustomerField(t *testing.T) {
	customer := validCustomer()
	customer.Email = ""

	_, err := New(1, customer, nil)

	assert.ErrorIs(t, err, ErrMissingField)
}

func TestValidateSubmission_MissingItemField(t *testing.T) {
	item := validItem()
	item.TemplateID = ""

	err := ValidateSubmission(validCustomer(), []OrderItem{item})

	assert.ErrorIs(t, err, ErrMissingField)
}
