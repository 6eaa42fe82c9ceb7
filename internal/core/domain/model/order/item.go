package order

import (
	"fmt"

	"tawsil/internal/pkg/errs"
)

// Item is a single line of an order: a named article and a positive
// quantity. Items are immutable value objects fixed at order creation.
type Item struct {
	name     string
	quantity int
}

// NewItem creates an item, requiring a non-empty name and a quantity
// greater than zero.
func NewItem(name string, quantity int) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Item{name: name, quantity: quantity}, nil
}

// Name returns the article name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered amount.
func (i Item) Quantity() int {
	return i.quantity
}
