package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinItemID is the floor for generated item identifiers.
const MinItemID = 100

// itemIDPrefix tags every generated identifier.
const itemIDPrefix = "ITM"

var (
	ErrEmptyName        = errors.New("item name is required")
	ErrNegativePrice    = errors.New("unit price must be greater or equal to zero")
	ErrNegativeQuantity = errors.New("quantity must be greater or equal to zero")
	ErrStockDepleted    = errors.New("stock already at zero")
	ErrInvalidItemID    = errors.New("item id must look like ITM<number>")
)

// Item represents one inventory record owned by the registry.
type Item struct {
	ID              string
	Name            string
	UnitPrice       float64
	Quantity        int
	InitialQuantity int
}

// NewItem validates the invariants and builds a new Item.
// InitialQuantity starts equal to Quantity: it is the cumulative
// investment basis and only grows through Restock.
func NewItem(id, name string, unitPrice float64, quantity int) (*Item, error) {
	item := &Item{ID: id, Quantity: quantity, InitialQuantity: quantity}
	if err := item.Rename(name); err != nil {
		return nil, err
	}
	if err := item.Reprice(unitPrice); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	return item, nil
}

// RestoreItem rebuilds an item from a persisted record, keeping the
// stored initial quantity instead of deriving it from the current one.
func RestoreItem(id, name string, unitPrice float64, quantity, initialQuantity int) (*Item, error) {
	item, err := NewItem(id, name, unitPrice, quantity)
	if err != nil {
		return nil, err
	}
	if initialQuantity < 0 {
		return nil, ErrNegativeQuantity
	}
	item.InitialQuantity = initialQuantity
	return item, nil
}

// Rename mutates the item name ensuring it is non-empty.
func (i *Item) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	i.Name = name
	return nil
}

// Reprice replaces the unit price.
func (i *Item) Reprice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	i.UnitPrice = price
	return nil
}

// Restock adds one unit on hand and grows the investment basis in lockstep.
func (i *Item) Restock() {
	i.Quantity++
	i.InitialQuantity++
}

// Withdraw removes one unit on hand. The investment basis is untouched.
// Withdrawing at zero fails without changing state.
func (i *Item) Withdraw() error {
	if i.Quantity == 0 {
		return ErrStockDepleted
	}
	i.Quantity--
	return nil
}

// CurrentValue is the on-hand valuation: unit price times quantity.
func (i *Item) CurrentValue() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// InitialInvestment is the cumulative purchase basis: unit price times
// initial quantity.
func (i *Item) InitialInvestment() float64 {
	return i.UnitPrice * float64(i.InitialQuantity)
}

// FormatItemID renders a sequential number as an item identifier.
func FormatItemID(n int) string {
	return fmt.Sprintf("%s%d", itemIDPrefix, n)
}

// ParseItemID extracts the numeric suffix of an item identifier.
func ParseItemID(id string) (int, error) {
	suffix, ok := strings.CutPrefix(id, itemIDPrefix)
	if !ok {
		return 0, ErrInvalidItemID
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidItemID, id)
	}
	return n, nil
}
