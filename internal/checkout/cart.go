package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the in-memory cart backing one checkout session. Line totals are
// recomputed on every quantity change and the subtotal is derived on read,
// so neither can drift from the items.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart { return &Cart{} }

// Add appends a line, or bumps the quantity when the same part is already in
// the cart.
func (c *Cart) Add(manufacturer, partNumber string, quantity int, unitPrice decimal.Decimal) CartItem {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		it := &c.items[i]
		if it.Manufacturer == manufacturer && it.PartNumber == partNumber {
			it.Quantity += quantity
			it.LineTotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
			return *it
		}
	}
	item := CartItem{
		ID:           uuid.NewString(),
		Manufacturer: manufacturer,
		PartNumber:   partNumber,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		LineTotal:    unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
	c.items = append(c.items, item)
	return item
}

// SetQuantity updates a line's quantity and line total; a quantity of zero or
// less removes the line. Returns false when no line has that id.
func (c *Cart) SetQuantity(id string, quantity int) bool {
	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
		c.items[i].Quantity = quantity
		c.items[i].LineTotal = c.items[i].UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
		return true
	}
	return false
}

func (c *Cart) Items() []CartItem {
	return append([]CartItem(nil), c.items...)
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.LineTotal)
	}
	return sum
}

func (c *Cart) Clear() { c.items = nil }
