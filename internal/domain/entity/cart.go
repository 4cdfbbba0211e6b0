package entity

// MaxLineQuantity caps the quantity of a single cart line.
const MaxLineQuantity = 1000

// CartLine is one product held in the cart. Quantity is always at least 1.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price × quantity for the line.
func (l CartLine) LineTotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Cart holds the visitor's selected products, at most one line per product ID.
// Totals are derived on every call and never cached.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add increments the line for p, inserting a new line with quantity 1 if absent.
// A line already at MaxLineQuantity is left unchanged.
func (c *Cart) Add(p Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.lines[i].Quantity = min(c.lines[i].Quantity+1, MaxLineQuantity)
		return
	}

	c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
}

// UpdateQuantity adds delta to the line's quantity, clamped to [0, MaxLineQuantity].
// A resulting quantity of 0 removes the line. Unknown IDs are ignored.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}

	delta = min(max(delta, -MaxLineQuantity), MaxLineQuantity)
	quantity := min(max(c.lines[i].Quantity+delta, 0), MaxLineQuantity)
	if quantity == 0 {
		c.removeAt(i)
		return
	}

	c.lines[i].Quantity = quantity
}

// Remove deletes the line for productID if present.
func (c *Cart) Remove(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.removeAt(i)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Subtotal returns the sum of price × quantity over all lines.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.LineTotal()
	}

	return total
}

// ItemCount returns the sum of quantities, used for the cart badge.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}

	return count
}

// Quantity returns the quantity held for productID, or 0.
func (c *Cart) Quantity(productID string) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i].Quantity
	}

	return 0
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)

	return lines
}

// Clone returns an independent copy of the cart.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return NewCart()
	}

	return &Cart{lines: c.Lines()}
}

func (c *Cart) indexOf(productID string) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}

	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i:i], c.lines[i+1:]...)
}
