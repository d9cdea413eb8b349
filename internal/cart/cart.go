package cart

// Line is one cart entry: a product reference plus a snapshot of name,
// price and image taken when the item was added, an optional custom
// build configuration, and a quantity (always >= 1).
type Line struct {
	ProductID  string         `json:"product_id"`
	Name       string         `json:"name"`
	PricePence int            `json:"price_pence"`
	ImageURL   string         `json:"image_url,omitempty"`
	Config     map[string]any `json:"config,omitempty"`
	Quantity   int            `json:"quantity"`
}

type Cart struct {
	Lines []Line `json:"lines"`
}

// Add merges the line into an existing one when the product id and
// custom configuration match, otherwise appends it. Non-positive
// quantities are clamped to 1.
func (c *Cart) Add(l Line) {
	if l.Quantity < 1 {
		l.Quantity = 1
	}
	key := lineKey(l.ProductID, l.Config)
	for i := range c.Lines {
		if lineKey(c.Lines[i].ProductID, c.Lines[i].Config) == key {
			c.Lines[i].Quantity += l.Quantity
			return
		}
	}
	c.Lines = append(c.Lines, l)
}

// Remove deletes the line at pos; out-of-range positions are a no-op.
func (c *Cart) Remove(pos int) {
	if pos < 0 || pos >= len(c.Lines) {
		return
	}
	c.Lines = append(c.Lines[:pos], c.Lines[pos+1:]...)
}

// UpdateQuantity sets the quantity at pos, clamped to >= 1.
// Out-of-range positions are a no-op.
func (c *Cart) UpdateQuantity(pos, qty int) {
	if pos < 0 || pos >= len(c.Lines) {
		return
	}
	if qty < 1 {
		qty = 1
	}
	c.Lines[pos].Quantity = qty
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c Cart) TotalPrice() int {
	total := 0
	for _, l := range c.Lines {
		total += l.PricePence * l.Quantity
	}
	return total
}

func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}
