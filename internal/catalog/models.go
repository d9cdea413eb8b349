package catalog

import "time"

type StockStatus string

const (
	StockInStock     StockStatus = "in_stock"
	StockLimited     StockStatus = "limited"
	StockMadeToOrder StockStatus = "made_to_order"
	StockOutOfStock  StockStatus = "out_of_stock"
)

// Product is read-only from the storefront's perspective; rows are
// seeded/managed outside this service.
type Product struct {
	ID          string      `json:"id"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PricePence  int         `json:"price_pence"`
	Category    string      `json:"category"`
	Material    string      `json:"material"`
	StockStatus StockStatus `json:"stock_status"`
	ImageURL    string      `json:"image_url"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Filter narrows a product listing. Zero values match everything;
// category "all" is treated the same as unset.
type Filter struct {
	Category    string
	Material    string
	StockStatus string
}

func (f Filter) Matches(p Product) bool {
	if c := normCategory(f.Category); c != "" && p.Category != c {
		return false
	}
	if f.StockStatus != "" && string(p.StockStatus) != f.StockStatus {
		return false
	}
	if f.Material != "" && !containsFold(p.Material, f.Material) {
		return false
	}
	return true
}
