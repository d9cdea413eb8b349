package dolly

// BasePricePence is the starting price of every Dolly build before any
// selection is made.
const BasePricePence = 2000

type Option struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PricePence  int    `json:"price_pence"`
}

var Modes = []Option{
	{ID: "space", Name: "Space Grade", Description: "Certified for zero-g environments. Ultra-durable.", PricePence: 1000},
	{ID: "relic", Name: "Relic Mode", Description: "Pre-aged, battle-scarred aesthetic. Unique patina.", PricePence: 1200},
	{ID: "play", Name: "Play Mode", Description: "High-contrast, vibrant components for the bold.", PricePence: 900},
}

var Materials = []Option{
	{ID: "titanium", Name: "Titanium", PricePence: 500},
	{ID: "lapis", Name: "Lapis Lazuli", PricePence: 800},
	{ID: "obsidian", Name: "Obsidian", PricePence: 600},
	{ID: "ceramic", Name: "Ceramic", PricePence: 400},
}

var Finishes = []Option{
	{ID: "matte", Name: "Matte", PricePence: 0},
	{ID: "gloss", Name: "High Gloss", PricePence: 100},
	{ID: "brushed", Name: "Brushed", PricePence: 150},
}

var Addons = []Option{
	{ID: "engraving", Name: "Laser Engraving", PricePence: 50},
	{ID: "concierge", Name: "M.Concierge access (1 Year)", PricePence: 500},
	{ID: "care", Name: "WeirdCare+", PricePence: 200},
}

func findOption(opts []Option, id string) (Option, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
