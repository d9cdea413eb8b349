package catalog

// Seed returns the built-in product list, used as the catalog when no
// database is configured and as seed data for a fresh one.
func Seed() []Product {
	return []Product{
		{ID: "1", Slug: "lapis-housing-mark-iv", Name: "Lapis Housing Mark IV", Description: "Deep blue Lapis Lazuli housing with natural pyrite inclusions.", PricePence: 45000, Category: "housing", StockStatus: StockInStock, Material: "Lapis Lazuli", ImageURL: "/assets/casing-lapis.jpg"},
		{ID: "2", Slug: "obsidian-shell", Name: "Obsidian Shell", Description: "Volcanic glass finish. Fingerprint magnet, but worth it.", PricePence: 55000, Category: "housing", StockStatus: StockInStock, Material: "Obsidian", ImageURL: "/assets/casing-obsidian.jpg"},
		{ID: "3", Slug: "palladium-core", Name: "Palladium Core", Description: "Rare metal housing. Cold to the touch, heavy in the hand.", PricePence: 120000, Category: "housing", StockStatus: StockLimited, Material: "Palladium", ImageURL: "/assets/casing-palladium.jpg"},
		{ID: "4", Slug: "weird-orange-housing", Name: "Weird Orange Edition", Description: "High-visibility ceramic coating. Impossible to lose.", PricePence: 45000, Category: "housing", StockStatus: StockInStock, Material: "Ceramic", ImageURL: "/assets/casing-orange.jpg"},
		{ID: "5", Slug: "weirdphone-full-kit", Name: "The WeirdPhone: Full Kit", Description: "The complete experience. Housing, internals, and concierge membership.", PricePence: 350000, Category: "build", StockStatus: StockMadeToOrder, Material: "Mixed", ImageURL: "/assets/full-kit.jpg"},
		{ID: "6", Slug: "camera-module-ring", Name: "Camera Module Ring", Description: "Reinforced titanium ring for the camera array.", PricePence: 15000, Category: "hardware", StockStatus: StockInStock, Material: "Titanium", ImageURL: "/assets/detail-camera.jpg"},
		{ID: "7", Slug: "side-rail-system", Name: "Side Rail System", Description: "Surgical grade steel rails for structural integrity.", PricePence: 25000, Category: "hardware", StockStatus: StockInStock, Material: "Steel", ImageURL: "/assets/detail-side.jpg"},
		{ID: "8", Slug: "concierge-gift-box", Name: "M.Concierge Gift Box", Description: "Premium unboxing experience for gifts.", PricePence: 8500, Category: "accessory", StockStatus: StockInStock, Material: "Card / Velvet", ImageURL: "/assets/accessory-box.jpg"},
		{ID: "9", Slug: "service-kit", Name: "Service Kit", Description: "Tools and cloths to keep your WeirdPhone pristine.", PricePence: 4500, Category: "accessory", StockStatus: StockInStock, Material: "Synthetic", ImageURL: "/assets/product-3.jpg"},
		{ID: "10", Slug: "prototype-01", Name: "Prototype 01", Description: "Early development unit. Determining function...", PricePence: 999900, Category: "archive", StockStatus: StockOutOfStock, Material: "Unknown", ImageURL: "/assets/product-1.jpg"},
	}
}
