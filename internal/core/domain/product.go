package domain

// Product is a catalog entry. Price is whole yen; there are no fractional
// subunits.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// DefaultProducts seeds the catalog on first run.
func DefaultProducts() []Product {
	return []Product{
		{ID: "p-yakisoba", Name: "焼きそば", Price: 500},
		{ID: "p-ramune", Name: "ラムネ", Price: 200},
		{ID: "p-choco", Name: "チョコバナナ", Price: 400},
		{ID: "p-juice", Name: "ジュース", Price: 250},
	}
}
