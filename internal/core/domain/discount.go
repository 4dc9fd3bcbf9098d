package domain

// Discount applies a whole-percent rate to the cart subtotal.
type Discount struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Rate  int    `json:"rate"` // percent, 0-100
}

// NoDiscount is the rate-0 fallback entry. A rate-0 discount must always
// exist in the collection and can never be deleted.
func NoDiscount() Discount {
	return Discount{ID: "discount-none", Label: "割引なし", Rate: 0}
}

// DefaultDiscounts seeds the discount list on first run.
func DefaultDiscounts() []Discount {
	return []Discount{
		NoDiscount(),
		{ID: "discount-student", Label: "学生割 (10%)", Rate: 10},
		{ID: "discount-happy", Label: "ハッピーアワー (20%)", Rate: 20},
	}
}
