package domain

// Service is an item from the salon's price list. Price is a non-negative
// amount in the salon's single currency.
type Service struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
