package domain

import "time"

// Order is the aggregate owned by the order API. UserID references a user
// in the peer service; there is no foreign key backing it; validity is
// checked with a synchronous lookup against the user API at write time.
type Order struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	ItemDescription string    `json:"item_description"`
	ItemQuantity    int64     `json:"item_quantity"`
	ItemPrice       float64   `json:"item_price"`
	TotalValue      float64   `json:"total_value"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ComputeTotal recalculates TotalValue from quantity and price. Called on
// every write so a caller-supplied total can never leak into the store.
func (o *Order) ComputeTotal() {
	o.TotalValue = float64(o.ItemQuantity) * o.ItemPrice
}
