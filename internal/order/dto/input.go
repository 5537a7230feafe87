package dto

// OrderItem is one requested (product, quantity) pair.
type OrderItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// CalculateOrderInput is the calculation request body.
type CalculateOrderInput struct {
	GroupBy   string      `json:"group_by"`   // size | product | cross_section, default size
	Order     string      `json:"order"`      // asc | desc
	SortBy    []string    `json:"sort_by"`    // composite sort key, e.g. ["x","y","z"]
	PlankSize int         `json:"plank_size"` // required for cross_section
	Products  []OrderItem `json:"products"`
}
