package dto

// RelatedProduct identifies a product that references a piece, returned in
// the delete-conflict payload.
type RelatedProduct struct {
	ProductID   int    `db:"product_id" json:"product_id"`
	ProductName string `db:"product_name" json:"product_name"`
	Quantity    int    `db:"quantity" json:"quantity"`
}
