package dto

// Detail traces one BOM contribution inside a group back to the product
// and piece it came from.
type Detail struct {
	Product         string `json:"product"`
	Piece           string `json:"piece"`
	Quantity        int    `json:"quantity"`         // quantity per product unit
	ProductQuantity int    `json:"product_quantity"` // ordered quantity of the product
	TotalQuantity   int    `json:"total_quantity"`   // quantity × product_quantity
}

// SizeGroup aggregates pieces sharing an exact dimension triple.
type SizeGroup struct {
	X             int      `json:"x"`
	Y             int      `json:"y"`
	Z             int      `json:"z"`
	TotalQuantity int      `json:"total_quantity"`
	Details       []Detail `json:"details"`
}

// ProductPieceDetail is one piece row inside a product group.
type ProductPieceDetail struct {
	Piece           string `json:"piece"`
	X               int    `json:"x"`
	Y               int    `json:"y"`
	Z               int    `json:"z"`
	Quantity        int    `json:"quantity"`
	ProductQuantity int    `json:"product_quantity"`
	TotalQuantity   int    `json:"total_quantity"`
}

// ProductGroup aggregates pieces under the product that needs them.
type ProductGroup struct {
	Product       string               `json:"product"`
	TotalQuantity int                  `json:"total_quantity"`
	Pieces        []ProductPieceDetail `json:"pieces"`
}

// LengthBucket groups, inside one cross-section, all pieces cut to the
// same length.
type LengthBucket struct {
	X             int      `json:"x"`
	Y             int      `json:"y"`
	Z             int      `json:"z"`
	TotalQuantity int      `json:"total_quantity"`
	Details       []Detail `json:"details"`
}

// CrossSectionGroup aggregates pieces sharing a (width, thickness) pair.
// Pieces of different lengths are cut from the same stock profile, so the
// plank estimate spans every length bucket in the group.
type CrossSectionGroup struct {
	Y            int            `json:"y"`
	Z            int            `json:"z"`
	PlanksNeeded int            `json:"planks_needed"`
	ItemCount    int            `json:"item_count"`
	Details      []LengthBucket `json:"details"`
}

// RequestedProduct echoes one order line back in the cross-section
// response header.
type RequestedProduct struct {
	Product       string `json:"product"`
	TotalQuantity int    `json:"total_quantity"`
	Pieces        int    `json:"pieces"`
}

// CrossSectionResult is the cross-section calculation response.
type CrossSectionResult struct {
	RequestedProducts []RequestedProduct  `json:"requested_products"`
	Order             []CrossSectionGroup `json:"order"`
}
