package model

// Product owns an ordered set of BOM lines (ProductPieces).
type Product struct {
	ID     int            `db:"id" json:"id"`
	Name   string         `db:"name" json:"name"`
	Image  *string        `db:"image" json:"image,omitempty"` // Nullable
	Pieces []ProductPiece `db:"-" json:"product_pieces"`
}

// ProductPiece is one BOM line: a piece and its quantity per unit of the
// product. Lines keep their stored order (insertion order by id).
type ProductPiece struct {
	ID        int   `db:"id" json:"-"`
	ProductID int   `db:"product_id" json:"-"`
	PieceID   int   `db:"piece_id" json:"piece_id"`
	Quantity  int   `db:"quantity" json:"quantity"`
	Piece     Piece `db:"-" json:"piece"`
}
