package dto

type ProductPieceInput struct {
	PieceID  int `json:"piece_id"`
	Quantity int `json:"quantity"`
}

type CreateProductInput struct {
	Name          string              `json:"name"`
	Image         *string             `json:"image,omitempty"`
	ProductPieces []ProductPieceInput `json:"product_pieces"`
}

type UpdateProductInput struct {
	ID            int                 `json:"-"`
	Name          string              `json:"name"`
	Image         *string             `json:"image,omitempty"`
	ProductPieces []ProductPieceInput `json:"product_pieces"`
}
