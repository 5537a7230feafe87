package model

// Piece is a single physical part with fixed dimensions in millimetres.
// SizeX is the length (comprimento), SizeY the width (largura) and SizeZ
// the thickness (espessura). Pieces are immutable once referenced by a
// product's BOM lines.
type Piece struct {
	ID    int    `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	SizeX int    `db:"size_x" json:"sizeX"`
	SizeY int    `db:"size_y" json:"sizeY"`
	SizeZ int    `db:"size_z" json:"sizeZ"`
}
