package dto

type CreatePieceInput struct {
	Name  string `json:"name"`
	SizeX int    `json:"sizeX"`
	SizeY int    `json:"sizeY"`
	SizeZ int    `json:"sizeZ"`
}

type UpdatePieceInput struct {
	ID    int    `json:"-"`
	Name  string `json:"name"`
	SizeX int    `json:"sizeX"`
	SizeY int    `json:"sizeY"`
	SizeZ int    `json:"sizeZ"`
}
