package dto

// PieceLine is one row of an imported cut-list: the piece identified by
// name and dimensions, plus its quantity per product unit.
type PieceLine struct {
	Name     string
	SizeX    int
	SizeY    int
	SizeZ    int
	Quantity int
}
