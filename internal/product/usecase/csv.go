package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/IgorBayerl/garden-erp/internal/product"
	"github.com/IgorBayerl/garden-erp/internal/product/dto"
)

// Cut-list CSVs come straight out of the workshop spreadsheets, with
// Portuguese headers: piece name, length, width, thickness, quantity.
var requiredColumns = []string{"Peça", "Comp.", "Larg.", "Esp.", "Qtd."}

// ParsePiecesCSV reads a cut-list CSV into piece lines. Files saved as
// Latin-1 (the spreadsheets' default on Windows) are transcoded before
// parsing; a UTF-8 BOM is tolerated.
func ParsePiecesCSV(r io.Reader) ([]dto.PieceLine, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", product.ErrInvalidCSV, err)
	}

	reader := csv.NewReader(strings.NewReader(decodeToUTF8(raw)))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", product.ErrInvalidCSV, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: file has no data rows", product.ErrInvalidCSV)
	}

	columns, err := columnIndex(records[0])
	if err != nil {
		return nil, err
	}

	lines := make([]dto.PieceLine, 0, len(records)-1)
	for i, record := range records[1:] {
		rowNum := i + 2

		name := strings.TrimSpace(record[columns["Peça"]])
		if name == "" {
			return nil, fmt.Errorf("%w: row %d has an empty piece name", product.ErrInvalidCSV, rowNum)
		}

		sizeX, err := positiveInt(record[columns["Comp."]])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column Comp.: %v", product.ErrInvalidCSV, rowNum, err)
		}
		sizeY, err := positiveInt(record[columns["Larg."]])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column Larg.: %v", product.ErrInvalidCSV, rowNum, err)
		}
		sizeZ, err := positiveInt(record[columns["Esp."]])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column Esp.: %v", product.ErrInvalidCSV, rowNum, err)
		}
		quantity, err := positiveInt(record[columns["Qtd."]])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column Qtd.: %v", product.ErrInvalidCSV, rowNum, err)
		}

		lines = append(lines, dto.PieceLine{
			Name:     name,
			SizeX:    sizeX,
			SizeY:    sizeY,
			SizeZ:    sizeZ,
			Quantity: quantity,
		})
	}
	return lines, nil
}

func columnIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	missing := []string{}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns: %s",
			product.ErrInvalidCSV, strings.Join(missing, ", "))
	}
	return columns, nil
}

func positiveInt(field string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", strings.TrimSpace(field))
	}
	if value <= 0 {
		return 0, fmt.Errorf("%d is not a positive integer", value)
	}
	return value, nil
}

func decodeToUTF8(raw []byte) string {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(raw) {
		return string(raw)
	}
	// Not valid UTF-8: treat as Latin-1, which maps bytes to code points 1:1.
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}
