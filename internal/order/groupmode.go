package order

import "fmt"

// GroupMode selects the aggregation key for a calculation.
type GroupMode int

const (
	GroupBySize GroupMode = iota
	GroupByProduct
	GroupByCrossSection
)

func (m GroupMode) String() string {
	switch m {
	case GroupBySize:
		return "size"
	case GroupByProduct:
		return "product"
	case GroupByCrossSection:
		return "cross_section"
	default:
		return "unknown"
	}
}

// ParseGroupMode maps the wire value to a GroupMode. An empty value keeps
// the historical default of grouping by size.
func ParseGroupMode(s string) (GroupMode, error) {
	switch s {
	case "", "size":
		return GroupBySize, nil
	case "product":
		return GroupByProduct, nil
	case "cross_section":
		return GroupByCrossSection, nil
	default:
		return 0, fmt.Errorf("%w: unknown group_by value %q", ErrInvalidRequest, s)
	}
}
