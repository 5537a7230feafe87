package usecase

import (
	"fmt"
	"sort"

	"github.com/IgorBayerl/garden-erp/internal/order"
	"github.com/IgorBayerl/garden-erp/internal/order/dto"
)

// parseDirection maps the wire order value to a reverse flag. The default
// differs per mode: cross-section results read largest profile first.
func parseDirection(s string, defaultDesc bool) (bool, error) {
	switch s {
	case "":
		return defaultDesc, nil
	case "asc":
		return false, nil
	case "desc":
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown order value %q", order.ErrInvalidRequest, s)
	}
}

// resolveSortBy validates the requested field names against the fields a
// mode supports and falls back to the mode's default composite key.
func resolveSortBy(sortBy, defaults []string, allowed map[string]bool) ([]string, error) {
	if len(sortBy) == 0 {
		return defaults, nil
	}
	for _, field := range sortBy {
		if !allowed[field] {
			return nil, fmt.Errorf("%w: unknown sort_by field %q", order.ErrInvalidRequest, field)
		}
	}
	return sortBy, nil
}

// sortByComposite stably orders items by the numeric fields named in keys,
// read through get. Descending reverses the whole composite comparison,
// not each field; ties keep first-occurrence order either way.
func sortByComposite[T any](items []T, keys []string, desc bool, get func(T, string) int) {
	sort.SliceStable(items, func(i, j int) bool {
		for _, key := range keys {
			a, b := get(items[i], key), get(items[j], key)
			if a != b {
				if desc {
					return a > b
				}
				return a < b
			}
		}
		return false
	})
}

var sizeFields = map[string]bool{"x": true, "y": true, "z": true}

func sortSizeGroups(groups []dto.SizeGroup, sortBy []string, desc bool) error {
	keys, err := resolveSortBy(sortBy, []string{"x", "y", "z"}, sizeFields)
	if err != nil {
		return err
	}
	sortByComposite(groups, keys, desc, func(g dto.SizeGroup, field string) int {
		switch field {
		case "x":
			return g.X
		case "y":
			return g.Y
		default:
			return g.Z
		}
	})
	return nil
}

var productFields = map[string]bool{"product": true, "x": true, "y": true, "z": true}

// sortProductGroups orders groups by product name and each group's piece
// list by the dimension fields, independently of the outer ordering.
func sortProductGroups(groups []dto.ProductGroup, sortBy []string, desc bool) error {
	keys, err := resolveSortBy(sortBy, []string{"x", "y", "z"}, productFields)
	if err != nil {
		return err
	}

	// "product" only names the outer key; the piece lists sort by the
	// remaining dimension fields (or the default when none are left).
	dimKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		if key != "product" {
			dimKeys = append(dimKeys, key)
		}
	}
	if len(dimKeys) == 0 {
		dimKeys = []string{"x", "y", "z"}
	}

	for i := range groups {
		sortByComposite(groups[i].Pieces, dimKeys, desc, func(p dto.ProductPieceDetail, field string) int {
			switch field {
			case "x":
				return p.X
			case "y":
				return p.Y
			default:
				return p.Z
			}
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if desc {
			return groups[i].Product > groups[j].Product
		}
		return groups[i].Product < groups[j].Product
	})
	return nil
}

var crossSectionSortFields = map[string]bool{"x": true, "y": true, "z": true}

func sortCrossSectionGroups(groups []dto.CrossSectionGroup, sortBy []string, desc bool) error {
	keys, err := resolveSortBy(sortBy, []string{"y", "z"}, crossSectionSortFields)
	if err != nil {
		return err
	}

	// The group key is (y, z); x is the length of the sub-buckets. When the
	// caller names x it orders each group's buckets and is skipped for the
	// groups themselves.
	groupKeys := make([]string, 0, len(keys))
	sortBuckets := false
	for _, key := range keys {
		if key == "x" {
			sortBuckets = true
			continue
		}
		groupKeys = append(groupKeys, key)
	}

	if sortBuckets {
		for i := range groups {
			sortByComposite(groups[i].Details, []string{"x"}, desc, func(b dto.LengthBucket, _ string) int {
				return b.X
			})
		}
	}
	sortByComposite(groups, groupKeys, desc, func(g dto.CrossSectionGroup, field string) int {
		if field == "y" {
			return g.Y
		}
		return g.Z
	})
	return nil
}
