package usecase

import "github.com/IgorBayerl/garden-erp/internal/order/dto"

// Group keys are value types so map lookups compare the dimension fields
// themselves instead of concatenated strings.
type sizeKey struct {
	x, y, z int
}

type sectionKey struct {
	y, z int
}

// aggregateBySize folds facts into groups keyed by the exact dimension
// triple. Groups appear in first-occurrence order. Details are never
// merged: a product may use the same dimensions through two different
// pieces and both rows must show.
func aggregateBySize(facts []expandedFact) []dto.SizeGroup {
	index := map[sizeKey]int{}
	groups := []dto.SizeGroup{}

	for _, f := range facts {
		key := sizeKey{x: f.piece.SizeX, y: f.piece.SizeY, z: f.piece.SizeZ}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, dto.SizeGroup{
				X:       key.x,
				Y:       key.y,
				Z:       key.z,
				Details: []dto.Detail{},
			})
		}
		groups[i].TotalQuantity += f.resolvedQty
		groups[i].Details = append(groups[i].Details, factDetail(f))
	}
	return groups
}

// aggregateByProduct folds facts into one group per product name, each
// detail carrying the piece's dimensions.
func aggregateByProduct(facts []expandedFact) []dto.ProductGroup {
	index := map[string]int{}
	groups := []dto.ProductGroup{}

	for _, f := range facts {
		i, ok := index[f.productName]
		if !ok {
			i = len(groups)
			index[f.productName] = i
			groups = append(groups, dto.ProductGroup{
				Product: f.productName,
				Pieces:  []dto.ProductPieceDetail{},
			})
		}
		groups[i].TotalQuantity += f.resolvedQty
		groups[i].Pieces = append(groups[i].Pieces, dto.ProductPieceDetail{
			Piece:           f.piece.Name,
			X:               f.piece.SizeX,
			Y:               f.piece.SizeY,
			Z:               f.piece.SizeZ,
			Quantity:        f.perUnitQty,
			ProductQuantity: f.orderQty,
			TotalQuantity:   f.resolvedQty,
		})
	}
	return groups
}

// sectionAccum is a cross-section group under construction: the outer
// group plus its running length sum and the index of length buckets.
type sectionAccum struct {
	group       dto.CrossSectionGroup
	sizeSum     int
	lengthIndex map[int]int
}

// aggregateByCrossSection folds facts into groups keyed by (width,
// thickness) only: different lengths of the same profile are cut from the
// same stock. Within a group, facts bucket by exact length, merging
// repeated lengths, while sizeSum accumulates lengthX × quantity across
// every fact for the later plank estimate. Both levels keep
// first-occurrence order.
func aggregateByCrossSection(facts []expandedFact) []*sectionAccum {
	index := map[sectionKey]int{}
	accums := []*sectionAccum{}

	for _, f := range facts {
		key := sectionKey{y: f.piece.SizeY, z: f.piece.SizeZ}
		i, ok := index[key]
		if !ok {
			i = len(accums)
			index[key] = i
			accums = append(accums, &sectionAccum{
				group: dto.CrossSectionGroup{
					Y:       key.y,
					Z:       key.z,
					Details: []dto.LengthBucket{},
				},
				lengthIndex: map[int]int{},
			})
		}
		acc := accums[i]
		acc.sizeSum += f.piece.SizeX * f.resolvedQty

		j, ok := acc.lengthIndex[f.piece.SizeX]
		if !ok {
			j = len(acc.group.Details)
			acc.lengthIndex[f.piece.SizeX] = j
			acc.group.Details = append(acc.group.Details, dto.LengthBucket{
				X:       f.piece.SizeX,
				Y:       key.y,
				Z:       key.z,
				Details: []dto.Detail{},
			})
		}
		bucket := &acc.group.Details[j]
		bucket.TotalQuantity += f.resolvedQty
		bucket.Details = append(bucket.Details, factDetail(f))
	}
	return accums
}
