package usecase

// planksNeeded returns ceil(totalLength / plankSize): the minimum plank
// count consistent with simply summing lengths. This is a lower bound,
// not a cutting plan — it assumes lengths divide perfectly across planks
// with zero kerf, so it can under-count whenever offcuts cannot be reused
// between different required lengths. Kept as-is for compatibility with
// the historical estimate.
func planksNeeded(totalLength, plankSize int) int {
	return (totalLength + plankSize - 1) / plankSize
}
