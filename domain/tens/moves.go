package tens

// LegalGroups returns every removable group on the board: the pairs first,
// then the four-card groups, each in ascending slot order.
func (r Rules) LegalGroups(view BoardView) [][]int {
	indexes := view.OccupiedIndexes()
	groups := make([][]int, 0)
	for _, size := range []int{2, 4} {
		forEachCombination(indexes, size, func(group []int) {
			if r.IsLegal(view, group) {
				groups = append(groups, append([]int(nil), group...))
			}
		})
	}
	return groups
}

// Hint returns the first legal group on the board, or nil when none is left.
func (r Rules) Hint(view BoardView) []int {
	groups := r.LegalGroups(view)
	if len(groups) == 0 {
		return nil
	}
	return groups[0]
}

// forEachCombination calls fn with every k-element subset of items, keeping
// the order of items. fn must not retain its argument.
func forEachCombination(items []int, k int, fn func([]int)) {
	if k > len(items) {
		return
	}
	choose := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			fn(choose)
			return
		}
		for i := start; i <= len(items)-(k-depth); i++ {
			choose[depth] = items[i]
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}
