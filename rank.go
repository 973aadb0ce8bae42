package personmatch

import "sort"

// Rank stable-sorts results by score, highest first. Equal-score results keep
// their relative input order, which reflects deduplication first-seen order
// and therefore query priority.
func Rank(results []Result) []Result {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
