package valves

import (
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
)

// BestPair returns the largest sum of scores of two distinct entries of best
// whose sets share no valve: two agents working in parallel without opening
// the same valve. It returns 0 when no such pair exists.
func BestPair(best map[Set]int) int {
	type entry struct {
		open  Set
		score int
	}
	keys := maps.Keys(best)
	es := make([]entry, len(keys))
	for i, k := range keys {
		es[i] = entry{k, best[k]}
	}
	slices.SortFunc(es, func(a, b entry) int {
		return cmp.Compare(b.score, a.score)
	})

	// With scores descending, no later pair can beat a[i]+a[i+1], and the
	// first disjoint partner of a is its best.
	top := 0
	for i, a := range es {
		if i+1 < len(es) && a.score+es[i+1].score <= top {
			break
		}
		for _, b := range es[i+1:] {
			if a.score+b.score <= top {
				break
			}
			if a.open.Disjoint(b.open) {
				top = a.score + b.score
				break
			}
		}
	}
	return top
}
