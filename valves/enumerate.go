package valves

import aoc "github.com/maisem/aoc2022"

// state is a point in the search: where the agent stands, what it has
// opened, the minutes it has left and the pressure already locked in.
type state struct {
	at    int
	open  Set
	left  int
	total int
}

// Enumerate explores every route one agent can take in budget minutes and
// returns, for each set of valves some route opens, the best total any such
// route achieves. The empty set is always present with 0.
func Enumerate(d *Distances, budget int) map[Set]int {
	best := map[Set]int{0: 0}
	q := aoc.NewQueue(state{at: d.Origin(), left: budget})
	q.While(func(s state) bool {
		for _, h := range d.Hops(s.at) {
			if s.open.Has(h.To) {
				continue
			}
			left := s.left - h.Dist - 1
			if left < 0 {
				continue
			}
			next := state{
				at:    h.To,
				open:  s.open.With(h.To),
				left:  left,
				total: s.total + d.Flow(h.To)*left,
			}
			if v, ok := best[next.open]; !ok || next.total > v {
				best[next.open] = next.total
			}
			q.Push(next)
		}
		return true
	})
	return best
}
