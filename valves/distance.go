package valves

import (
	"fmt"
	"math"
)

// unreachable marks a pair with no path in a Table.
const unreachable = math.MaxInt

// Table holds shortest hop counts between every pair of valves in a Graph,
// including valves with no flow since paths run through them.
type Table struct {
	n    int
	dist []int // row-major n×n
}

// AllPairs computes hop counts for every pair of valves with Floyd–Warshall.
// Loops run k → i → j with k the intermediate valve.
func AllPairs(g *Graph) *Table {
	n := g.Len()
	t := &Table{n: n, dist: make([]int, n*n)}
	for i := range t.dist {
		t.dist[i] = unreachable
	}
	for i := 0; i < n; i++ {
		t.dist[i*n+i] = 0
		for _, j := range g.Neighbors(i) {
			if i != j {
				t.dist[i*n+j] = 1
			}
		}
	}
	d := t.dist
	for k := 0; k < n; k++ {
		rowK := d[k*n : (k+1)*n]
		for i := 0; i < n; i++ {
			ik := d[i*n+k]
			if ik == unreachable {
				continue
			}
			rowI := d[i*n : (i+1)*n]
			for j, kj := range rowK {
				if kj == unreachable {
					continue
				}
				if c := ik + kj; c < rowI[j] {
					rowI[j] = c
				}
			}
		}
	}
	return t
}

// At returns the hop count from valve i to valve j, or false if j cannot be
// reached from i.
func (t *Table) At(i, j int) (int, bool) {
	d := t.dist[i*t.n+j]
	return d, d != unreachable
}

// Hop is a move to worthwhile valve To costing Dist tunnels.
type Hop struct {
	To   int
	Dist int
}

// Distances is a Table collapsed onto the worthwhile valves (those with
// positive flow) plus the start. Worthwhile valves are numbered 0..Len()-1 in
// graph order; that number is also their bit in a Set. The start is
// numbered Origin(). A start with positive flow is also a worthwhile valve.
type Distances struct {
	ids    []string
	flow   []int
	hops   [][]Hop // indexed by position, Origin() last
	lookup map[[2]int]int
}

// Restrict builds the Distances for the given start index. Pairs with no path
// are left out, so unreachable valves never appear in any Hops list.
func Restrict(g *Graph, t *Table, start int) (*Distances, error) {
	if start < 0 || start >= g.Len() {
		return nil, fmt.Errorf("%w: index %d", ErrMissingStart, start)
	}
	var nodes []int
	for i := 0; i < g.Len(); i++ {
		if g.Valve(i).Flow > 0 {
			nodes = append(nodes, i)
		}
	}
	if len(nodes) > maxValves {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(nodes), maxValves)
	}
	d := &Distances{
		ids:    make([]string, len(nodes)),
		flow:   make([]int, len(nodes)),
		hops:   make([][]Hop, len(nodes)+1),
		lookup: make(map[[2]int]int),
	}
	for p, i := range nodes {
		v := g.Valve(i)
		d.ids[p], d.flow[p] = v.ID, v.Flow
	}
	from := append(append([]int(nil), nodes...), start)
	for p, i := range from {
		for q, j := range nodes {
			if p == q {
				continue
			}
			dist, ok := t.At(i, j)
			if !ok {
				continue
			}
			d.hops[p] = append(d.hops[p], Hop{To: q, Dist: dist})
			d.lookup[[2]int{p, q}] = dist
		}
	}
	return d, nil
}

// Len reports the number of worthwhile valves.
func (d *Distances) Len() int { return len(d.ids) }

// Origin is the position of the start valve.
func (d *Distances) Origin() int { return len(d.ids) }

// Hops lists the worthwhile valves reachable from position p.
func (d *Distances) Hops(p int) []Hop { return d.hops[p] }

// Dist returns the hop count from position p to worthwhile valve q.
func (d *Distances) Dist(p, q int) (int, bool) {
	v, ok := d.lookup[[2]int{p, q}]
	return v, ok
}

// Flow returns the flow rate of worthwhile valve p.
func (d *Distances) Flow(p int) int { return d.flow[p] }

// ID returns the id of worthwhile valve p.
func (d *Distances) ID(p int) string { return d.ids[p] }
