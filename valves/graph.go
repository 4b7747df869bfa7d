// Package valves finds how much pressure one or two agents can release by
// walking a tunnel network and opening valves before time runs out.
//
// The pipeline is Build → AllPairs → Restrict → {MaxRelease, Enumerate} →
// BestPair; Solve runs all of it.
package valves

import (
	"fmt"

	"tailscale.com/util/deephash"
	"tailscale.com/util/set"
)

// Valve is one input record: an id, its flow rate, and the ids its tunnels
// lead to.
type Valve struct {
	ID      string
	Flow    int
	Tunnels []string
}

// Graph is the tunnel network. Valves are addressed by their index in the
// input; edges are stored as indices too, in input order.
//
// A Graph is never modified after Build.
type Graph struct {
	valves []Valve
	adj    [][]int
	index  map[string]int
}

// Build indexes records and resolves every tunnel to a valve index. Edges are
// kept exactly as given: no symmetry is inferred and duplicates are kept.
func Build(records []Valve) (*Graph, error) {
	g := &Graph{
		valves: make([]Valve, len(records)),
		adj:    make([][]int, len(records)),
		index:  make(map[string]int, len(records)),
	}
	seen := make(set.Set[string], len(records))
	for i, r := range records {
		if seen.Contains(r.ID) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValve, r.ID)
		}
		if r.Flow < 0 {
			return nil, fmt.Errorf("%w: valve %q has rate %d", ErrNegativeFlow, r.ID, r.Flow)
		}
		seen.Add(r.ID)
		g.index[r.ID] = i
		g.valves[i] = Valve{
			ID:      r.ID,
			Flow:    r.Flow,
			Tunnels: append([]string(nil), r.Tunnels...),
		}
	}
	for i, v := range g.valves {
		out := make([]int, 0, len(v.Tunnels))
		for _, id := range v.Tunnels {
			j, ok := g.index[id]
			if !ok {
				return nil, fmt.Errorf("%w: %q (tunnel from %q)", ErrUndefinedValve, id, v.ID)
			}
			out = append(out, j)
		}
		g.adj[i] = out
	}
	return g, nil
}

// Len reports the number of valves.
func (g *Graph) Len() int { return len(g.valves) }

// Index returns the index of the valve with the given id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Valve returns the record at index i.
func (g *Graph) Valve(i int) Valve { return g.valves[i] }

// Neighbors returns the indices tunnels from i lead to. The caller must not
// modify the returned slice.
func (g *Graph) Neighbors(i int) []int { return g.adj[i] }

// Hash returns a hash of the whole graph, for checking that nothing
// downstream mutated it.
func (g *Graph) Hash() deephash.Sum {
	return deephash.Hash(g)
}
