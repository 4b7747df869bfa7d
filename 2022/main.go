package main

import (
	_ "embed"
	"log"
	"regexp"
	"strings"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/valves"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

var valveRx = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

func parseValve(line string) valves.Valve {
	m := valveRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		log.Fatalf("bad valve line: %q", line)
	}
	return valves.Valve{
		ID:      m[1],
		Flow:    aoc.Int(m[2]),
		Tunnels: strings.Split(m[3], ", "),
	}
}

func (s solver) records() []valves.Valve {
	var out []valves.Valve
	for _, line := range s.Lines() {
		out = append(out, parseValve(line))
	}
	return out
}

func (s solver) distances() *valves.Distances {
	_, d, err := valves.Prepare(s.records(), valves.DefaultConfig().Start)
	return aoc.MustGet(d, err)
}

/*
want=1651

Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
*/
func (s solver) D16p1() any {
	plan := valves.MaxRelease(s.distances(), valves.DefaultConfig().Budget)
	var released []int
	for _, st := range plan.Steps {
		s.Debugf("open %s after %d tunnels: %d × %d", st.Valve, st.Dist, st.Flow, st.Left)
		released = append(released, st.Release)
	}
	s.Debugf("route releases %d", aoc.Sum(released...))
	return plan.Score
}

// want=1707
func (s solver) D16p2() any {
	d := s.distances()
	best := valves.Enumerate(d, valves.DefaultConfig().PairBudget)
	s.Debugf("%d distinct valve sets among %d worthwhile valves", len(best), d.Len())
	return valves.BestPair(best)
}
