package valves

import "fmt"

// sampleValves is the worked example from the puzzle text.
func sampleValves() []Valve {
	return []Valve{
		{"AA", 0, []string{"DD", "II", "BB"}},
		{"BB", 13, []string{"CC", "AA"}},
		{"CC", 2, []string{"DD", "BB"}},
		{"DD", 20, []string{"CC", "AA", "EE"}},
		{"EE", 3, []string{"FF", "DD"}},
		{"FF", 0, []string{"EE", "GG"}},
		{"GG", 0, []string{"FF", "HH"}},
		{"HH", 22, []string{"GG"}},
		{"II", 0, []string{"AA", "JJ"}},
		{"JJ", 21, []string{"II"}},
	}
}

// passThrough has BB one tunnel from AA and DD two tunnels away through the
// empty CC.
//
//	BB - AA - CC - DD - EE - FF
func passThrough() []Valve {
	return []Valve{
		{"AA", 0, []string{"BB", "CC"}},
		{"BB", 13, []string{"AA"}},
		{"CC", 0, []string{"AA", "DD"}},
		{"DD", 20, []string{"CC", "EE"}},
		{"EE", 0, []string{"DD", "FF"}},
		{"FF", 0, []string{"EE"}},
	}
}

// farApart has BB next to AA, FF four tunnels away and GG in a separate
// component.
//
//	BB - AA - CC - DD - EE - FF    GG - HH
func farApart() []Valve {
	return []Valve{
		{"AA", 0, []string{"BB", "CC"}},
		{"BB", 5, []string{"AA"}},
		{"CC", 0, []string{"AA", "DD"}},
		{"DD", 0, []string{"CC", "EE"}},
		{"EE", 0, []string{"DD", "FF"}},
		{"FF", 7, []string{"EE"}},
		{"GG", 9, []string{"HH"}},
		{"HH", 0, []string{"GG"}},
	}
}

// chain links n valves V0 - V1 - ... in a line, each with the given flow.
func chain(n, flow int) []Valve {
	out := make([]Valve, n)
	for i := range out {
		var tunnels []string
		if i > 0 {
			tunnels = append(tunnels, fmt.Sprintf("V%d", i-1))
		}
		if i < n-1 {
			tunnels = append(tunnels, fmt.Sprintf("V%d", i+1))
		}
		out[i] = Valve{ID: fmt.Sprintf("V%d", i), Flow: flow, Tunnels: tunnels}
	}
	return out
}

func mustPrepare(records []Valve, start string) (*Graph, *Distances) {
	g, d, err := Prepare(records, start)
	if err != nil {
		panic(err)
	}
	return g, d
}
