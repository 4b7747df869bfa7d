package valves

import "fmt"

// Config selects the start valve and the time budgets.
type Config struct {
	Start      string
	Budget     int // minutes for a single agent
	PairBudget int // minutes for each of two agents
}

// DefaultConfig returns the canonical puzzle settings.
func DefaultConfig() Config {
	return Config{
		Start:      "AA",
		Budget:     30,
		PairBudget: 26,
	}
}

// Result holds the best totals for one agent and for two agents.
type Result struct {
	Solo Plan
	Pair int
}

// Prepare builds the graph from records and collapses it onto the
// worthwhile valves around start.
func Prepare(records []Valve, start string) (*Graph, *Distances, error) {
	g, err := Build(records)
	if err != nil {
		return nil, nil, err
	}
	s, ok := g.Index(start)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrMissingStart, start)
	}
	d, err := Restrict(g, AllPairs(g), s)
	if err != nil {
		return nil, nil, err
	}
	return g, d, nil
}

// Solve runs the whole pipeline on records. An empty cfg.Start means "AA".
func Solve(records []Valve, cfg Config) (Result, error) {
	if cfg.Start == "" {
		cfg.Start = DefaultConfig().Start
	}
	_, d, err := Prepare(records, cfg.Start)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Solo: MaxRelease(d, cfg.Budget),
		Pair: BestPair(Enumerate(d, cfg.PairBudget)),
	}, nil
}
