package valves

// Step is one valve opened along a Plan.
type Step struct {
	Valve   string
	Dist    int // tunnels walked to reach it
	Flow    int
	Left    int // minutes remaining once it is open
	Release int // Flow * Left
}

// Plan is the best single-agent route and the pressure it releases.
type Plan struct {
	Score int
	Steps []Step
}

// MaxRelease returns the most pressure one agent can release in budget
// minutes, starting at the origin. Moving to a valve costs its distance and
// opening it one more minute; the valve then releases its flow for every
// minute left.
func MaxRelease(d *Distances, budget int) Plan {
	s := solo{d: d}
	var p Plan
	p.Score = s.best(d.Origin(), 0, budget, 0)

	// Walk down again, following any hop that achieves the remaining score.
	at, open, left, total := d.Origin(), Set(0), budget, 0
	for total < p.Score {
		for _, h := range s.moves(at, open, left) {
			rem := left - h.Dist - 1
			got := total + d.Flow(h.To)*rem
			if s.best(h.To, open.With(h.To), rem, got) != p.Score {
				continue
			}
			p.Steps = append(p.Steps, Step{
				Valve:   d.ID(h.To),
				Dist:    h.Dist,
				Flow:    d.Flow(h.To),
				Left:    rem,
				Release: got - total,
			})
			at, open, left, total = h.To, open.With(h.To), rem, got
			break
		}
	}
	return p
}

type solo struct {
	d *Distances
}

// moves returns the hops from at to unopened valves that can be opened
// before time runs out.
func (s solo) moves(at int, open Set, left int) []Hop {
	var out []Hop
	for _, h := range s.d.Hops(at) {
		if open.Has(h.To) || left-h.Dist-1 < 0 {
			continue
		}
		out = append(out, h)
	}
	return out
}

// best returns the largest total reachable from the given state. total is
// what is already locked in and is returned as is when no move remains.
func (s solo) best(at int, open Set, left, total int) int {
	max := total
	for _, h := range s.d.Hops(at) {
		if open.Has(h.To) {
			continue
		}
		rem := left - h.Dist - 1
		if rem < 0 {
			continue
		}
		if got := s.best(h.To, open.With(h.To), rem, total+s.d.Flow(h.To)*rem); got > max {
			max = got
		}
	}
	return max
}
