package valves

import "math/bits"

// maxValves is the number of worthwhile valves a Set can hold.
const maxValves = 64

// Set is a set of opened worthwhile valves, one bit per position in
// Distances.
type Set uint64

// Has reports whether valve p is in s.
func (s Set) Has(p int) bool { return s&(1<<p) != 0 }

// With returns s plus valve p.
func (s Set) With(p int) Set { return s | 1<<p }

// Disjoint reports whether s and o share no valve.
func (s Set) Disjoint(o Set) bool { return s&o == 0 }

// Len reports the number of valves in s.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }
