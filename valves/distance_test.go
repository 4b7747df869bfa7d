package valves

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAllPairsSample(t *testing.T) {
	g, err := Build(sampleValves())
	require.NoError(t, err)
	tab := AllPairs(g)

	want := map[string]int{
		"AA": 0, "BB": 1, "CC": 2, "DD": 1, "EE": 2,
		"FF": 3, "GG": 4, "HH": 5, "II": 1, "JJ": 2,
	}
	got := map[string]int{}
	for j := 0; j < g.Len(); j++ {
		d, ok := tab.At(0, j)
		require.True(t, ok)
		got[g.Valve(j).ID] = d
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("distances from AA mismatch (-want +got):\n%s", diff)
	}

	// Edges in the sample are symmetric, so the table is too.
	for i := 0; i < g.Len(); i++ {
		for j := 0; j < g.Len(); j++ {
			a, _ := tab.At(i, j)
			b, _ := tab.At(j, i)
			require.Equalf(t, a, b, "dist(%d,%d) != dist(%d,%d)", i, j, j, i)
		}
	}
}

func TestAllPairsDirected(t *testing.T) {
	g, err := Build([]Valve{
		{"AA", 0, []string{"BB"}},
		{"BB", 1, []string{"CC"}},
		{"CC", 1, nil},
	})
	require.NoError(t, err)
	tab := AllPairs(g)

	d, ok := tab.At(0, 2)
	require.True(t, ok)
	require.Equal(t, 2, d)
	_, ok = tab.At(2, 0)
	require.False(t, ok)
}

func TestRestrictSample(t *testing.T) {
	_, d := mustPrepare(sampleValves(), "AA")
	require.Equal(t, 6, d.Len())

	var ids []string
	for p := 0; p < d.Len(); p++ {
		ids = append(ids, d.ID(p))
	}
	require.Equal(t, []string{"BB", "CC", "DD", "EE", "HH", "JJ"}, ids)
	require.Equal(t, 22, d.Flow(4))

	fromStart := map[string]int{}
	for _, h := range d.Hops(d.Origin()) {
		fromStart[d.ID(h.To)] = h.Dist
	}
	want := map[string]int{"BB": 1, "CC": 2, "DD": 1, "EE": 2, "HH": 5, "JJ": 2}
	if diff := cmp.Diff(want, fromStart); diff != "" {
		t.Errorf("hops from AA mismatch (-want +got):\n%s", diff)
	}

	// The start is an origin only; nothing travels back to it.
	for p := 0; p < d.Len(); p++ {
		for _, h := range d.Hops(p) {
			require.NotEqual(t, d.Origin(), h.To)
			require.NotEqual(t, p, h.To)
		}
	}
}

func TestRestrictSymmetryAndTriangle(t *testing.T) {
	_, d := mustPrepare(sampleValves(), "AA")
	n := d.Len()
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a == b {
				continue
			}
			ab, ok := d.Dist(a, b)
			require.True(t, ok)
			ba, ok := d.Dist(b, a)
			require.True(t, ok)
			require.Equalf(t, ab, ba, "%s <-> %s", d.ID(a), d.ID(b))

			for c := 0; c < n; c++ {
				if c == a || c == b {
					continue
				}
				ac, _ := d.Dist(a, c)
				bc, _ := d.Dist(b, c)
				require.LessOrEqualf(t, ac, ab+bc, "%s -> %s via %s", d.ID(a), d.ID(c), d.ID(b))
			}
		}
	}
}

func TestRestrictDropsUnreachable(t *testing.T) {
	_, d := mustPrepare(farApart(), "AA")
	require.Equal(t, 3, d.Len())
	require.Equal(t, "GG", d.ID(2))

	require.Equal(t, []Hop{{To: 0, Dist: 1}, {To: 1, Dist: 4}}, d.Hops(d.Origin()))
	require.Equal(t, []Hop{{To: 1, Dist: 5}}, d.Hops(0))
	require.Empty(t, d.Hops(2))

	_, ok := d.Dist(d.Origin(), 2)
	require.False(t, ok)
	_, ok = d.Dist(2, 0)
	require.False(t, ok)
}

func TestRestrictStartWithFlow(t *testing.T) {
	_, d := mustPrepare([]Valve{
		{"AA", 4, []string{"BB"}},
		{"BB", 2, []string{"AA"}},
	}, "AA")
	require.Equal(t, 2, d.Len())
	require.Equal(t, []Hop{{To: 0, Dist: 0}, {To: 1, Dist: 1}}, d.Hops(d.Origin()))
	require.Equal(t, []Hop{{To: 1, Dist: 1}}, d.Hops(0))
}

func TestRestrictErrors(t *testing.T) {
	g, err := Build(passThrough())
	require.NoError(t, err)
	_, err = Restrict(g, AllPairs(g), g.Len())
	require.ErrorIs(t, err, ErrMissingStart)

	_, _, err = Prepare(passThrough(), "ZZ")
	require.ErrorIs(t, err, ErrMissingStart)

	_, _, err = Prepare(chain(maxValves+1, 1), "V0")
	require.ErrorIs(t, err, ErrTooManyValves)

	_, d := mustPrepare(chain(maxValves, 1), "V0")
	require.Equal(t, maxValves, d.Len())
}
