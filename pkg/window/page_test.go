package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, cfg *Config) map[int]Classification {
	t.Helper()
	out := make(map[int]Classification)
	for p := range cfg.Pages() {
		out[p.Number()] = p.Classify()
	}
	return out
}

func TestPage_FirstPageOfTen(t *testing.T) {
	cfg, err := Resolve(Options{}.With(WithTotalPages(10), WithCurrentPage(1), WithWindow(2),
		WithLeft(1), WithRight(1), WithDecade(0)), StandardDefaults())
	require.NoError(t, err)

	pages := classify(t, cfg)

	assert.Equal(t, Classification{
		Number: 1, Current: true, First: true, LeftOuter: true, InsideWindow: true,
	}, pages[1])
	assert.Equal(t, Classification{Number: 2, Next: true, InsideWindow: true}, pages[2])
	assert.Equal(t, Classification{Number: 3, InsideWindow: true}, pages[3])
	assert.Equal(t, Classification{Number: 4}, pages[4])
	assert.Equal(t, Classification{Number: 9}, pages[9])
	assert.Equal(t, Classification{Number: 10, Last: true, RightOuter: true}, pages[10])
}

func TestPage_DecadesExcludeOuter(t *testing.T) {
	cfg, err := Resolve(Options{}.With(WithTotalPages(100), WithCurrentPage(50), WithWindow(2),
		WithLeft(2), WithRight(2), WithDecadeLeft(1), WithDecadeRight(1)), StandardDefaults())
	require.NoError(t, err)

	pages := classify(t, cfg)

	// page 1 is a decade page, so it is not counted as left outer
	assert.True(t, pages[1].LeftDecade)
	assert.False(t, pages[1].LeftOuter)
	assert.True(t, pages[2].LeftOuter)
	assert.False(t, pages[3].LeftOuter)
	assert.True(t, pages[10].LeftDecade)

	assert.True(t, pages[48].InsideWindow)
	assert.False(t, pages[47].InsideWindow)
	assert.True(t, pages[49].Prev)
	assert.True(t, pages[50].Current)
	assert.True(t, pages[51].Next)

	assert.True(t, pages[90].RightDecade)
	assert.False(t, pages[98].RightOuter)
	assert.True(t, pages[99].RightOuter)
	assert.True(t, pages[100].RightDecade)
	assert.False(t, pages[100].RightOuter)
	assert.True(t, pages[100].Last)
}

func TestPage_Consistency(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for page := 1; page <= total; page++ {
			cfg, err := Resolve(Options{}.With(WithTotalPages(total), WithCurrentPage(page),
				WithWindow(2), WithOuterWindow(2), WithDecade(1)), StandardDefaults())
			require.NoError(t, err)

			currents := 0
			for p := range cfg.Pages() {
				c := p.Classify()
				if c.Current {
					currents++
				}
				if c.First {
					require.Equal(t, 1, c.Number)
				}
				if c.Last {
					require.Equal(t, total, c.Number)
				}
				require.False(t, c.LeftOuter && c.LeftDecade)
				require.False(t, c.RightOuter && c.RightDecade)
			}
			require.Equal(t, 1, currents)
		}
	}
}

func TestPage_Arithmetic(t *testing.T) {
	cfg, err := New(20, 7)
	require.NoError(t, err)

	p := cfg.Page(7)
	q := cfg.Page(12)

	assert.Equal(t, 7, p.Int())
	assert.Equal(t, "7", p.String())
	assert.Equal(t, 10, p.Add(3))
	assert.Equal(t, 5, p.Sub(2))
	assert.Equal(t, 19, p.Add(q.Int()))
	assert.Equal(t, 5, q.Distance(p))
	assert.Equal(t, -5, p.Distance(q))
	assert.Equal(t, -1, p.Compare(q))
	assert.Equal(t, 1, q.Compare(p))
	assert.Equal(t, 0, p.Compare(cfg.Current()))
	assert.True(t, cfg.Current().IsCurrent())
}

func TestPage_ZeroOuterWindow(t *testing.T) {
	cfg, err := Resolve(Options{}.With(WithTotalPages(10), WithCurrentPage(5),
		WithOuterWindow(0)), StandardDefaults())
	require.NoError(t, err)

	assert.False(t, cfg.Page(1).IsLeftOuter())
	assert.False(t, cfg.Page(10).IsRightOuter())
}
