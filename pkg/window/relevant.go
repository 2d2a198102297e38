package window

import (
	"iter"
	"slices"
)

// RelevantPages returns the pages a paginator needs, ascending and without
// duplicates:
//   - the left outer window plus one page, so a gap can follow it
//   - the right outer window plus one page
//   - the inner window plus one page on each side
//   - the left and right decade pages
//
// The full page range is never enumerated. An empty collection yields nil.
func (c *Config) RelevantPages() []int {
	total := c.totalPages
	if total < 1 {
		return nil
	}
	// Bounds are built from distances to 1 and total so that nothing
	// overflows near math.MaxInt.
	cur := c.currentPage
	inner := c.window
	if inner < total {
		inner++
	}

	pages := make([]int, 0, len(c.leftDecade)+len(c.rightDecade)+16)
	pages = appendRange(pages, 1, 1+min(c.left, total-1))
	pages = appendRange(pages, total-min(c.right, total-1), total)
	pages = appendRange(pages, cur-min(inner, cur-1), cur+min(inner, total-cur))
	pages = append(pages, c.leftDecade...)
	pages = append(pages, c.rightDecade...)

	slices.Sort(pages)
	return slices.Compact(pages)
}

// Pages returns the relevant pages as a lazy sequence. The pages are computed
// when iteration starts, so the sequence can be ranged over more than once.
func (c *Config) Pages() iter.Seq[Page] {
	return func(yield func(Page) bool) {
		for _, n := range c.RelevantPages() {
			if !yield(c.Page(n)) {
				return
			}
		}
	}
}

// appendRange appends lo..hi. It stops on hi rather than past it, so hi may
// be math.MaxInt.
func appendRange(dst []int, lo, hi int) []int {
	if lo > hi {
		return dst
	}
	for p := lo; ; p++ {
		dst = append(dst, p)
		if p == hi {
			break
		}
	}
	return dst
}
