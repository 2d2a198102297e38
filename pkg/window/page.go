package window

import (
	"cmp"
	"slices"
	"strconv"
)

// Page is a page number bound to the Config it was produced for. All methods
// are pure; a Page never changes after construction.
type Page struct {
	number int
	cfg    *Config
}

// Classification holds every predicate of a Page at once.
type Classification struct {
	Number       int  `json:"number"`
	Current      bool `json:"current"`
	First        bool `json:"first"`
	Last         bool `json:"last"`
	Prev         bool `json:"prev"`
	Next         bool `json:"next"`
	LeftOuter    bool `json:"left_outer"`
	RightOuter   bool `json:"right_outer"`
	InsideWindow bool `json:"inside_window"`
	LeftDecade   bool `json:"left_decade"`
	RightDecade  bool `json:"right_decade"`
}

// Number returns the page number.
func (p Page) Number() int { return p.number }

// Int is an alias of Number.
func (p Page) Int() int { return p.number }

func (p Page) String() string { return strconv.Itoa(p.number) }

// IsCurrent reports whether p is the current page.
func (p Page) IsCurrent() bool { return p.number == p.cfg.currentPage }

// IsFirst reports whether p is page 1.
func (p Page) IsFirst() bool { return p.number == 1 }

// IsLast reports whether p is the last page.
func (p Page) IsLast() bool { return p.number == p.cfg.totalPages }

// IsPrev reports whether p directly precedes the current page.
func (p Page) IsPrev() bool { return p.number == p.cfg.currentPage-1 }

// IsNext reports whether p directly follows the current page.
func (p Page) IsNext() bool { return p.number == p.cfg.currentPage+1 }

// IsLeftOuter reports whether p is within the left outer window and not a
// left decade page.
func (p Page) IsLeftOuter() bool {
	return p.number <= p.cfg.left && !p.IsLeftDecade()
}

// IsRightOuter reports whether p is within the right outer window and not a
// right decade page.
func (p Page) IsRightOuter() bool {
	return p.cfg.totalPages-p.number < p.cfg.right && !p.IsRightDecade()
}

// IsInsideWindow reports whether p is within the inner window.
func (p Page) IsInsideWindow() bool {
	d := p.cfg.currentPage - p.number
	if d < 0 {
		d = -d
	}
	return d <= p.cfg.window
}

// IsLeftDecade reports whether p is a left decade page.
func (p Page) IsLeftDecade() bool {
	_, found := slices.BinarySearch(p.cfg.leftDecade, p.number)
	return found
}

// IsRightDecade reports whether p is a right decade page.
func (p Page) IsRightDecade() bool {
	_, found := slices.BinarySearch(p.cfg.rightDecade, p.number)
	return found
}

// Classify evaluates every predicate.
func (p Page) Classify() Classification {
	return Classification{
		Number:       p.number,
		Current:      p.IsCurrent(),
		First:        p.IsFirst(),
		Last:         p.IsLast(),
		Prev:         p.IsPrev(),
		Next:         p.IsNext(),
		LeftOuter:    p.IsLeftOuter(),
		RightOuter:   p.IsRightOuter(),
		InsideWindow: p.IsInsideWindow(),
		LeftDecade:   p.IsLeftDecade(),
		RightDecade:  p.IsRightDecade(),
	}
}

// Add returns p's number plus n.
func (p Page) Add(n int) int { return p.number + n }

// Sub returns p's number minus n.
func (p Page) Sub(n int) int { return p.number - n }

// Distance returns p's number minus q's.
func (p Page) Distance(q Page) int { return p.number - q.number }

// Compare orders pages by number, returning -1, 0 or +1.
func (p Page) Compare(q Page) int { return cmp.Compare(p.number, q.number) }
