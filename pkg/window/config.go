package window

import "slices"

// Config is a resolved, immutable window configuration for one render.
// Build it with New or Resolve; the zero value describes an empty collection.
type Config struct {
	totalPages  int
	currentPage int
	window      int
	left        int
	right       int
	decadeLeft  int
	decadeRight int

	// ascending, computed once per Config
	leftDecade  []int
	rightDecade []int
}

// Settings is the resolved view of a Config, suitable for logging and JSON.
type Settings struct {
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	Window      int `json:"window"`
	Left        int `json:"left"`
	Right       int `json:"right"`
	DecadeLeft  int `json:"decade_left"`
	DecadeRight int `json:"decade_right"`
}

// New resolves a Config for totalPages and currentPage against the current
// process defaults. opts may override any field, including the two page
// arguments.
func New(totalPages, currentPage int, opts ...Option) (*Config, error) {
	o := Options{}.With(WithTotalPages(totalPages), WithCurrentPage(currentPage))
	return Resolve(o.With(opts...), CurrentDefaults())
}

// Resolve validates o and resolves every field against d. A missing or
// negative total page count and negative window sizes are rejected; the
// current page defaults to 1 and is clamped into [1, max(total, 1)].
func Resolve(o Options, d Defaults) (*Config, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	for _, key := range optionKeys {
		if key == KeyCurrentPage {
			continue
		}
		if v := *o.field(key); v != nil && *v < 0 {
			return nil, invalidf(key, *v, "must be non-negative")
		}
	}

	total, ok := firstSet(o.TotalPages, o.NumPages)
	if !ok {
		return nil, invalidf(KeyTotalPages, "", "required")
	}

	page := 1
	if o.CurrentPage != nil {
		page = *o.CurrentPage
	}
	page = min(max(page, 1), max(total, 1))

	outer := resolve(d.OuterWindow, o.OuterWindow)
	decade := resolve(d.Decade, o.Decade)

	c := &Config{
		totalPages:  total,
		currentPage: page,
		window:      resolve(d.Window, o.Window, o.InnerWindow),
		left:        orFallback(resolve(d.Left, o.Left), outer),
		right:       orFallback(resolve(d.Right, o.Right), outer),
		decadeLeft:  orFallback(resolve(d.DecadeLeft, o.DecadeLeft), decade),
		decadeRight: orFallback(resolve(d.DecadeRight, o.DecadeRight), decade),
	}
	c.leftDecade = LeftDecade(c.decadeLeft, c.totalPages)
	c.rightDecade = RightDecade(c.decadeRight, c.totalPages)
	return c, nil
}

func firstSet(candidates ...*int) (int, bool) {
	for _, v := range candidates {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

// resolve returns the first set candidate, or def.
func resolve(def int, candidates ...*int) int {
	if v, ok := firstSet(candidates...); ok {
		return v
	}
	return def
}

// orFallback keeps the historical rule that a zero outer or decade size
// means "use the shared size", not "disabled".
func orFallback(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

// TotalPages returns the number of pages.
func (c *Config) TotalPages() int { return c.totalPages }

// CurrentPage returns the clamped current page number.
func (c *Config) CurrentPage() int { return c.currentPage }

// Window returns the inner window radius.
func (c *Config) Window() int { return c.window }

// Left returns the resolved left outer window.
func (c *Config) Left() int { return c.left }

// Right returns the resolved right outer window.
func (c *Config) Right() int { return c.right }

// DecadeLeft returns the resolved left decade size, in tens.
func (c *Config) DecadeLeft() int { return c.decadeLeft }

// DecadeRight returns the resolved right decade size, in tens.
func (c *Config) DecadeRight() int { return c.decadeRight }

// LeftDecade returns a copy of the left decade pages, ascending.
func (c *Config) LeftDecade() []int { return slices.Clone(c.leftDecade) }

// RightDecade returns a copy of the right decade pages, ascending.
func (c *Config) RightDecade() []int { return slices.Clone(c.rightDecade) }

// Current returns the current page.
func (c *Config) Current() Page { return c.Page(c.currentPage) }

// Page wraps n for classification against c. n need not be relevant or even
// in range.
func (c *Config) Page(n int) Page { return Page{number: n, cfg: c} }

// Settings returns the resolved fields.
func (c *Config) Settings() Settings {
	return Settings{
		TotalPages:  c.totalPages,
		CurrentPage: c.currentPage,
		Window:      c.window,
		Left:        c.left,
		Right:       c.right,
		DecadeLeft:  c.decadeLeft,
		DecadeRight: c.decadeRight,
	}
}
