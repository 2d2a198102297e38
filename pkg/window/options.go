package window

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Option keys accepted by ParseOptions.
const (
	KeyTotalPages  = "total_pages"
	KeyNumPages    = "num_pages"
	KeyCurrentPage = "current_page"
	KeyWindow      = "window"
	KeyInnerWindow = "inner_window"
	KeyOuterWindow = "outer_window"
	KeyLeft        = "left"
	KeyRight       = "right"
	KeyDecade      = "decade"
	KeyDecadeLeft  = "decade_left"
	KeyDecadeRight = "decade_right"
)

// Options is the raw, per-render option set. A nil field is unset and falls
// back to its alias or to the process defaults during Resolve.
type Options struct {
	TotalPages *int
	// NumPages is the deprecated spelling of TotalPages and is only read when
	// TotalPages is nil.
	NumPages    *int
	CurrentPage *int

	Window *int
	// InnerWindow is an alias read when Window is nil.
	InnerWindow *int
	OuterWindow *int
	Left        *int
	Right       *int

	Decade      *int
	DecadeLeft  *int
	DecadeRight *int
}

// Option sets one field of Options.
type Option func(*Options)

// WithTotalPages sets the number of pages.
func WithTotalPages(n int) Option {
	return func(o *Options) { o.TotalPages = &n }
}

// WithNumPages sets the deprecated total page alias.
func WithNumPages(n int) Option {
	return func(o *Options) { o.NumPages = &n }
}

// WithCurrentPage sets the current page. Out-of-range values are clamped.
func WithCurrentPage(n int) Option {
	return func(o *Options) { o.CurrentPage = &n }
}

// WithWindow sets the inner window radius around the current page.
func WithWindow(n int) Option {
	return func(o *Options) { o.Window = &n }
}

// WithInnerWindow sets the alias of Window.
func WithInnerWindow(n int) Option {
	return func(o *Options) { o.InnerWindow = &n }
}

// WithOuterWindow sets the size Left and Right fall back to.
func WithOuterWindow(n int) Option {
	return func(o *Options) { o.OuterWindow = &n }
}

// WithLeft sets the left outer window. Zero means OuterWindow.
func WithLeft(n int) Option {
	return func(o *Options) { o.Left = &n }
}

// WithRight sets the right outer window. Zero means OuterWindow.
func WithRight(n int) Option {
	return func(o *Options) { o.Right = &n }
}

// WithDecade sets the size, in tens, DecadeLeft and DecadeRight fall back to.
func WithDecade(n int) Option {
	return func(o *Options) { o.Decade = &n }
}

// WithDecadeLeft sets the left decade window. Zero means Decade.
func WithDecadeLeft(n int) Option {
	return func(o *Options) { o.DecadeLeft = &n }
}

// WithDecadeRight sets the right decade window. Zero means Decade.
func WithDecadeRight(n int) Option {
	return func(o *Options) { o.DecadeRight = &n }
}

// With returns a copy of o with opts applied in order.
func (o Options) With(opts ...Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Merge returns a copy of o where every field set in other replaces the
// field of o.
func (o Options) Merge(other Options) Options {
	for _, key := range optionKeys {
		if v := *other.field(key); v != nil {
			n := *v
			*o.field(key) = &n
		}
	}
	return o
}

var optionKeys = []string{
	KeyTotalPages, KeyNumPages, KeyCurrentPage,
	KeyWindow, KeyInnerWindow, KeyOuterWindow, KeyLeft, KeyRight,
	KeyDecade, KeyDecadeLeft, KeyDecadeRight,
}

func (o *Options) field(key string) **int {
	switch key {
	case KeyTotalPages:
		return &o.TotalPages
	case KeyNumPages:
		return &o.NumPages
	case KeyCurrentPage:
		return &o.CurrentPage
	case KeyWindow:
		return &o.Window
	case KeyInnerWindow:
		return &o.InnerWindow
	case KeyOuterWindow:
		return &o.OuterWindow
	case KeyLeft:
		return &o.Left
	case KeyRight:
		return &o.Right
	case KeyDecade:
		return &o.Decade
	case KeyDecadeLeft:
		return &o.DecadeLeft
	case KeyDecadeRight:
		return &o.DecadeRight
	}
	return nil
}

// ParseOptions builds Options from a string option bag such as query
// parameters or key=value arguments. Keys are the Key* constants. A value that
// is not an integer, or an unknown key, fails with ErrInvalidConfiguration.
// Empty values are treated as unset.
func ParseOptions(values map[string]string) (Options, error) {
	var o Options
	for _, key := range slices.Sorted(maps.Keys(values)) {
		raw := strings.TrimSpace(values[key])
		dst := o.field(key)
		if dst == nil {
			return Options{}, invalidf(key, raw, "unknown option")
		}
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Options{}, invalidf(key, raw, "not an integer")
		}
		*dst = &n
	}
	return o, nil
}
