// Package render turns a window.Config into the sequence of pagination tags a
// view would draw: first, prev, page links, gaps, next and last.
//
// It emits tag values, not markup; callers map each [Tag] to HTML, a
// terminal line, or JSON.
//
//	cfg, err := window.New(100, 50, window.WithWindow(2))
//	if err != nil {
//	    return err
//	}
//	tags := render.New().Render(cfg)
//	fmt.Println(render.Text(tags)) // « ‹ 1 … 48 49 [50] 51 52 … 100 › »
package render

import (
	"github.com/cyphoma/kaminari/pkg/log"
	"github.com/cyphoma/kaminari/pkg/window"
)

// Renderer walks the relevant pages of a Config and decides which tag each
// one becomes. A Renderer holds no per-render state and may be shared.
type Renderer struct {
	logger log.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(logger log.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the tags for cfg. A collection of at most one page renders
// nothing.
//
// A relevant page becomes a Page tag when it lies in an outer, inner or decade
// window. Otherwise it becomes a Gap, unless the previous tag already was one.
// A Gap is also placed between two Page tags whose numbers are not adjacent.
func (r *Renderer) Render(cfg *window.Config) []Tag {
	if cfg.TotalPages() <= 1 {
		r.logger.Debug("pagination suppressed", log.Int("total_pages", cfg.TotalPages()))
		return nil
	}

	current := cfg.Current()
	tags := make([]Tag, 0, 16)
	if !current.IsFirst() {
		tags = append(tags,
			Tag{Kind: KindFirst, Page: 1},
			Tag{Kind: KindPrev, Page: current.Sub(1)},
		)
	}

	var (
		last      window.Page
		started   bool
		truncated bool
	)
	for page := range cfg.Pages() {
		switch {
		case displayed(page):
			if started && !truncated && page.Distance(last) > 1 {
				tags = append(tags, Tag{Kind: KindGap})
			}
			tags = append(tags, Tag{Kind: KindPage, Page: page.Number(), Current: page.IsCurrent()})
			truncated = false
		case !truncated:
			tags = append(tags, Tag{Kind: KindGap})
			truncated = true
		}
		last, started = page, true
	}

	if !current.IsLast() {
		tags = append(tags,
			Tag{Kind: KindNext, Page: current.Add(1)},
			Tag{Kind: KindLast, Page: cfg.TotalPages()},
		)
	}

	r.logger.Debug("pagination rendered",
		log.Int("total_pages", cfg.TotalPages()),
		log.Int("current_page", cfg.CurrentPage()),
		log.Int("tags", len(tags)),
	)
	return tags
}

func displayed(p window.Page) bool {
	return p.IsLeftOuter() || p.IsRightOuter() || p.IsInsideWindow() ||
		p.IsLeftDecade() || p.IsRightDecade()
}
