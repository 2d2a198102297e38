// Package kaminari computes compact pagination controls for collections of
// any size.
//
// Example usage:
//
//	tags, err := kaminari.Paginate(100, 50, kaminari.WithWindow(2), kaminari.WithDecade(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(kaminari.Text(tags)) // « ‹ 1 … 10 … 48 49 [50] 51 52 … 90 … 100 › »
//
// The window selection lives in package window and the tag sequence in
// package render; this package re-exports the common entry points.
package kaminari

import (
	"github.com/cyphoma/kaminari/pkg/render"
	"github.com/cyphoma/kaminari/pkg/window"
)

// Version is the version of the kaminari module.
const Version = "1.0.0"

type (
	// Config is a resolved window configuration for one render.
	Config = window.Config

	// Page is a relevant page with its classification predicates.
	Page = window.Page

	// Option sets one per-render option.
	Option = window.Option

	// Defaults holds the process-wide window sizes.
	Defaults = window.Defaults

	// Tag is one element of a rendered paginator.
	Tag = render.Tag
)

// ErrInvalidConfiguration is returned for options that cannot be resolved.
var ErrInvalidConfiguration = window.ErrInvalidConfiguration

// Per-render options.
var (
	WithWindow      = window.WithWindow
	WithOuterWindow = window.WithOuterWindow
	WithLeft        = window.WithLeft
	WithRight       = window.WithRight
	WithDecade      = window.WithDecade
	WithDecadeLeft  = window.WithDecadeLeft
	WithDecadeRight = window.WithDecadeRight
)

// New resolves a Config against the process defaults.
func New(totalPages, currentPage int, opts ...Option) (*Config, error) {
	return window.New(totalPages, currentPage, opts...)
}

// Paginate resolves a Config and renders its tags with a default renderer.
// It returns no tags when totalPages is at most one.
func Paginate(totalPages, currentPage int, opts ...Option) ([]Tag, error) {
	cfg, err := window.New(totalPages, currentPage, opts...)
	if err != nil {
		return nil, err
	}
	return render.New().Render(cfg), nil
}

// Text formats tags as a plain-text line.
func Text(tags []Tag) string {
	return render.Text(tags)
}

// Configure replaces the process-wide defaults.
func Configure(d Defaults) error {
	return window.SetDefaults(d)
}

// StandardDefaults returns the built-in defaults.
func StandardDefaults() Defaults {
	return window.StandardDefaults()
}
