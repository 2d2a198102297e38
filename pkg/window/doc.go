// Package window computes which page indicators a paginator should display.
//
// A paginator over a very large collection cannot show every page. Instead
// it shows a few bands of pages and marks the holes between them with a gap:
//
//	« ‹ 1 2 … 10 … 48 49 [50] 51 52 … 90 … 99 100 › »
//
// The bands are:
//   - the inner window: pages within Window of the current page
//   - the outer windows: the first Left and the last Right pages
//   - the decade windows: round-number shortcuts (1, 10, 20, … and
//     …, total-20, total-10, total) near either end
//
// # Basic Usage
//
//	cfg, err := window.New(100, 50, window.WithWindow(2), window.WithOuterWindow(2))
//	if err != nil {
//	    return err
//	}
//	for page := range cfg.Pages() {
//	    fmt.Println(page.Number(), page.IsCurrent(), page.IsInsideWindow())
//	}
//
// Pages yields only the relevant pages, in ascending order and without
// duplicates. The work done is bounded by the window sizes, never by the
// total page count.
//
// # Resolution Order
//
// Each window size is resolved as: explicit option, then alias option
// (InnerWindow for Window, NumPages for TotalPages), then the process-wide
// [Defaults]. A Left, Right, DecadeLeft or DecadeRight that resolves to
// exactly zero is replaced by the resolved OuterWindow or Decade value, so an
// explicit zero does not disable an outer window.
//
// # Process Defaults
//
// [CurrentDefaults] and [SetDefaults] read and replace the process-wide
// defaults. They are safe for concurrent use; a [Config] copies what it needs
// at construction and never observes later changes.
//
// # Errors
//
// Invalid input yields an error matching [ErrInvalidConfiguration] through
// errors.Is. A current page outside [1, total] is clamped, not rejected.
package window
