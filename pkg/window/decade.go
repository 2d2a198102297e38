package window

import "slices"

// LeftDecade returns the round-number pages near the start of a collection:
// 1, then 10, 20, … up to and including n*10, limited to [1, total].
// It returns nil when n or total is not positive.
func LeftDecade(n, total int) []int {
	if n <= 0 || total < 1 {
		return nil
	}
	limit := total
	if n <= total/10 {
		limit = n * 10
	}

	pages := make([]int, 0, limit/10+1)
	pages = append(pages, 1)
	for p := 10; p <= limit; p += 10 {
		pages = append(pages, p)
	}
	return pages
}

// RightDecade returns the round-number pages near the end of a collection:
// total, then every multiple of ten below it down to total-n*10. The lower
// bound is included even when it is not a multiple of ten. Pages below 1 are
// dropped and the result is ascending. It returns nil when n or total is not
// positive.
func RightDecade(n, total int) []int {
	if n <= 0 || total < 1 {
		return nil
	}
	lower := 0
	if n <= total/10 {
		lower = total - n*10
	}

	pages := make([]int, 0, n+2)
	pages = append(pages, total)
	for p := (total - 1) / 10 * 10; p >= max(lower, 1); p -= 10 {
		pages = append(pages, p)
	}
	if lower >= 1 && lower%10 != 0 && lower != total {
		pages = append(pages, lower)
	}

	slices.Sort(pages)
	return pages
}
