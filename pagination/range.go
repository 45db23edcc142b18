// Package pagination computes which page numbers to show in a pagination control,
// and where to put gaps between them.
package pagination

// DefaultSiblingCount is the number of pages shown on each side of the current page, unless changed with [WithSiblingCount].
const DefaultSiblingCount = 1

// gapThreshold is the shortest run of hidden pages that gets replaced with a [Gap].
// Shorter runs are shown as page numbers, since a gap would take the same space.
const gapThreshold = 2

// boundarySlots are the fixed slots next to the sibling window: first page, last page, current page, and one gap on each side.
const boundarySlots = 5

// Option for [Range] and [New].
type Option func(*config)

type config struct {
	siblingCount int
}

// WithSiblingCount sets the number of pages shown on each side of the current page.
// Negative values are treated as zero.
func WithSiblingCount(n int) Option {
	return func(c *config) {
		c.siblingCount = max(n, 0)
	}
}

func newConfig(opts []Option) config {
	c := config{siblingCount: DefaultSiblingCount}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// TotalPages for totalCount items split in pages of pageSize, rounding up.
// Returns 0 if there is nothing to paginate.
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	totalPages := totalCount / pageSize
	if totalCount%pageSize != 0 {
		totalPages++
	}
	return totalPages
}

// Range of tokens to display for the given current page.
//
// The first and last pages are always included, the current page is surrounded by its siblings,
// and runs of more than one hidden page are replaced with a [Gap].
// If everything fits without truncation, all pages are returned.
// If currentPage is 0 (not yet known) or there are no pages, the result has fewer than two tokens,
// which callers should take as "nothing to render".
// A currentPage past the last page is treated as the last page.
func Range(currentPage, totalCount, pageSize int, opts ...Option) []Token {
	c := newConfig(opts)

	totalPages := TotalPages(totalCount, pageSize)
	if totalPages == 0 || currentPage <= 0 {
		return nil
	}
	currentPage = min(currentPage, totalPages)

	// Same as totalPages <= 2*siblings+boundarySlots, without overflowing for large sibling counts.
	siblings := c.siblingCount
	if totalPages <= boundarySlots || siblings >= (totalPages-boundarySlots+1)/2 {
		return pages(1, totalPages)
	}

	// The window keeps its width at the edges by sliding inwards, so page 1 shows 1 2 3 and not just 1 2.
	// From here on, width < totalPages.
	width := 2*siblings + 1
	left := min(max(currentPage-siblings, 1), totalPages-width+1)
	right := left + width - 1

	tokens := make([]Token, 0, width+4)

	tokens = append(tokens, PageToken(1))
	tokens = appendHidden(tokens, 2, left-1)
	tokens = append(tokens, pages(max(left, 2), min(right, totalPages-1))...)
	tokens = appendHidden(tokens, min(right, totalPages-1)+1, totalPages-1)
	tokens = append(tokens, PageToken(totalPages))

	return tokens
}

// appendHidden run of pages from start to end inclusive, either as a single [Gap] or as page numbers if the run is too short.
func appendHidden(tokens []Token, start, end int) []Token {
	if end < start {
		return tokens
	}
	if end-start+1 >= gapThreshold {
		return append(tokens, Gap)
	}
	return append(tokens, pages(start, end)...)
}

// pages from start to end inclusive. Empty if end < start.
func pages(start, end int) []Token {
	if end < start {
		return nil
	}
	tokens := make([]Token, 0, end-start+1)
	for i := start; i <= end; i++ {
		tokens = append(tokens, PageToken(i))
	}
	return tokens
}
