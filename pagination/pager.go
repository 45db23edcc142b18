package pagination

// Pager is everything needed to render a pagination control for one page of results.
type Pager struct {
	CurrentPage int
	PageSize    int
	TotalCount  int
	TotalPages  int
	Tokens      []Token
}

// New [Pager] for the given current page.
// The current page is clamped to the last page, but a current page of 0 is kept, meaning the pager is not shown.
func New(currentPage, totalCount, pageSize int, opts ...Option) Pager {
	totalPages := TotalPages(totalCount, pageSize)
	currentPage = max(min(currentPage, totalPages), 0)

	return Pager{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		Tokens:      Range(currentPage, totalCount, pageSize, opts...),
	}
}

// FromOffset creates a [Pager] from an offset and limit, as used in SQL queries.
// An offset in the middle of a page belongs to that page.
func FromOffset(totalCount, limit, offset int, opts ...Option) Pager {
	if limit <= 0 {
		return New(0, totalCount, limit, opts...)
	}
	return New(max(offset, 0)/limit+1, totalCount, limit, opts...)
}

// Visible reports whether there is anything to render.
func (p Pager) Visible() bool {
	return p.CurrentPage != 0 && len(p.Tokens) >= 2
}

// HasPrevious page.
func (p Pager) HasPrevious() bool {
	return p.Visible() && p.CurrentPage > 1
}

// HasNext page.
func (p Pager) HasNext() bool {
	return p.Visible() && p.CurrentPage < p.LastPage()
}

func (p Pager) Previous() int {
	return p.CurrentPage - 1
}

func (p Pager) Next() int {
	return p.CurrentPage + 1
}

// LastPage is the page of the last token, or 0 if there are no tokens.
func (p Pager) LastPage() int {
	if len(p.Tokens) == 0 {
		return 0
	}
	return p.Tokens[len(p.Tokens)-1].Page()
}

// Truncated reports whether any pages are hidden behind a [Gap].
func (p Pager) Truncated() bool {
	for _, t := range p.Tokens {
		if t.IsGap() {
			return true
		}
	}
	return false
}

// Offset of the first item on the current page.
func (p Pager) Offset() int {
	return Offset(p.CurrentPage, p.PageSize)
}

// Limit is the number of items on a page.
func (p Pager) Limit() int {
	return p.PageSize
}

// Offset of the first item on the given page.
func Offset(page, pageSize int) int {
	if page <= 1 || pageSize <= 0 {
		return 0
	}
	return (page - 1) * pageSize
}
