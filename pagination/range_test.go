package pagination_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"maragu.dev/is"

	"maragu.dev/pager/pagination"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name         string
		currentPage  int
		totalCount   int
		pageSize     int
		siblingCount int
		expected     string
	}{
		{
			name:         "should show first pages and a right gap on the first page",
			currentPage:  1,
			totalCount:   100,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1 2 3 … 10",
		},
		{
			name:         "should show gaps on both sides in the middle",
			currentPage:  5,
			totalCount:   100,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1 … 4 5 6 … 10",
		},
		{
			name:         "should show last pages and a left gap on the last page",
			currentPage:  10,
			totalCount:   100,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1 … 8 9 10",
		},
		{
			name:         "should show all pages when they fit",
			currentPage:  3,
			totalCount:   40,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1 2 3 4",
		},
		{
			name:         "should show all pages at exactly the truncation limit",
			currentPage:  1,
			totalCount:   70,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1 2 3 4 5 6 7",
		},
		{
			name:         "should truncate one page past the truncation limit",
			currentPage:  1,
			totalCount:   80,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1 2 3 … 8",
		},
		{
			name:         "should show a single hidden page on the left instead of a gap",
			currentPage:  4,
			totalCount:   100,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1 2 3 4 5 … 10",
		},
		{
			name:         "should show a single hidden page on the right instead of a gap",
			currentPage:  7,
			totalCount:   100,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1 … 6 7 8 9 10",
		},
		{
			name:         "should use a gap for two hidden pages",
			currentPage:  5,
			totalCount:   100,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1 … 4 5 6 … 10",
		},
		{
			name:         "should slide the window inwards on the second page",
			currentPage:  2,
			totalCount:   100,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1 2 3 … 10",
		},
		{
			name:         "should show only the current page with zero siblings",
			currentPage:  5,
			totalCount:   100,
			pageSize:     10,
			siblingCount: 0,
			expected:     "1 … 5 … 10",
		},
		{
			name:         "should show boundaries and gap with zero siblings on the first page",
			currentPage:  1,
			totalCount:   100,
			pageSize:     10,
			siblingCount: 0,
			expected:     "1 … 10",
		},
		{
			name:         "should show more siblings",
			currentPage:  50,
			totalCount:   1000,
			pageSize:     10,
			siblingCount: 2,
			expected:     "1 … 48 49 50 51 52 … 100",
		},
		{
			name:         "should round up a partial last page",
			currentPage:  1,
			totalCount:   95,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1 2 3 … 10",
		},
		{
			name:         "should treat a current page past the end as the last page",
			currentPage:  42,
			totalCount:   100,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1 … 8 9 10",
		},
		{
			name:         "should return a single page",
			currentPage:  1,
			totalCount:   5,
			pageSize:     10,
			siblingCount: 1,
			expected:     "1",
		},
		{
			name:         "should return nothing for an uninitialized current page",
			currentPage:  0,
			totalCount:   100,
			pageSize:     10,
			siblingCount: 1,
			expected:     "",
		},
		{
			name:         "should return nothing for no items",
			currentPage:  1,
			totalCount:   0,
			pageSize:     10,
			siblingCount: 1,
			expected:     "",
		},
		{
			name:         "should return nothing for a zero page size",
			currentPage:  1,
			totalCount:   100,
			pageSize:     0,
			siblingCount: 1,
			expected:     "",
		},
		{
			name:         "should show all pages for the largest sibling count",
			currentPage:  5,
			totalCount:   100,
			pageSize:     10,
			siblingCount: math.MaxInt,
			expected:     "1 2 3 4 5 6 7 8 9 10",
		},
		{
			name:         "should show all pages for half the largest sibling count",
			currentPage:  5,
			totalCount:   100,
			pageSize:     10,
			siblingCount: math.MaxInt / 2,
			expected:     "1 2 3 4 5 6 7 8 9 10",
		},
		{
			name:         "should truncate the largest number of pages",
			currentPage:  math.MaxInt,
			totalCount:   math.MaxInt,
			pageSize:     1,
			siblingCount: 1,
			expected:     fmt.Sprintf("1 … %d %d %d", math.MaxInt-2, math.MaxInt-1, math.MaxInt),
		},
		{
			name:         "should show the start of the largest number of pages",
			currentPage:  1,
			totalCount:   math.MaxInt,
			pageSize:     1,
			siblingCount: 1,
			expected:     fmt.Sprintf("1 2 3 … %d", math.MaxInt),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tokens := pagination.Range(test.currentPage, test.totalCount, test.pageSize, pagination.WithSiblingCount(test.siblingCount))
			is.Equal(t, test.expected, join(tokens))
		})
	}

	t.Run("should default to one sibling", func(t *testing.T) {
		tokens := pagination.Range(5, 100, 10)
		is.Equal(t, "1 … 4 5 6 … 10", join(tokens))
	})

	t.Run("should treat negative sibling count as zero", func(t *testing.T) {
		tokens := pagination.Range(5, 100, 10, pagination.WithSiblingCount(-3))
		is.Equal(t, "1 … 5 … 10", join(tokens))
	})
}

func TestRange_Invariants(t *testing.T) {
	for siblingCount := range 4 {
		for totalPages := 1; totalPages <= 30; totalPages++ {
			for currentPage := 1; currentPage <= totalPages; currentPage++ {
				name := fmt.Sprintf("siblings=%d total=%d current=%d", siblingCount, totalPages, currentPage)

				tokens := pagination.Range(currentPage, totalPages*10, 10, pagination.WithSiblingCount(siblingCount))

				t.Run(name, func(t *testing.T) {
					checkInvariants(t, tokens, currentPage, totalPages, siblingCount)
				})
			}
		}
	}
}

func checkInvariants(t *testing.T, tokens []pagination.Token, currentPage, totalPages, siblingCount int) {
	t.Helper()

	is.True(t, len(tokens) > 0)
	is.Equal(t, 1, tokens[0].Page())
	is.Equal(t, totalPages, tokens[len(tokens)-1].Page())

	var hasGap, hasCurrent bool
	previous := 0
	for i, token := range tokens {
		if token.IsGap() {
			hasGap = true
			is.True(t, i > 0 && i < len(tokens)-1)
			is.True(t, !tokens[i-1].IsGap() && !tokens[i+1].IsGap())
			// A gap must hide at least two pages
			is.True(t, tokens[i+1].Page()-tokens[i-1].Page()-1 >= 2)
			continue
		}

		is.True(t, token.Page() > previous)
		if previous > 0 && !tokens[i-1].IsGap() {
			is.Equal(t, previous+1, token.Page())
		}
		previous = token.Page()

		if token.Page() == currentPage {
			hasCurrent = true
		}
	}

	is.True(t, hasCurrent)

	if totalPages <= 2*siblingCount+5 {
		is.True(t, !hasGap)
		is.Equal(t, totalPages, len(tokens))
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		totalCount, pageSize, expected int
	}{
		{95, 10, 10},
		{100, 10, 10},
		{101, 10, 11},
		{1, 10, 1},
		{0, 10, 0},
		{10, 0, 0},
		{-1, 10, 0},
		{math.MaxInt, 10, math.MaxInt/10 + 1},
		{math.MaxInt, 1, math.MaxInt},
		{math.MaxInt, math.MaxInt, 1},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d/%d", test.totalCount, test.pageSize), func(t *testing.T) {
			is.Equal(t, test.expected, pagination.TotalPages(test.totalCount, test.pageSize))
		})
	}
}

func TestToken(t *testing.T) {
	t.Run("should be a gap by default", func(t *testing.T) {
		var token pagination.Token
		is.True(t, token.IsGap())
		is.Equal(t, 0, token.Page())
		is.Equal(t, "…", token.String())
	})

	t.Run("should hold a page number", func(t *testing.T) {
		token := pagination.PageToken(7)
		is.True(t, !token.IsGap())
		is.Equal(t, 7, token.Page())
		is.Equal(t, "7", token.String())
	})

	t.Run("should panic on page numbers below one", func(t *testing.T) {
		defer func() {
			is.True(t, recover() != nil)
		}()
		pagination.PageToken(0)
	})
}

func join(tokens []pagination.Token) string {
	var parts []string
	for _, token := range tokens {
		parts = append(parts, token.String())
	}
	return strings.Join(parts, " ")
}
