package pagination_test

import (
	"testing"

	"maragu.dev/is"

	"maragu.dev/pager/pagination"
)

func TestNew(t *testing.T) {
	t.Run("should have previous and next in the middle", func(t *testing.T) {
		p := pagination.New(5, 100, 10)
		is.True(t, p.Visible())
		is.True(t, p.HasPrevious())
		is.True(t, p.HasNext())
		is.Equal(t, 4, p.Previous())
		is.Equal(t, 6, p.Next())
		is.Equal(t, 10, p.TotalPages)
		is.Equal(t, 10, p.LastPage())
		is.True(t, p.Truncated())
	})

	t.Run("should not have previous on the first page", func(t *testing.T) {
		p := pagination.New(1, 100, 10)
		is.True(t, !p.HasPrevious())
		is.True(t, p.HasNext())
	})

	t.Run("should not have next on the last page", func(t *testing.T) {
		p := pagination.New(10, 100, 10)
		is.True(t, p.HasPrevious())
		is.True(t, !p.HasNext())
	})

	t.Run("should not be visible with a single page", func(t *testing.T) {
		p := pagination.New(1, 3, 10)
		is.True(t, !p.Visible())
		is.True(t, !p.HasPrevious())
		is.True(t, !p.HasNext())
	})

	t.Run("should not be visible without a current page", func(t *testing.T) {
		p := pagination.New(0, 100, 10)
		is.True(t, !p.Visible())
		is.Equal(t, 0, len(p.Tokens))
	})

	t.Run("should not be visible without items", func(t *testing.T) {
		p := pagination.New(1, 0, 10)
		is.True(t, !p.Visible())
		is.Equal(t, 0, p.CurrentPage)
		is.Equal(t, 0, p.Offset())
	})

	t.Run("should clamp the current page to the last page", func(t *testing.T) {
		p := pagination.New(12, 100, 10)
		is.Equal(t, 10, p.CurrentPage)
		is.Equal(t, 90, p.Offset())
	})

	t.Run("should not be truncated when all pages fit", func(t *testing.T) {
		p := pagination.New(2, 40, 10)
		is.True(t, !p.Truncated())
	})

	t.Run("should pass sibling count on", func(t *testing.T) {
		p := pagination.New(5, 100, 10, pagination.WithSiblingCount(0))
		is.Equal(t, "1 … 5 … 10", join(p.Tokens))
	})
}

func TestFromOffset(t *testing.T) {
	t.Run("should compute the current page from offset and limit", func(t *testing.T) {
		p := pagination.FromOffset(100, 10, 40)
		is.Equal(t, 5, p.CurrentPage)
		is.Equal(t, 40, p.Offset())
		is.Equal(t, 10, p.Limit())
	})

	t.Run("should put an offset in the middle of a page on that page", func(t *testing.T) {
		p := pagination.FromOffset(100, 10, 45)
		is.Equal(t, 5, p.CurrentPage)
	})

	t.Run("should start on the first page for a negative offset", func(t *testing.T) {
		p := pagination.FromOffset(100, 10, -5)
		is.Equal(t, 1, p.CurrentPage)
	})

	t.Run("should not be visible for a zero limit", func(t *testing.T) {
		p := pagination.FromOffset(100, 0, 0)
		is.True(t, !p.Visible())
	})
}

func TestOffset(t *testing.T) {
	t.Run("should be zero on the first page", func(t *testing.T) {
		is.Equal(t, 0, pagination.Offset(1, 20))
	})

	t.Run("should skip previous pages", func(t *testing.T) {
		is.Equal(t, 40, pagination.Offset(3, 20))
	})

	t.Run("should be zero for invalid input", func(t *testing.T) {
		is.Equal(t, 0, pagination.Offset(0, 20))
		is.Equal(t, 0, pagination.Offset(3, 0))
	})
}
