package pagination

import (
	"fmt"
	"strconv"
)

// Token is a single element of a pagination range: either a page number or a gap.
// The zero value is [Gap].
type Token struct {
	page int
}

// Gap marks a run of omitted page numbers.
var Gap = Token{}

// PageToken for the given 1-indexed page number.
func PageToken(page int) Token {
	if page < 1 {
		panic("page token must be at least 1, got " + strconv.Itoa(page))
	}
	return Token{page: page}
}

// IsGap reports whether the token is a [Gap].
func (t Token) IsGap() bool {
	return t.page == 0
}

// Page number of the token, or 0 for a [Gap].
func (t Token) Page() int {
	return t.page
}

// String satisfies [fmt.Stringer].
func (t Token) String() string {
	if t.IsGap() {
		return "…"
	}
	return strconv.Itoa(t.page)
}

var _ fmt.Stringer = Token{}
