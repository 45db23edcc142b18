package html

import (
	"net/url"
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"maragu.dev/pager/metrics"
	"maragu.dev/pager/pagination"
)

// HrefFunc returns the link to the given page.
type HrefFunc = func(page int) string

const paginationButtonClass = "px-3 py-2 text-sm font-medium rounded-md min-w-12 text-center select-none"

// Pagination control for the given [pagination.Pager].
// href is only ever called with pages between 1 and the last page.
// Renders nothing if there is nothing to paginate.
func Pagination(p pagination.Pager, href HrefFunc, class string) Node {
	if !p.Visible() {
		return Group{}
	}

	metrics.RecordPaginationRender(p.Truncated())

	return Nav(Aria("label", "Pagination"),
		Ul(Classes{"flex flex-wrap items-center justify-center gap-1": true, class: class != ""},
			Iff(p.HasPrevious(), func() Node {
				return Li(PaginationButtonPrevious(href(p.Previous())))
			}),

			Map(p.Tokens, func(t pagination.Token) Node {
				if t.IsGap() {
					return Li(PaginationButtonGap())
				}

				if t.Page() == p.CurrentPage {
					return Li(PaginationButtonCurrent(t.Page()))
				}

				return Li(PaginationButtonNavigate(href(t.Page()), t.Page()))
			}),

			Iff(p.HasNext(), func() Node {
				return Li(PaginationButtonNext(href(p.Next())))
			}),
		),
	)
}

func PaginationButtonCurrent(page int) Node {
	return Span(Class(paginationButtonClass+" text-white bg-primary-600"), Aria("current", "page"), Textf("%d", page))
}

func PaginationButtonNavigate(href string, page int) Node {
	return A(Href(href), Class(paginationButtonClass+" text-gray-700 hover:bg-gray-100"), Textf("%d", page))
}

func PaginationButtonGap() Node {
	return Span(Class(paginationButtonClass+" text-gray-400"), Text("…"))
}

func PaginationButtonPrevious(href string) Node {
	return A(Href(href), Rel("prev"), Aria("label", "Previous page"), Class(paginationButtonClass+" text-gray-700 hover:bg-gray-100"), Text("«"))
}

func PaginationButtonNext(href string) Node {
	return A(Href(href), Rel("next"), Aria("label", "Next page"), Class(paginationButtonClass+" text-gray-700 hover:bg-gray-100"), Text("»"))
}

// PageHref links to path with a page query parameter, keeping the other query values.
func PageHref(path string, query url.Values) HrefFunc {
	return func(page int) string {
		vs := cloneValues(query)
		vs.Set("page", strconv.Itoa(page))
		return path + "?" + vs.Encode()
	}
}

// OffsetHref links to path with offset and limit query parameters, keeping the other query values.
func OffsetHref(path string, query url.Values, limit int) HrefFunc {
	return func(page int) string {
		vs := cloneValues(query)
		vs.Set("offset", strconv.Itoa(pagination.Offset(page, limit)))
		vs.Set("limit", strconv.Itoa(limit))
		return path + "?" + vs.Encode()
	}
}

func cloneValues(vs url.Values) url.Values {
	clone := url.Values{}
	for k, v := range vs {
		clone[k] = append([]string(nil), v...)
	}
	return clone
}
