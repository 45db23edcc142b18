package html

import (
	"net/url"

	"github.com/justincampbell/timeago"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"maragu.dev/pager/model"
	"maragu.dev/pager/pagination"
)

type ItemsPageProps struct {
	Items []model.Item
	Pager pagination.Pager
	// Path of the listing, used for pagination links.
	Path string
	// Query values to keep in pagination links, such as the search query.
	Query  url.Values
	Search string
}

func ItemsPage(page PageFunc, props PageProps, ip ItemsPageProps) Node {
	return page(props,
		H1(Class("text-2xl font-bold mb-4"), Text(props.Title)),

		Form(Method("get"), Action(ip.Path), Class("mb-4 flex gap-2"),
			Input(Type("search"), Name("q"), Value(ip.Search), Placeholder("Search"), Class("border rounded-md px-3 py-2")),
			Button(Type("submit"), Class("px-3 py-2 rounded-md bg-primary-600 text-white"), Text("Search")),
		),

		If(len(ip.Items) == 0, P(Class("text-gray-500"), Text("No items."))),

		If(len(ip.Items) > 0,
			Table(Class("w-full mb-4"),
				THead(Tr(Th(Class("text-left"), Text("Name")), Th(Class("text-left"), Text("Created")))),
				TBody(Map(ip.Items, func(i model.Item) Node {
					return Tr(
						Td(A(Href("/items/"+url.PathEscape(i.ID.String())), Text(i.Name))),
						Td(Class("text-gray-500"), Text(timeago.FromTime(i.Created))),
					)
				})),
			),
		),

		P(Class("text-sm text-gray-500 mb-2"), Textf("%d items", ip.Pager.TotalCount)),

		Pagination(ip.Pager, PageHref(ip.Path, ip.Query), ""),
	)
}

func ItemPage(page PageFunc, props PageProps, i model.Item) Node {
	return page(props,
		H1(Class("text-2xl font-bold mb-4"), Text(i.Name)),
		P(Class("text-gray-500"), Text("Created "+timeago.FromTime(i.Created))),
		A(Href("/"), Class("text-primary-600 underline"), Text("Back to items")),
	)
}
