package html

import (
	"context"
	"net/http"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

type PageProps struct {
	Title       string
	Description string
	Ctx         context.Context
	R           *http.Request
	W           http.ResponseWriter
}

type PageFunc = func(props PageProps, children ...Node) Node

// Page is the default [PageFunc], with the Tailwind CDN for styles.
func Page(props PageProps, children ...Node) Node {
	return HTML5(HTML5Props{
		Title:       props.Title,
		Description: props.Description,
		Language:    "en",
		Head: []Node{
			Script(Src("https://cdn.tailwindcss.com")),
		},
		Body: []Node{Class("bg-gray-50 text-gray-900"),
			Container(true, true, Group(children)),
		},
	})
}

func Container(padX, padY bool, children ...Node) Node {
	return Div(
		Classes{
			"max-w-7xl mx-auto":     true,
			"px-4 md:px-8 lg:px-16": padX,
			"py-4 md:py-8":          padY,
		},
		Group(children),
	)
}

func NotFoundPage(page PageFunc) Node {
	return page(PageProps{Title: "Not found"},
		H1(Class("text-2xl font-bold"), Text("Not found")),
		P(Text("There's nothing here.")),
		A(Href("/"), Class("text-primary-600 underline"), Text("Go back to the start")),
	)
}

func ErrorPage(page PageFunc) Node {
	return page(PageProps{Title: "Something went wrong"},
		H1(Class("text-2xl font-bold"), Text("Something went wrong")),
		P(Text("Please try again in a moment.")),
	)
}
