package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	. "maragu.dev/gomponents"
	"maragu.dev/httph"

	"maragu.dev/pager/html"
	"maragu.dev/pager/model"
	"maragu.dev/pager/pagination"
)

const maxLimit = 100

const sessionLimitKey = "limit"

type itemLister interface {
	CountItems(ctx context.Context, f model.ItemFilter) (int, error)
	GetItems(ctx context.Context, f model.ItemFilter, limit, offset int) ([]model.Item, error)
}

type itemGetter interface {
	GetItem(ctx context.Context, id model.ItemID) (model.Item, error)
}

type sessionIntGetPutter interface {
	GetInt(ctx context.Context, key string) int
	Put(ctx context.Context, key string, val any)
}

// Items lists items matching the q query parameter, paginated with the page and limit query parameters.
// A limit given in the query is remembered in the session for later requests without one.
func Items(r *Router, log *slog.Logger, db itemLister, sm sessionIntGetPutter, page html.PageFunc, defaultLimit int) {
	r.Get("/", func(props html.PageProps) (Node, error) {
		query := props.R.URL.Query()

		search := SanitizeQuery(query.Get("q"))
		currentPage := parsePositiveInt(query.Get("page"), 1)

		limit := defaultLimit
		queryLimit := parsePositiveInt(query.Get("limit"), 0)
		if queryLimit > 0 {
			limit = clampLimit(queryLimit)
			sm.Put(props.Ctx, sessionLimitKey, limit)
		} else if sessionLimit := sm.GetInt(props.Ctx, sessionLimitKey); sessionLimit > 0 {
			limit = clampLimit(sessionLimit)
		}

		f := model.ItemFilter{Query: search}

		count, err := db.CountItems(props.Ctx, f)
		if err != nil {
			log.Info("Error counting items", "error", err)
			return html.ErrorPage(page), err
		}

		p := pagination.New(currentPage, count, limit)
		SetPaginationAttributes(props.Ctx, p)

		var items []model.Item
		if count > 0 {
			items, err = db.GetItems(props.Ctx, f, p.Limit(), p.Offset())
			if err != nil {
				log.Info("Error getting items", "error", err)
				return html.ErrorPage(page), err
			}
		}

		linkQuery := url.Values{}
		if search != "" {
			linkQuery.Set("q", search)
		}
		if queryLimit > 0 {
			linkQuery.Set("limit", strconv.Itoa(limit))
		}

		props.Title = "Items"
		return html.ItemsPage(page, props, html.ItemsPageProps{
			Items:  items,
			Pager:  p,
			Path:   props.R.URL.Path,
			Query:  linkQuery,
			Search: search,
		}), nil
	})
}

// Item shows a single item.
func Item(r *Router, log *slog.Logger, db itemGetter, page html.PageFunc) {
	r.Get("/items/{id}", func(props html.PageProps) (Node, error) {
		id := model.ItemID(chi.URLParam(props.R, "id"))

		i, err := db.GetItem(props.Ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrorItemNotFound) {
				return html.NotFoundPage(page), httph.HTTPError{Code: http.StatusNotFound}
			}
			log.Info("Error getting item", "error", err, "id", id)
			return html.ErrorPage(page), err
		}

		props.Title = i.Name
		return html.ItemPage(page, props, i), nil
	})
}

// parsePositiveInt from v, or return the fallback if v is not a positive integer.
func parsePositiveInt(v string, fallback int) int {
	i, err := strconv.Atoi(v)
	if err != nil || i < 1 {
		return fallback
	}
	return i
}

// clampLimit to between 1 and [maxLimit].
func clampLimit(limit int) int {
	return min(max(limit, 1), maxLimit)
}
