package sql

import (
	"context"
	goerrors "errors"
	"strings"

	"github.com/google/uuid"
	"maragu.dev/errors"

	"maragu.dev/pager/model"
)

// CreateItem with the given name, returning it with its generated ID and creation time.
func (h *Helper) CreateItem(ctx context.Context, name string) (model.Item, error) {
	var i model.Item
	err := h.InTx(ctx, func(ctx context.Context, tx *Tx) error {
		id := model.ItemID("i_" + strings.ReplaceAll(uuid.NewString(), "-", ""))
		if err := tx.Exec(ctx, `insert into items (id, name) values (?, ?)`, id, name); err != nil {
			return errors.Wrap(err, "error inserting item")
		}
		if err := tx.Get(ctx, &i, `select id, name, created from items where id = ?`, id); err != nil {
			return errors.Wrap(err, "error getting inserted item")
		}
		return nil
	})
	return i, err
}

// GetItem by ID. Returns [model.ErrorItemNotFound] if there is no such item.
func (h *Helper) GetItem(ctx context.Context, id model.ItemID) (model.Item, error) {
	var i model.Item
	if err := h.Get(ctx, &i, `select id, name, created from items where id = ?`, id); err != nil {
		if goerrors.Is(err, ErrNoRows) {
			return i, model.ErrorItemNotFound
		}
		return i, errors.Wrap(err, "error getting item")
	}
	return i, nil
}

// CountItems matching the filter.
func (h *Helper) CountItems(ctx context.Context, f model.ItemFilter) (int, error) {
	var count int
	if err := h.Get(ctx, &count, `select count(*) from items where lower(name) like ? escape '\'`, likePattern(f.Query)); err != nil {
		return 0, errors.Wrap(err, "error counting items")
	}
	return count, nil
}

// GetItems matching the filter, newest first, skipping offset items and returning at most limit items.
func (h *Helper) GetItems(ctx context.Context, f model.ItemFilter, limit, offset int) ([]model.Item, error) {
	var items []model.Item
	query := `
		select id, name, created from items
		where lower(name) like ? escape '\'
		order by created desc, id desc
		limit ? offset ?`
	if err := h.Select(ctx, &items, query, likePattern(f.Query), limit, offset); err != nil {
		return nil, errors.Wrap(err, "error getting items")
	}
	return items, nil
}

// likePattern matching names that contain q, with LIKE wildcards in q escaped.
func likePattern(q string) string {
	q = strings.ToLower(q)
	q = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(q)
	return "%" + q + "%"
}
