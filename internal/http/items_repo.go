package httpapi

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/storage"
)

// ItemsRepo is the read-only catalog the handlers serve from.
type ItemsRepo interface {
	All(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, id int) (domain.Item, error)
	List(ctx context.Context, p ListParams) ([]domain.Item, int, error)
}

type ListParams struct {
	Limit  int
	Offset int
	Filter storage.ItemFilter
}

// MemoryItemsRepo serves a catalog loaded from a JSON or YAML file.
type MemoryItemsRepo struct {
	Items []domain.Item
}

func (r *MemoryItemsRepo) All(ctx context.Context) ([]domain.Item, error) {
	return r.Items, nil
}

func (r *MemoryItemsRepo) Get(ctx context.Context, id int) (domain.Item, error) {
	for _, it := range r.Items {
		if it.ID == id {
			return it, nil
		}
	}
	return domain.Item{}, fmt.Errorf("item %d: %w", id, storage.ErrNotFound)
}

func (r *MemoryItemsRepo) List(ctx context.Context, p ListParams) ([]domain.Item, int, error) {
	f := p.Filter
	matched := make([]domain.Item, 0, len(r.Items))
	for _, it := range r.Items {
		if f.Heat.IsSet() && it.HeatCategory != f.Heat {
			continue
		}
		if f.Type.IsSet() && it.Type != f.Type {
			continue
		}
		if f.ContainerOnly && !it.ContainerFriendly {
			continue
		}
		matched = append(matched, it)
	}

	slices.SortStableFunc(matched, listOrder(f.Sort))

	total := len(matched)
	offset := min(p.Offset, total)
	end := min(offset+p.Limit, total)
	return matched[offset:end], total, nil
}

// listOrder mirrors the ORDER BY clauses of storage.SQLiteStore.
func listOrder(sort string) func(a, b domain.Item) int {
	byID := func(a, b domain.Item) int { return cmp.Compare(a.ID, b.ID) }
	switch sort {
	case "heat_asc":
		return func(a, b domain.Item) int {
			return cmp.Or(cmp.Compare(a.HeatSHUMax, b.HeatSHUMax), byID(a, b))
		}
	case "heat_desc":
		return func(a, b domain.Item) int {
			return cmp.Or(cmp.Compare(b.HeatSHUMax, a.HeatSHUMax), byID(a, b))
		}
	case "name":
		return func(a, b domain.Item) int {
			return cmp.Or(strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)), byID(a, b))
		}
	case "maturity":
		return func(a, b domain.Item) int {
			return cmp.Or(cmp.Compare(a.DaysToMaturityMin, b.DaysToMaturityMin), byID(a, b))
		}
	}
	return byID
}

// SQLiteItemsRepo serves the catalog from a seeded SQLite database.
type SQLiteItemsRepo struct {
	Store *storage.SQLiteStore
}

func (r *SQLiteItemsRepo) All(ctx context.Context) ([]domain.Item, error) {
	return r.Store.AllItems()
}

func (r *SQLiteItemsRepo) Get(ctx context.Context, id int) (domain.Item, error) {
	return r.Store.GetItem(id)
}

func (r *SQLiteItemsRepo) List(ctx context.Context, p ListParams) ([]domain.Item, int, error) {
	return r.Store.ListItemsFiltered(p.Limit, p.Offset, p.Filter)
}
