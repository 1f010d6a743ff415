package services

import (
	"context"

	"github.com/IrumShehryar/Restaurant-Website/models"
	"github.com/IrumShehryar/Restaurant-Website/store"
)

// MenuService is the menu resource: it turns external ids into store keys,
// validates payloads and delegates persistence to the record store.
type MenuService struct {
	store store.MenuStore
}

func NewMenuService(s store.MenuStore) *MenuService {
	return &MenuService{store: s}
}

// List returns every menu item in insertion order.
func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.store.ListMenuItems(ctx)
}

// Get fails with MALFORMED_INPUT when id is not a valid key and with
// NOT_FOUND when no item has that key.
func (s *MenuService) Get(ctx context.Context, id string) (models.MenuItem, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return models.MenuItem{}, err
	}
	return s.store.GetMenuItem(ctx, oid)
}

func (s *MenuService) Create(ctx context.Context, in models.MenuItemInput) (models.MenuItem, error) {
	if err := validateStruct("menu item", in); err != nil {
		return models.MenuItem{}, err
	}

	item := in.MenuItem()
	if err := validateStruct("menu item", item); err != nil {
		return models.MenuItem{}, err
	}

	return s.store.CreateMenuItem(ctx, item)
}

// Update overwrites only the fields present in patch. The merged record is
// validated before anything is written.
func (s *MenuService) Update(ctx context.Context, id string, patch models.MenuItemPatch) (models.MenuItem, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return models.MenuItem{}, err
	}

	existing, err := s.store.GetMenuItem(ctx, oid)
	if err != nil {
		return models.MenuItem{}, err
	}

	patch.Normalize()
	if err := validateStruct("menu item", patch.Apply(existing)); err != nil {
		return models.MenuItem{}, err
	}

	if patch.IsEmpty() {
		return existing, nil
	}
	return s.store.UpdateMenuItem(ctx, oid, patch)
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	oid, err := models.ParseID(id)
	if err != nil {
		return err
	}
	return s.store.DeleteMenuItem(ctx, oid)
}

// CategoryGroup is one section of the printed menu.
type CategoryGroup struct {
	Category models.Category
	Items    []models.MenuItem
}

// ActiveMenu returns active items grouped by category in menu display
// order. Empty categories are omitted.
func (s *MenuService) ActiveMenu(ctx context.Context) ([]CategoryGroup, error) {
	items, err := s.store.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(items), nil
}

func GroupByCategory(items []models.MenuItem) []CategoryGroup {
	byCategory := make(map[models.Category][]models.MenuItem)
	for _, item := range items {
		if item.Active {
			byCategory[item.Category] = append(byCategory[item.Category], item)
		}
	}

	var groups []CategoryGroup
	for _, c := range models.Categories {
		if len(byCategory[c]) > 0 {
			groups = append(groups, CategoryGroup{Category: c, Items: byCategory[c]})
		}
	}
	return groups
}
