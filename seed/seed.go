// Package seed loads the sample Revontulet Flamehouse menu into a store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/IrumShehryar/Restaurant-Website/models"
	"github.com/IrumShehryar/Restaurant-Website/services"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

type menuFile struct {
	Items []menuEntry `yaml:"items"`
}

type menuEntry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	Category    string   `yaml:"category"`
	Image       string   `yaml:"image"`
	Dietary     []string `yaml:"dietary"`
	Allergens   []string `yaml:"allergens"`
	DaysOfWeek  []string `yaml:"days_of_week"`
	Active      *bool    `yaml:"active"`
}

func (e menuEntry) input() models.MenuItemInput {
	return models.MenuItemInput{
		Name:        &e.Name,
		Description: e.Description,
		Price:       &e.Price,
		Category:    &e.Category,
		Image:       e.Image,
		Dietary:     e.Dietary,
		Allergens:   e.Allergens,
		DaysOfWeek:  e.DaysOfWeek,
		Active:      e.Active,
	}
}

// Load reads a menu file. An empty path selects the embedded sample menu.
func Load(path string) ([]models.MenuItemInput, error) {
	if path == "" {
		return Parse(defaultMenu)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML menu document.
func Parse(data []byte) ([]models.MenuItemInput, error) {
	var f menuFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("menu file has no items")
	}

	inputs := make([]models.MenuItemInput, 0, len(f.Items))
	for _, e := range f.Items {
		inputs = append(inputs, e.input())
	}
	return inputs, nil
}

// Menu creates every item through the menu service, so seeded items pass
// the same validation as API requests. With clear set, existing items are
// deleted first. It returns the number of items created.
func Menu(ctx context.Context, svc *services.MenuService, items []models.MenuItemInput, clear bool) (int, error) {
	if clear {
		existing, err := svc.List(ctx)
		if err != nil {
			return 0, err
		}
		for _, item := range existing {
			if err := svc.Delete(ctx, models.FormatID(item.ID)); err != nil {
				return 0, err
			}
		}
		slog.Info("cleared menu", "deleted", len(existing))
	}

	for i, in := range items {
		if _, err := svc.Create(ctx, in); err != nil {
			return i, fmt.Errorf("seed item %d: %w", i, err)
		}
	}

	slog.Info("seeded menu", "items", len(items))
	return len(items), nil
}

// MenuIfEmpty seeds items only when the store holds no menu items yet.
func MenuIfEmpty(ctx context.Context, svc *services.MenuService, items []models.MenuItemInput) (int, error) {
	existing, err := svc.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		slog.Debug("menu already populated, skipping seed", "items", len(existing))
		return 0, nil
	}
	return Menu(ctx, svc, items, false)
}
