package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IrumShehryar/Restaurant-Website/models"
)

// Submission kinds stored in the shared submissions table.
const (
	kindReservation = "reservation"
	kindOrder       = "order"
	kindContact     = "contact"
)

const menuColumns = "id, name, description, price, category, image, dietary, allergens, days_of_week, active"

// menuRow holds the scanned columns of one menu_items row.
type menuRow struct {
	id, name, description, category, image string
	price                                  float64
	dietary, allergens, days               string
	active                                 bool
}

func (r *menuRow) dest() []any {
	return []any{&r.id, &r.name, &r.description, &r.price, &r.category, &r.image,
		&r.dietary, &r.allergens, &r.days, &r.active}
}

func (r *menuRow) menuItem() (models.MenuItem, error) {
	id, err := models.ParseID(strings.TrimSpace(r.id))
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("stored id %q: %w", r.id, err)
	}
	item := models.MenuItem{
		ID:          id,
		Name:        r.name,
		Description: r.description,
		Price:       r.price,
		Category:    models.Category(r.category),
		Image:       r.image,
		Active:      r.active,
	}
	if item.Dietary, err = decodeList(r.dietary); err != nil {
		return models.MenuItem{}, err
	}
	if item.Allergens, err = decodeList(r.allergens); err != nil {
		return models.MenuItem{}, err
	}
	if item.DaysOfWeek, err = decodeList(r.days); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func menuInsertArgs(item models.MenuItem) []any {
	return []any{models.FormatID(item.ID), item.Name, item.Description, item.Price, string(item.Category),
		item.Image, encodeList(item.Dietary), encodeList(item.Allergens), encodeList(item.DaysOfWeek), item.Active}
}

// setClauses renders the SET list of an UPDATE for the fields present in
// patch. placeholder returns the bind marker for the n-th argument (1-based).
func setClauses(patch models.MenuItemPatch, placeholder func(n int) string) (string, []any) {
	var clauses []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, column+" = "+placeholder(len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.Dietary != nil {
		add("dietary", encodeList(*patch.Dietary))
	}
	if patch.Allergens != nil {
		add("allergens", encodeList(*patch.Allergens))
	}
	if patch.DaysOfWeek != nil {
		add("days_of_week", encodeList(*patch.DaysOfWeek))
	}
	if patch.Active != nil {
		add("active", *patch.Active)
	}

	return strings.Join(clauses, ", "), args
}

func encodeList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(values)
	return string(b)
}

func decodeList(raw string) ([]string, error) {
	values := []string{}
	if raw == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("decode list column: %w", err)
	}
	return values, nil
}
