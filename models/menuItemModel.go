package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Category string

const (
	CategoryStarter Category = "starter"
	CategoryMain    Category = "main"
	CategoryDessert Category = "dessert"
	CategorySide    Category = "side"
	CategoryDrink   Category = "drink"
	CategorySpecial Category = "special"
)

// Categories lists every category in menu display order.
var Categories = []Category{
	CategoryStarter,
	CategoryMain,
	CategorySide,
	CategoryDessert,
	CategoryDrink,
	CategorySpecial,
}

// MenuItem is a dish as persisted by the record store.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id" json:"-"`
	Name        string             `bson:"name" json:"name" validate:"required,min=1,max=100"`
	Description string             `bson:"description" json:"description" validate:"max=1000"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Category    Category           `bson:"category" json:"category" validate:"oneof=starter main dessert side drink special"`
	Image       string             `bson:"image" json:"image" validate:"omitempty,url"`
	Dietary     []string           `bson:"dietary" json:"dietary" validate:"dive,oneof=vegetarian vegan gluten-free dairy-free pescatarian"`
	Allergens   []string           `bson:"allergens" json:"allergens" validate:"dive,required,max=50"`
	DaysOfWeek  []string           `bson:"days_of_week" json:"days_of_week" validate:"dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Active      bool               `bson:"active" json:"active"`
}

// MenuItemInput is the create payload. Pointer fields distinguish a missing
// value from a zero value.
type MenuItemInput struct {
	Name        *string  `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Category    *string  `json:"category" validate:"required"`
	Image       string   `json:"image"`
	Dietary     []string `json:"dietary"`
	Allergens   []string `json:"allergens"`
	DaysOfWeek  []string `json:"days_of_week"`
	Active      *bool    `json:"active"`
}

// MenuItem builds the record described by the input, filling defaults.
func (in MenuItemInput) MenuItem() MenuItem {
	item := MenuItem{
		Description: in.Description,
		Image:       in.Image,
		Dietary:     NormalizeTags(in.Dietary),
		Allergens:   normalizeAllergens(in.Allergens),
		DaysOfWeek:  NormalizeWeekdays(in.DaysOfWeek),
		Active:      true,
	}
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Category != nil {
		item.Category = Category(strings.ToLower(strings.TrimSpace(*in.Category)))
	}
	if in.Active != nil {
		item.Active = *in.Active
	}
	return item
}

// MenuItemPatch is a partial update. Nil fields are left untouched.
type MenuItemPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	Image       *string   `json:"image"`
	Dietary     *[]string `json:"dietary"`
	Allergens   *[]string `json:"allergens"`
	DaysOfWeek  *[]string `json:"days_of_week"`
	Active      *bool     `json:"active"`
}

// Normalize trims and canonicalises the values present in the patch.
func (p *MenuItemPatch) Normalize() {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		p.Name = &name
	}
	if p.Category != nil {
		category := strings.ToLower(strings.TrimSpace(*p.Category))
		p.Category = &category
	}
	if p.Dietary != nil {
		tags := NormalizeTags(*p.Dietary)
		p.Dietary = &tags
	}
	if p.Allergens != nil {
		allergens := normalizeAllergens(*p.Allergens)
		p.Allergens = &allergens
	}
	if p.DaysOfWeek != nil {
		days := NormalizeWeekdays(*p.DaysOfWeek)
		p.DaysOfWeek = &days
	}
}

// IsEmpty reports whether the patch carries no fields.
func (p MenuItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Category == nil &&
		p.Image == nil && p.Dietary == nil && p.Allergens == nil && p.DaysOfWeek == nil && p.Active == nil
}

// Apply returns a copy of item with the patch's fields overwritten.
func (p MenuItemPatch) Apply(item MenuItem) MenuItem {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Category != nil {
		item.Category = Category(*p.Category)
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.Dietary != nil {
		item.Dietary = append([]string{}, *p.Dietary...)
	}
	if p.Allergens != nil {
		item.Allergens = append([]string{}, *p.Allergens...)
	}
	if p.DaysOfWeek != nil {
		item.DaysOfWeek = append([]string{}, *p.DaysOfWeek...)
	}
	if p.Active != nil {
		item.Active = *p.Active
	}
	return item
}

// MenuItemDTO is the response shape of a menu item.
type MenuItemDTO struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Price       float64  `json:"price" yaml:"price"`
	Category    Category `json:"category" yaml:"category"`
	Image       string   `json:"image" yaml:"image"`
	Dietary     []string `json:"dietary" yaml:"dietary"`
	Allergens   []string `json:"allergens" yaml:"allergens"`
	DaysOfWeek  []string `json:"days_of_week" yaml:"days_of_week"`
	Active      bool     `json:"active" yaml:"active"`
}

func (m MenuItem) DTO() MenuItemDTO {
	return MenuItemDTO{
		ID:          FormatID(m.ID),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		Image:       m.Image,
		Dietary:     nonNil(m.Dietary),
		Allergens:   nonNil(m.Allergens),
		DaysOfWeek:  nonNil(m.DaysOfWeek),
		Active:      m.Active,
	}
}

// NormalizeWeekdays title-cases weekday names so "monday" and "MONDAY" both
// become "Monday". Order is preserved and duplicates are dropped.
func NormalizeWeekdays(days []string) []string {
	caser := cases.Title(language.English)
	out := make([]string, 0, len(days))
	seen := make(map[string]struct{}, len(days))
	for _, d := range days {
		day := caser.String(strings.ToLower(strings.TrimSpace(d)))
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	return out
}

// NormalizeTags lower-cases dietary tags and drops duplicates.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		tag := strings.ToLower(strings.TrimSpace(t))
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// normalizeAllergens trims allergen names and drops exact duplicates.
// Allergens are free text, so case is kept.
func normalizeAllergens(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		allergen := strings.TrimSpace(v)
		if _, ok := seen[allergen]; ok {
			continue
		}
		seen[allergen] = struct{}{}
		out = append(out, allergen)
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
