package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestMenuItemInput_Defaults(t *testing.T) {
	in := MenuItemInput{
		Name:     ptr("  Aurora Bites "),
		Price:    ptr(5.50),
		Category: ptr("Starter"),
	}

	item := in.MenuItem()

	assert.Equal(t, "Aurora Bites", item.Name)
	assert.Equal(t, 5.50, item.Price)
	assert.Equal(t, CategoryStarter, item.Category)
	assert.Empty(t, item.Dietary)
	assert.Empty(t, item.Allergens)
	assert.Empty(t, item.DaysOfWeek)
	assert.True(t, item.Active)
}

func TestMenuItemInput_ExplicitInactive(t *testing.T) {
	in := MenuItemInput{Name: ptr("x"), Price: ptr(1.0), Category: ptr("main"), Active: ptr(false)}
	assert.False(t, in.MenuItem().Active)
}

func TestNormalizeWeekdays(t *testing.T) {
	got := NormalizeWeekdays([]string{"monday", " TUESDAY ", "Monday", "sUnDaY"})
	assert.Equal(t, []string{"Monday", "Tuesday", "Sunday"}, got)
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"Vegan", "vegan", " Gluten-Free"})
	assert.Equal(t, []string{"vegan", "gluten-free"}, got)
}

func TestMenuItemInput_AllergensDropDuplicates(t *testing.T) {
	in := MenuItemInput{
		Name: ptr("x"), Price: ptr(1.0), Category: ptr("main"),
		Allergens: []string{"milk", " milk", "Milk", "nuts"},
	}
	assert.Equal(t, []string{"milk", "Milk", "nuts"}, in.MenuItem().Allergens)

	p := MenuItemPatch{Allergens: &[]string{"egg", "egg "}}
	p.Normalize()
	assert.Equal(t, []string{"egg"}, *p.Allergens)
}

func TestMenuItemPatch_ApplyOnlyPresentFields(t *testing.T) {
	item := MenuItem{
		Name:       "Aurora Bites",
		Price:      5.50,
		Category:   CategoryStarter,
		Dietary:    []string{"vegetarian"},
		Allergens:  []string{"milk"},
		DaysOfWeek: []string{"Monday"},
		Active:     true,
	}

	patch := MenuItemPatch{Price: ptr(7.99)}
	got := patch.Apply(item)

	want := item
	want.Price = 7.99
	assert.Equal(t, want, got)
	assert.Equal(t, 5.50, item.Price, "source item must not change")
}

func TestMenuItemPatch_IsEmpty(t *testing.T) {
	assert.True(t, MenuItemPatch{}.IsEmpty())
	assert.False(t, MenuItemPatch{Active: ptr(false)}.IsEmpty())
}

func TestMenuItemPatch_Normalize(t *testing.T) {
	p := MenuItemPatch{
		Name:       ptr(" Stew "),
		Category:   ptr(" MAIN"),
		DaysOfWeek: &[]string{"friday"},
	}
	p.Normalize()

	assert.Equal(t, "Stew", *p.Name)
	assert.Equal(t, "main", *p.Category)
	assert.Equal(t, []string{"Friday"}, *p.DaysOfWeek)
	assert.Nil(t, p.Price)
}

func TestMenuItemDTO_NeverNullSlices(t *testing.T) {
	dto := MenuItem{Name: "Fries"}.DTO()
	assert.NotNil(t, dto.Dietary)
	assert.NotNil(t, dto.Allergens)
	assert.NotNil(t, dto.DaysOfWeek)
	assert.Len(t, dto.ID, 24)
}
