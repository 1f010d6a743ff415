// Package storetest runs the same behavioural checks against every
// store.Store implementation.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/IrumShehryar/Restaurant-Website/apperrors"
	"github.com/IrumShehryar/Restaurant-Website/models"
	"github.com/IrumShehryar/Restaurant-Website/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Factory returns an empty store. Implementations register cleanup with t.
type Factory func(t *testing.T) store.Store

// Run executes the contract suite; each subtest gets a fresh store.
func Run(t *testing.T, newStore Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s store.Store)
	}{
		{"CreateThenGet", testCreateThenGet},
		{"GetUnknownID", testGetUnknownID},
		{"ListInsertionOrder", testListInsertionOrder},
		{"ListEmpty", testListEmpty},
		{"PartialUpdate", testPartialUpdate},
		{"UpdateAllFields", testUpdateAllFields},
		{"EmptyPatch", testEmptyPatch},
		{"UpdateUnknownID", testUpdateUnknownID},
		{"DeleteThenGet", testDeleteThenGet},
		{"DeleteUnknownID", testDeleteUnknownID},
		{"CreatesMinusDeletes", testCreatesMinusDeletes},
		{"IDsNotReused", testIDsNotReused},
		{"Reservations", testReservations},
		{"Orders", testOrders},
		{"ContactMessages", testContactMessages},
		{"Ping", testPing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// Sample returns a fully populated menu item.
func Sample(name string) models.MenuItem {
	return models.MenuItem{
		Name:        name,
		Description: "Crispy potato bites tossed in northern spice.",
		Price:       5.50,
		Category:    models.CategoryStarter,
		Image:       "https://example.com/aurora.png",
		Dietary:     []string{"vegetarian"},
		Allergens:   []string{"milk"},
		DaysOfWeek:  []string{"Monday", "Friday"},
		Active:      true,
	}
}

func testCreateThenGet(t *testing.T, s store.Store) {
	created, err := s.CreateMenuItem(ctx(t), Sample("Aurora Bites"))
	require.NoError(t, err)
	require.False(t, created.ID.IsZero(), "store must assign an id")

	got, err := s.GetMenuItem(ctx(t), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func testGetUnknownID(t *testing.T, s store.Store) {
	_, err := s.GetMenuItem(ctx(t), primitive.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
}

func testListInsertionOrder(t *testing.T, s store.Store) {
	names := []string{"Aurora Bites", "Reindeer Stew", "Crispy Fries", "Birch Latte"}
	for _, name := range names {
		_, err := s.CreateMenuItem(ctx(t), Sample(name))
		require.NoError(t, err)
	}

	items, err := s.ListMenuItems(ctx(t))
	require.NoError(t, err)
	require.Len(t, items, len(names))
	for i, item := range items {
		assert.Equal(t, names[i], item.Name)
	}
}

func testListEmpty(t *testing.T, s store.Store) {
	items, err := s.ListMenuItems(ctx(t))
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func testPartialUpdate(t *testing.T, s store.Store) {
	created, err := s.CreateMenuItem(ctx(t), Sample("Aurora Bites"))
	require.NoError(t, err)

	price := 7.99
	updated, err := s.UpdateMenuItem(ctx(t), created.ID, models.MenuItemPatch{Price: &price})
	require.NoError(t, err)

	want := created
	want.Price = 7.99
	assert.Equal(t, want, updated)

	got, err := s.GetMenuItem(ctx(t), created.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func testUpdateAllFields(t *testing.T, s store.Store) {
	created, err := s.CreateMenuItem(ctx(t), Sample("Aurora Bites"))
	require.NoError(t, err)

	name, desc, image, category := "Reindeer Stew", "Slow-cooked", "", "main"
	price, active := 14.50, false
	dietary, allergens, days := []string{"gluten-free"}, []string{}, []string{"Sunday"}

	patch := models.MenuItemPatch{
		Name: &name, Description: &desc, Price: &price, Category: &category, Image: &image,
		Dietary: &dietary, Allergens: &allergens, DaysOfWeek: &days, Active: &active,
	}
	updated, err := s.UpdateMenuItem(ctx(t), created.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Reindeer Stew", updated.Name)
	assert.Equal(t, "Slow-cooked", updated.Description)
	assert.Equal(t, 14.50, updated.Price)
	assert.Equal(t, models.CategoryMain, updated.Category)
	assert.Empty(t, updated.Image)
	assert.Equal(t, []string{"gluten-free"}, updated.Dietary)
	assert.Empty(t, updated.Allergens)
	assert.Equal(t, []string{"Sunday"}, updated.DaysOfWeek)
	assert.False(t, updated.Active)
}

func testEmptyPatch(t *testing.T, s store.Store) {
	created, err := s.CreateMenuItem(ctx(t), Sample("Aurora Bites"))
	require.NoError(t, err)

	got, err := s.UpdateMenuItem(ctx(t), created.ID, models.MenuItemPatch{})
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.UpdateMenuItem(ctx(t), primitive.NewObjectID(), models.MenuItemPatch{})
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
}

func testUpdateUnknownID(t *testing.T, s store.Store) {
	price := 1.0
	_, err := s.UpdateMenuItem(ctx(t), primitive.NewObjectID(), models.MenuItemPatch{Price: &price})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
}

func testDeleteThenGet(t *testing.T, s store.Store) {
	created, err := s.CreateMenuItem(ctx(t), Sample("Aurora Bites"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteMenuItem(ctx(t), created.ID))

	_, err = s.GetMenuItem(ctx(t), created.ID)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))

	err = s.DeleteMenuItem(ctx(t), created.ID)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err), "second delete must report not found")
}

func testDeleteUnknownID(t *testing.T, s store.Store) {
	err := s.DeleteMenuItem(ctx(t), primitive.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
}

func testCreatesMinusDeletes(t *testing.T, s store.Store) {
	const n, m = 7, 3
	var ids []primitive.ObjectID
	for i := 0; i < n; i++ {
		item, err := s.CreateMenuItem(ctx(t), Sample("dish"))
		require.NoError(t, err)
		ids = append(ids, item.ID)
	}
	for _, id := range ids[:m] {
		require.NoError(t, s.DeleteMenuItem(ctx(t), id))
	}

	items, err := s.ListMenuItems(ctx(t))
	require.NoError(t, err)
	assert.Len(t, items, n-m)
}

func testIDsNotReused(t *testing.T, s store.Store) {
	first, err := s.CreateMenuItem(ctx(t), Sample("first"))
	require.NoError(t, err)
	require.NoError(t, s.DeleteMenuItem(ctx(t), first.ID))

	second, err := s.CreateMenuItem(ctx(t), Sample("second"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func testReservations(t *testing.T, s store.Store) {
	now := time.Now().UTC()
	for _, name := range []string{"Aino", "Mikko"} {
		_, err := s.CreateReservation(ctx(t), models.Reservation{
			Name: name, Email: "guest@example.com", Phone: "+358401234567",
			Date: "2026-12-24", Time: "19:30", Guests: 4,
			Status: models.StatusPending, Created_at: now,
		})
		require.NoError(t, err)
	}

	got, err := s.ListReservations(ctx(t))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Aino", got[0].Name)
	assert.Equal(t, "Mikko", got[1].Name)
	assert.False(t, got[0].ID.IsZero())
	assert.NotEqual(t, got[0].ID, got[1].ID)
	assert.Equal(t, 4, got[0].Guests)
	assert.Equal(t, models.StatusPending, got[0].Status)
	assert.WithinDuration(t, now, got[0].Created_at, time.Second)
}

func testOrders(t *testing.T, s store.Store) {
	order, err := s.CreateOrder(ctx(t), models.Order{
		Customer_name: "Aino", Customer_email: "aino@example.com", Customer_phone: "+358401234567",
		Items:  []models.OrderLine{{Name: "Reindeer Stew", Quantity: 2, Price: 14.50}},
		Total:  29.00,
		Status: models.StatusPending, Created_at: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.False(t, order.ID.IsZero())

	got, err := s.ListOrders(ctx(t))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, order.ID, got[0].ID)
	assert.Equal(t, order.Items, got[0].Items)
	assert.Equal(t, 29.00, got[0].Total)
}

func testContactMessages(t *testing.T, s store.Store) {
	msg, err := s.CreateContactMessage(ctx(t), models.ContactMessage{
		Name: "Mikko", Email: "mikko@example.com", Subject: "Private dining",
		Message: "Do you host groups of 30?", Created_at: time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err := s.ListContactMessages(ctx(t))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, msg.ID, got[0].ID)
	assert.Equal(t, "Private dining", got[0].Subject)
}

func testPing(t *testing.T, s store.Store) {
	assert.NoError(t, s.Ping(ctx(t)))
}
