package store

import (
	"context"
	"errors"

	"github.com/IrumShehryar/Restaurant-Website/apperrors"
	"github.com/IrumShehryar/Restaurant-Website/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func errMenuItemNotFound(id primitive.ObjectID) error {
	return apperrors.NewWithContext(apperrors.ErrCodeNotFound, "menu item not found",
		map[string]any{"id": models.FormatID(id)})
}

// storeError wraps a backend failure. unavailable is the backend's own
// verdict on whether the store could not be reached; context deadlines and
// cancellations always count as unavailable.
func storeError(op string, err error, unavailable bool) error {
	if unavailable || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, op+": record store unavailable", err)
	}
	return apperrors.Wrap(apperrors.ErrCodeInternal, op+" failed", err)
}

func cloneMenuItem(item models.MenuItem) models.MenuItem {
	item.Dietary = append([]string{}, item.Dietary...)
	item.Allergens = append([]string{}, item.Allergens...)
	item.DaysOfWeek = append([]string{}, item.DaysOfWeek...)
	return item
}
