package models

import (
	"github.com/IrumShehryar/Restaurant-Website/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts an external identifier into the store's native key.
// Any string that is not 24 hexadecimal characters is malformed input.
func ParseID(external string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(external)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewWithContext(apperrors.ErrCodeMalformedInput,
			"invalid id format", map[string]any{"id": external})
	}
	return id, nil
}

// FormatID renders a native key as its external identifier.
func FormatID(id primitive.ObjectID) string {
	return id.Hex()
}
