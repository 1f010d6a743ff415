// Package store defines the record store used by the restaurant backend and
// its implementations: MongoDB for production, PostgreSQL and SQLite as
// relational alternatives, and an in-memory store for tests and local runs.
//
// Every implementation keys records by primitive.ObjectID, returns records
// in insertion order and reports failures as *apperrors.StructuredError:
// ErrCodeNotFound for missing records, ErrCodeStoreUnavailable when the
// backend cannot be reached and ErrCodeInternal for anything else.
package store

import (
	"context"
	"fmt"

	"github.com/IrumShehryar/Restaurant-Website/config"
	"github.com/IrumShehryar/Restaurant-Website/database"
	"github.com/IrumShehryar/Restaurant-Website/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuStore holds menu item records.
type MenuStore interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id primitive.ObjectID) (models.MenuItem, error)
	// CreateMenuItem assigns a new ID and persists the item.
	CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	// UpdateMenuItem writes only the fields present in patch and returns the
	// record as stored afterwards.
	UpdateMenuItem(ctx context.Context, id primitive.ObjectID, patch models.MenuItemPatch) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error
}

// SubmissionStore holds reservations, orders and contact messages, which
// are only ever created and listed.
type SubmissionStore interface {
	CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error)
	ListReservations(ctx context.Context) ([]models.Reservation, error)
	CreateOrder(ctx context.Context, o models.Order) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateContactMessage(ctx context.Context, c models.ContactMessage) (models.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
}

// Store is the full record store.
type Store interface {
	MenuStore
	SubmissionStore
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open connects to the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryStore(), nil
	case config.DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		return NewMongoStore(client, cfg.MongoDatabase), nil
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(db), nil
	case config.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, cfg.Postgres.DSN())
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(pool), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
