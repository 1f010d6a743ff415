package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IrumShehryar/Restaurant-Website/models"

	"github.com/mattn/go-sqlite3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+menuColumns+" FROM menu_items ORDER BY seq")
	if err != nil {
		return nil, sqliteError("list menu items", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var row menuRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, sqliteError("list menu items", err)
		}
		item, err := row.menuItem()
		if err != nil {
			return nil, sqliteError("list menu items", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, sqliteError("list menu items", err)
	}
	return items, nil
}

func (s *SQLiteStore) GetMenuItem(ctx context.Context, id primitive.ObjectID) (models.MenuItem, error) {
	var row menuRow
	err := s.db.QueryRowContext(ctx, "SELECT "+menuColumns+" FROM menu_items WHERE id = ?", models.FormatID(id)).
		Scan(row.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MenuItem{}, errMenuItemNotFound(id)
	} else if err != nil {
		return models.MenuItem{}, sqliteError("get menu item", err)
	}
	item, err := row.menuItem()
	if err != nil {
		return models.MenuItem{}, sqliteError("get menu item", err)
	}
	return item, nil
}

func (s *SQLiteStore) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	item = cloneMenuItem(item)
	item.ID = primitive.NewObjectID()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO menu_items ("+menuColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		menuInsertArgs(item)...)
	if err != nil {
		return models.MenuItem{}, sqliteError("create menu item", err)
	}
	return item, nil
}

func (s *SQLiteStore) UpdateMenuItem(ctx context.Context, id primitive.ObjectID, patch models.MenuItemPatch) (models.MenuItem, error) {
	set, args := setClauses(patch, func(int) string { return "?" })
	if set == "" {
		return s.GetMenuItem(ctx, id)
	}
	args = append(args, models.FormatID(id))

	var row menuRow
	err := s.db.QueryRowContext(ctx,
		"UPDATE menu_items SET "+set+" WHERE id = ? RETURNING "+menuColumns, args...).
		Scan(row.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MenuItem{}, errMenuItemNotFound(id)
	} else if err != nil {
		return models.MenuItem{}, sqliteError("update menu item", err)
	}
	item, err := row.menuItem()
	if err != nil {
		return models.MenuItem{}, sqliteError("update menu item", err)
	}
	return item, nil
}

func (s *SQLiteStore) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = ?", models.FormatID(id))
	if err != nil {
		return sqliteError("delete menu item", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return sqliteError("delete menu item", err)
	}
	if n == 0 {
		return errMenuItemNotFound(id)
	}
	return nil
}

func (s *SQLiteStore) CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	r.ID = primitive.NewObjectID()
	if err := s.insertSubmission(ctx, kindReservation, r.ID, r.Created_at, r); err != nil {
		return models.Reservation{}, sqliteError("create reservation", err)
	}
	return r, nil
}

func (s *SQLiteStore) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	out, err := listSQLiteSubmissions(ctx, s.db, kindReservation, func(r *models.Reservation, id primitive.ObjectID) { r.ID = id })
	if err != nil {
		return nil, sqliteError("list reservations", err)
	}
	return out, nil
}

func (s *SQLiteStore) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	o.ID = primitive.NewObjectID()
	if err := s.insertSubmission(ctx, kindOrder, o.ID, o.Created_at, o); err != nil {
		return models.Order{}, sqliteError("create order", err)
	}
	return o, nil
}

func (s *SQLiteStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	out, err := listSQLiteSubmissions(ctx, s.db, kindOrder, func(o *models.Order, id primitive.ObjectID) { o.ID = id })
	if err != nil {
		return nil, sqliteError("list orders", err)
	}
	return out, nil
}

func (s *SQLiteStore) CreateContactMessage(ctx context.Context, c models.ContactMessage) (models.ContactMessage, error) {
	c.ID = primitive.NewObjectID()
	if err := s.insertSubmission(ctx, kindContact, c.ID, c.Created_at, c); err != nil {
		return models.ContactMessage{}, sqliteError("create contact message", err)
	}
	return c, nil
}

func (s *SQLiteStore) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	out, err := listSQLiteSubmissions(ctx, s.db, kindContact, func(c *models.ContactMessage, id primitive.ObjectID) { c.ID = id })
	if err != nil {
		return nil, sqliteError("list contact messages", err)
	}
	return out, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return sqliteError("ping", err)
	}
	return nil
}

func (s *SQLiteStore) Close(ctx context.Context) error {
	return s.db.Close()
}

func (s *SQLiteStore) insertSubmission(ctx context.Context, kind string, id primitive.ObjectID, createdAt time.Time, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO submissions (id, kind, payload, created_at) VALUES (?, ?, ?, ?)",
		models.FormatID(id), kind, string(payload), createdAt.UTC().Format(time.RFC3339Nano))
	return err
}

func listSQLiteSubmissions[T any](ctx context.Context, db *sql.DB, kind string, setID func(*T, primitive.ObjectID)) ([]T, error) {
	rows, err := db.QueryContext(ctx, "SELECT id, payload FROM submissions WHERE kind = ? ORDER BY seq", kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var rawID, payload string
		if err := rows.Scan(&rawID, &payload); err != nil {
			return nil, err
		}
		doc, err := decodeSubmission(rawID, payload, setID)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func decodeSubmission[T any](rawID, payload string, setID func(*T, primitive.ObjectID)) (T, error) {
	var doc T
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return doc, fmt.Errorf("decode submission %s: %w", rawID, err)
	}
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return doc, fmt.Errorf("decode submission id %q: %w", rawID, err)
	}
	setID(&doc, id)
	return doc, nil
}

func sqliteError(op string, err error) error {
	var sqliteErr sqlite3.Error
	unavailable := errors.As(err, &sqliteErr) &&
		(sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked || sqliteErr.Code == sqlite3.ErrCantOpen)
	return storeError(op, err, unavailable || errors.Is(err, sql.ErrConnDone))
}
