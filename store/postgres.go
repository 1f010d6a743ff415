package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/IrumShehryar/Restaurant-Website/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+menuColumns+` FROM menu_items ORDER BY seq`)
	if err != nil {
		return nil, postgresError("list menu items", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var row menuRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, postgresError("list menu items", err)
		}
		item, err := row.menuItem()
		if err != nil {
			return nil, postgresError("list menu items", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, postgresError("list menu items", err)
	}
	return items, nil
}

func (s *PostgresStore) GetMenuItem(ctx context.Context, id primitive.ObjectID) (models.MenuItem, error) {
	var row menuRow
	err := s.pool.QueryRow(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = $1`, models.FormatID(id)).
		Scan(row.dest()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.MenuItem{}, errMenuItemNotFound(id)
	} else if err != nil {
		return models.MenuItem{}, postgresError("get menu item", err)
	}
	item, err := row.menuItem()
	if err != nil {
		return models.MenuItem{}, postgresError("get menu item", err)
	}
	return item, nil
}

func (s *PostgresStore) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	item = cloneMenuItem(item)
	item.ID = primitive.NewObjectID()

	_, err := s.pool.Exec(ctx, `
		INSERT INTO menu_items (`+menuColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		menuInsertArgs(item)...,
	)
	if err != nil {
		return models.MenuItem{}, postgresError("create menu item", err)
	}
	return item, nil
}

func (s *PostgresStore) UpdateMenuItem(ctx context.Context, id primitive.ObjectID, patch models.MenuItemPatch) (models.MenuItem, error) {
	set, args := setClauses(patch, func(n int) string { return "$" + strconv.Itoa(n) })
	if set == "" {
		return s.GetMenuItem(ctx, id)
	}
	args = append(args, models.FormatID(id))

	var row menuRow
	err := s.pool.QueryRow(ctx,
		`UPDATE menu_items SET `+set+` WHERE id = $`+strconv.Itoa(len(args))+` RETURNING `+menuColumns,
		args...,
	).Scan(row.dest()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.MenuItem{}, errMenuItemNotFound(id)
	} else if err != nil {
		return models.MenuItem{}, postgresError("update menu item", err)
	}
	item, err := row.menuItem()
	if err != nil {
		return models.MenuItem{}, postgresError("update menu item", err)
	}
	return item, nil
}

func (s *PostgresStore) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, models.FormatID(id))
	if err != nil {
		return postgresError("delete menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return errMenuItemNotFound(id)
	}
	return nil
}

func (s *PostgresStore) CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	r.ID = primitive.NewObjectID()
	if err := s.insertSubmission(ctx, kindReservation, r.ID, r.Created_at, r); err != nil {
		return models.Reservation{}, postgresError("create reservation", err)
	}
	return r, nil
}

func (s *PostgresStore) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	out, err := listPostgresSubmissions(ctx, s.pool, kindReservation, func(r *models.Reservation, id primitive.ObjectID) { r.ID = id })
	if err != nil {
		return nil, postgresError("list reservations", err)
	}
	return out, nil
}

func (s *PostgresStore) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	o.ID = primitive.NewObjectID()
	if err := s.insertSubmission(ctx, kindOrder, o.ID, o.Created_at, o); err != nil {
		return models.Order{}, postgresError("create order", err)
	}
	return o, nil
}

func (s *PostgresStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	out, err := listPostgresSubmissions(ctx, s.pool, kindOrder, func(o *models.Order, id primitive.ObjectID) { o.ID = id })
	if err != nil {
		return nil, postgresError("list orders", err)
	}
	return out, nil
}

func (s *PostgresStore) CreateContactMessage(ctx context.Context, c models.ContactMessage) (models.ContactMessage, error) {
	c.ID = primitive.NewObjectID()
	if err := s.insertSubmission(ctx, kindContact, c.ID, c.Created_at, c); err != nil {
		return models.ContactMessage{}, postgresError("create contact message", err)
	}
	return c, nil
}

func (s *PostgresStore) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	out, err := listPostgresSubmissions(ctx, s.pool, kindContact, func(c *models.ContactMessage, id primitive.ObjectID) { c.ID = id })
	if err != nil {
		return nil, postgresError("list contact messages", err)
	}
	return out, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return postgresError("ping", err)
	}
	return nil
}

func (s *PostgresStore) Close(ctx context.Context) error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) insertSubmission(ctx context.Context, kind string, id primitive.ObjectID, createdAt time.Time, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO submissions (id, kind, payload, created_at) VALUES ($1, $2, $3, $4)`,
		models.FormatID(id), kind, string(payload), createdAt,
	)
	return err
}

func listPostgresSubmissions[T any](ctx context.Context, pool *pgxpool.Pool, kind string, setID func(*T, primitive.ObjectID)) ([]T, error) {
	rows, err := pool.Query(ctx, `SELECT id, payload FROM submissions WHERE kind = $1 ORDER BY seq`, kind)
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
		doc, err := decodeSubmission(strings.TrimSpace(rawID), payload, setID)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func postgresError(op string, err error) error {
	var connectErr *pgconn.ConnectError
	unavailable := pgconn.Timeout(err) || errors.As(err, &connectErr)
	return storeError(op, err, unavailable)
}
