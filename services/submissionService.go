package services

import (
	"context"
	"strings"
	"time"

	"github.com/IrumShehryar/Restaurant-Website/models"
	"github.com/IrumShehryar/Restaurant-Website/store"
)

// SubmissionService accepts reservations, orders and contact messages.
// Each is validated, stamped with a creation time and stored as-is.
type SubmissionService struct {
	store store.SubmissionStore
	now   func() time.Time
}

func NewSubmissionService(s store.SubmissionStore) *SubmissionService {
	return &SubmissionService{
		store: s,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *SubmissionService) CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	if err := validateStruct("reservation", r); err != nil {
		return models.Reservation{}, err
	}

	r.Status = models.StatusPending
	r.Created_at = s.now()
	return s.store.CreateReservation(ctx, r)
}

func (s *SubmissionService) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return s.store.ListReservations(ctx)
}

func (s *SubmissionService) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	o.Customer_name = strings.TrimSpace(o.Customer_name)
	o.Customer_email = strings.TrimSpace(o.Customer_email)
	o.Customer_phone = strings.TrimSpace(o.Customer_phone)
	if err := validateStruct("order", o); err != nil {
		return models.Order{}, err
	}

	o.Status = models.StatusPending
	o.Created_at = s.now()
	return s.store.CreateOrder(ctx, o)
}

func (s *SubmissionService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.store.ListOrders(ctx)
}

func (s *SubmissionService) CreateContactMessage(ctx context.Context, c models.ContactMessage) (models.ContactMessage, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Subject = strings.TrimSpace(c.Subject)
	if err := validateStruct("contact message", c); err != nil {
		return models.ContactMessage{}, err
	}

	c.Created_at = s.now()
	return s.store.CreateContactMessage(ctx, c)
}

func (s *SubmissionService) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.store.ListContactMessages(ctx)
}
