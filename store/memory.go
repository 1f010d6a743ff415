package store

import (
	"context"
	"sync"

	"github.com/IrumShehryar/Restaurant-Website/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps every record in process memory. Nothing survives a
// restart.
type MemoryStore struct {
	mu           sync.RWMutex
	menu         map[primitive.ObjectID]models.MenuItem
	menuOrder    []primitive.ObjectID
	reservations []models.Reservation
	orders       []models.Order
	contacts     []models.ContactMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		menu: make(map[primitive.ObjectID]models.MenuItem),
	}
}

func (s *MemoryStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.MenuItem, 0, len(s.menuOrder))
	for _, id := range s.menuOrder {
		items = append(items, cloneMenuItem(s.menu[id]))
	}
	return items, nil
}

func (s *MemoryStore) GetMenuItem(ctx context.Context, id primitive.ObjectID) (models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.menu[id]
	if !ok {
		return models.MenuItem{}, errMenuItemNotFound(id)
	}
	return cloneMenuItem(item), nil
}

func (s *MemoryStore) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item = cloneMenuItem(item)
	item.ID = primitive.NewObjectID()
	s.menu[item.ID] = item
	s.menuOrder = append(s.menuOrder, item.ID)
	return cloneMenuItem(item), nil
}

func (s *MemoryStore) UpdateMenuItem(ctx context.Context, id primitive.ObjectID, patch models.MenuItemPatch) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.menu[id]
	if !ok {
		return models.MenuItem{}, errMenuItemNotFound(id)
	}
	item = patch.Apply(item)
	s.menu[id] = item
	return cloneMenuItem(item), nil
}

func (s *MemoryStore) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menu[id]; !ok {
		return errMenuItemNotFound(id)
	}
	delete(s.menu, id)
	for i, existing := range s.menuOrder {
		if existing == id {
			s.menuOrder = append(s.menuOrder[:i], s.menuOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = primitive.NewObjectID()
	s.reservations = append(s.reservations, r)
	return r, nil
}

func (s *MemoryStore) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Reservation{}, s.reservations...), nil
}

func (s *MemoryStore) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = primitive.NewObjectID()
	o.Items = append([]models.OrderLine{}, o.Items...)
	s.orders = append(s.orders, o)
	return o, nil
}

func (s *MemoryStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order{}, s.orders...), nil
}

func (s *MemoryStore) CreateContactMessage(ctx context.Context, c models.ContactMessage) (models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = primitive.NewObjectID()
	s.contacts = append(s.contacts, c)
	return c, nil
}

func (s *MemoryStore) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ContactMessage{}, s.contacts...), nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close(ctx context.Context) error { return nil }
