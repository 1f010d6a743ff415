package store

import (
	"context"
	"errors"

	"github.com/IrumShehryar/Restaurant-Website/database"
	"github.com/IrumShehryar/Restaurant-Website/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

type MongoStore struct {
	client       *mongo.Client
	menu         *mongo.Collection
	reservations *mongo.Collection
	orders       *mongo.Collection
	contacts     *mongo.Collection
}

func NewMongoStore(client *mongo.Client, databaseName string) *MongoStore {
	return &MongoStore{
		client:       client,
		menu:         database.OpenCollection(client, databaseName, database.MenuCollection),
		reservations: database.OpenCollection(client, databaseName, database.ReservationsCollection),
		orders:       database.OpenCollection(client, databaseName, database.OrdersCollection),
		contacts:     database.OpenCollection(client, databaseName, database.ContactsCollection),
	}
}

// insertion order; ObjectIDs generated by this process increase monotonically
var byID = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

func (s *MongoStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	items, err := findAll[models.MenuItem](ctx, s.menu)
	if err != nil {
		return nil, mongoError("list menu items", err)
	}
	for i := range items {
		items[i] = cloneMenuItem(items[i])
	}
	return items, nil
}

func (s *MongoStore) GetMenuItem(ctx context.Context, id primitive.ObjectID) (models.MenuItem, error) {
	var item models.MenuItem
	err := s.menu.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, errMenuItemNotFound(id)
	} else if err != nil {
		return models.MenuItem{}, mongoError("get menu item", err)
	}
	return cloneMenuItem(item), nil
}

func (s *MongoStore) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	item = cloneMenuItem(item)
	item.ID = primitive.NewObjectID()

	if _, err := s.menu.InsertOne(ctx, item); err != nil {
		return models.MenuItem{}, mongoError("create menu item", err)
	}
	return item, nil
}

func (s *MongoStore) UpdateMenuItem(ctx context.Context, id primitive.ObjectID, patch models.MenuItemPatch) (models.MenuItem, error) {
	updateObj := bson.D{}

	if patch.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: *patch.Description})
	}
	if patch.Price != nil {
		updateObj = append(updateObj, bson.E{Key: "price", Value: *patch.Price})
	}
	if patch.Category != nil {
		updateObj = append(updateObj, bson.E{Key: "category", Value: *patch.Category})
	}
	if patch.Image != nil {
		updateObj = append(updateObj, bson.E{Key: "image", Value: *patch.Image})
	}
	if patch.Dietary != nil {
		updateObj = append(updateObj, bson.E{Key: "dietary", Value: append([]string{}, *patch.Dietary...)})
	}
	if patch.Allergens != nil {
		updateObj = append(updateObj, bson.E{Key: "allergens", Value: append([]string{}, *patch.Allergens...)})
	}
	if patch.DaysOfWeek != nil {
		updateObj = append(updateObj, bson.E{Key: "days_of_week", Value: append([]string{}, *patch.DaysOfWeek...)})
	}
	if patch.Active != nil {
		updateObj = append(updateObj, bson.E{Key: "active", Value: *patch.Active})
	}

	// $set rejects an empty document
	if len(updateObj) == 0 {
		return s.GetMenuItem(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.MenuItem
	err := s.menu.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: updateObj}}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, errMenuItemNotFound(id)
	} else if err != nil {
		return models.MenuItem{}, mongoError("update menu item", err)
	}
	return cloneMenuItem(updated), nil
}

func (s *MongoStore) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.menu.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mongoError("delete menu item", err)
	}
	if result.DeletedCount == 0 {
		return errMenuItemNotFound(id)
	}
	return nil
}

func (s *MongoStore) CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	r.ID = primitive.NewObjectID()
	if _, err := s.reservations.InsertOne(ctx, r); err != nil {
		return models.Reservation{}, mongoError("create reservation", err)
	}
	return r, nil
}

func (s *MongoStore) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	reservations, err := findAll[models.Reservation](ctx, s.reservations)
	if err != nil {
		return nil, mongoError("list reservations", err)
	}
	return reservations, nil
}

func (s *MongoStore) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	o.ID = primitive.NewObjectID()
	if _, err := s.orders.InsertOne(ctx, o); err != nil {
		return models.Order{}, mongoError("create order", err)
	}
	return o, nil
}

func (s *MongoStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := findAll[models.Order](ctx, s.orders)
	if err != nil {
		return nil, mongoError("list orders", err)
	}
	return orders, nil
}

func (s *MongoStore) CreateContactMessage(ctx context.Context, c models.ContactMessage) (models.ContactMessage, error) {
	c.ID = primitive.NewObjectID()
	if _, err := s.contacts.InsertOne(ctx, c); err != nil {
		return models.ContactMessage{}, mongoError("create contact message", err)
	}
	return c, nil
}

func (s *MongoStore) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := findAll[models.ContactMessage](ctx, s.contacts)
	if err != nil {
		return nil, mongoError("list contact messages", err)
	}
	return messages, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return mongoError("ping", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func findAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.M{}, byID)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func mongoError(op string, err error) error {
	var selectionErr topology.ServerSelectionError
	unavailable := mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.As(err, &selectionErr)
	return storeError(op, err, unavailable)
}
