package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const StatusPending = "pending"

// OrderLine is one dish of an order.
type OrderLine struct {
	Name     string  `bson:"name" json:"name" validate:"required,max=100"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"required,min=1,max=100"`
	Price    float64 `bson:"price" json:"price" validate:"gte=0"`
}

type Order struct {
	ID               primitive.ObjectID `bson:"_id" json:"-"`
	Customer_name    string             `bson:"customer_name" json:"customer_name" validate:"required,min=2,max=100"`
	Customer_email   string             `bson:"customer_email" json:"customer_email" validate:"required,email"`
	Customer_phone   string             `bson:"customer_phone" json:"customer_phone" validate:"required,min=5,max=30"`
	Items            []OrderLine        `bson:"items" json:"items" validate:"required,min=1,dive"`
	Total            float64            `bson:"total" json:"total" validate:"gte=0"`
	Delivery_address string             `bson:"delivery_address" json:"delivery_address" validate:"max=300"`
	Status           string             `bson:"status" json:"status"`
	Created_at       time.Time          `bson:"created_at" json:"created_at"`
}

type OrderDTO struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	Items           []OrderLine `json:"items"`
	Total           float64     `json:"total"`
	DeliveryAddress string      `json:"delivery_address"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

func (o Order) DTO() OrderDTO {
	items := o.Items
	if items == nil {
		items = []OrderLine{}
	}
	return OrderDTO{
		ID:              FormatID(o.ID),
		CustomerName:    o.Customer_name,
		CustomerEmail:   o.Customer_email,
		CustomerPhone:   o.Customer_phone,
		Items:           items,
		Total:           o.Total,
		DeliveryAddress: o.Delivery_address,
		Status:          o.Status,
		CreatedAt:       o.Created_at,
	}
}
