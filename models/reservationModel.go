package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reservation is a table booking request. Date and Time are kept as the
// customer entered them (YYYY-MM-DD and HH:MM).
type Reservation struct {
	ID         primitive.ObjectID `bson:"_id" json:"-"`
	Name       string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
	Phone      string             `bson:"phone" json:"phone" validate:"required,min=5,max=30"`
	Date       string             `bson:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Time       string             `bson:"time" json:"time" validate:"required,datetime=15:04"`
	Guests     int                `bson:"guests" json:"guests" validate:"required,min=1,max=20"`
	Message    string             `bson:"message" json:"message" validate:"max=1000"`
	Status     string             `bson:"status" json:"status"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
}

type ReservationDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Guests    int       `json:"guests"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (r Reservation) DTO() ReservationDTO {
	return ReservationDTO{
		ID:        FormatID(r.ID),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      r.Date,
		Time:      r.Time,
		Guests:    r.Guests,
		Message:   r.Message,
		Status:    r.Status,
		CreatedAt: r.Created_at,
	}
}
