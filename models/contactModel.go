package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	ID         primitive.ObjectID `bson:"_id" json:"-"`
	Name       string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
	Subject    string             `bson:"subject" json:"subject" validate:"required,max=200"`
	Message    string             `bson:"message" json:"message" validate:"required,max=5000"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
}

type ContactMessageDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (c ContactMessage) DTO() ContactMessageDTO {
	return ContactMessageDTO{
		ID:        FormatID(c.ID),
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.Created_at,
	}
}
