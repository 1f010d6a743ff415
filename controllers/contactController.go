package controller

import (
	"context"
	"net/http"

	"github.com/IrumShehryar/Restaurant-Website/helper"
	"github.com/IrumShehryar/Restaurant-Website/models"
)

// Get all contact messages
func (c *SubmissionController) GetContactMessages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	messages, err := c.submissions.ListContactMessages(ctx)
	if err != nil {
		helper.RespondError(w, r, err)
		return
	}

	dtos := make([]models.ContactMessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, m.DTO())
	}

	helper.RespondSuccess(w, http.StatusOK, "Contact messages retrieved successfully", dtos)
}

// Create a contact message
func (c *SubmissionController) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	var msg models.ContactMessage
	if err := helper.DecodeJSON(w, r, &msg); err != nil {
		helper.RespondError(w, r, err)
		return
	}

	created, err := c.submissions.CreateContactMessage(ctx, msg)
	if err != nil {
		helper.RespondError(w, r, err)
		return
	}

	helper.RespondSuccess(w, http.StatusCreated, "Message sent successfully", created.DTO())
}
