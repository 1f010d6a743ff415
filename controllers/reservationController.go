package controller

import (
	"context"
	"net/http"

	"github.com/IrumShehryar/Restaurant-Website/helper"
	"github.com/IrumShehryar/Restaurant-Website/models"
)

// Get all reservations
func (c *SubmissionController) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	reservations, err := c.submissions.ListReservations(ctx)
	if err != nil {
		helper.RespondError(w, r, err)
		return
	}

	dtos := make([]models.ReservationDTO, 0, len(reservations))
	for _, res := range reservations {
		dtos = append(dtos, res.DTO())
	}

	helper.RespondSuccess(w, http.StatusOK, "Reservations retrieved successfully", dtos)
}

// Create a reservation
func (c *SubmissionController) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	var res models.Reservation
	if err := helper.DecodeJSON(w, r, &res); err != nil {
		helper.RespondError(w, r, err)
		return
	}

	created, err := c.submissions.CreateReservation(ctx, res)
	if err != nil {
		helper.RespondError(w, r, err)
		return
	}

	helper.RespondSuccess(w, http.StatusCreated, "Reservation submitted successfully", created.DTO())
}
