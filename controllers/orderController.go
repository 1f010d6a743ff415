package controller

import (
	"context"
	"net/http"

	"github.com/IrumShehryar/Restaurant-Website/helper"
	"github.com/IrumShehryar/Restaurant-Website/models"
)

// Get all orders
func (c *SubmissionController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	orders, err := c.submissions.ListOrders(ctx)
	if err != nil {
		helper.RespondError(w, r, err)
		return
	}

	dtos := make([]models.OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, o.DTO())
	}

	helper.RespondSuccess(w, http.StatusOK, "Orders retrieved successfully", dtos)
}

// Create an order
func (c *SubmissionController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	var order models.Order
	if err := helper.DecodeJSON(w, r, &order); err != nil {
		helper.RespondError(w, r, err)
		return
	}

	created, err := c.submissions.CreateOrder(ctx, order)
	if err != nil {
		helper.RespondError(w, r, err)
		return
	}

	helper.RespondSuccess(w, http.StatusCreated, "Order placed successfully", created.DTO())
}
