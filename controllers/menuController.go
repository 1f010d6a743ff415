package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/IrumShehryar/Restaurant-Website/helper"
	"github.com/IrumShehryar/Restaurant-Website/models"
	"github.com/IrumShehryar/Restaurant-Website/services"

	"github.com/gorilla/mux"
)

type MenuController struct {
	menu    *services.MenuService
	timeout time.Duration
}

func NewMenuController(menu *services.MenuService, timeout time.Duration) *MenuController {
	return &MenuController{menu: menu, timeout: timeout}
}

// Get all menu items
func (c *MenuController) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	items, err := c.menu.List(ctx)
	if err != nil {
		helper.RespondError(w, r, err)
		return
	}

	dtos := make([]models.MenuItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, item.DTO())
	}

	helper.RespondSuccess(w, http.StatusOK, "Menu items retrieved successfully", dtos)
}

// Get a single menu item
func (c *MenuController) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	item, err := c.menu.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		helper.RespondError(w, r, err)
		return
	}

	helper.RespondSuccess(w, http.StatusOK, "Menu item retrieved successfully", item.DTO())
}

// Create a menu item
func (c *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	var in models.MenuItemInput
	if err := helper.DecodeJSON(w, r, &in); err != nil {
		helper.RespondError(w, r, err)
		return
	}

	item, err := c.menu.Create(ctx, in)
	if err != nil {
		helper.RespondError(w, r, err)
		return
	}

	helper.RespondSuccess(w, http.StatusCreated, "Menu item created successfully", item.DTO())
}

// Update a menu item. Only the fields present in the body change.
func (c *MenuController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	var patch models.MenuItemPatch
	if err := helper.DecodeJSON(w, r, &patch); err != nil {
		helper.RespondError(w, r, err)
		return
	}

	item, err := c.menu.Update(ctx, mux.Vars(r)["id"], patch)
	if err != nil {
		helper.RespondError(w, r, err)
		return
	}

	helper.RespondSuccess(w, http.StatusOK, "Menu item updated successfully", item.DTO())
}

// Delete a menu item
func (c *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	if err := c.menu.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		helper.RespondError(w, r, err)
		return
	}

	helper.RespondSuccess(w, http.StatusOK, "Menu item deleted successfully", nil)
}
