package controller

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/IrumShehryar/Restaurant-Website/apperrors"
	"github.com/IrumShehryar/Restaurant-Website/helper"
	"github.com/IrumShehryar/Restaurant-Website/services"
	"github.com/IrumShehryar/Restaurant-Website/web"
)

// PageController renders the HTML pages of the site.
type PageController struct {
	menu    *services.MenuService
	pages   *web.Pages
	timeout time.Duration
}

func NewPageController(menu *services.MenuService, pages *web.Pages, timeout time.Duration) *PageController {
	return &PageController{menu: menu, pages: pages, timeout: timeout}
}

func (c *PageController) Home(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, web.PageHome, web.PageData{Title: "Home"})
}

// Menu lists the active items grouped by category.
func (c *PageController) Menu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	groups, err := c.menu.ActiveMenu(ctx)
	if err != nil {
		slog.Error("failed to load menu page",
			"requestID", helper.RequestID(r.Context()),
			"error", err,
		)
		http.Error(w, "The menu is temporarily unavailable", helper.StatusFor(apperrors.CodeOf(err)))
		return
	}

	c.render(w, r, http.StatusOK, web.PageMenu, web.PageData{Title: "Menu", Data: groups})
}

func (c *PageController) About(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, web.PageAbout, web.PageData{Title: "About"})
}

func (c *PageController) Contact(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, web.PageContact, web.PageData{Title: "Contact"})
}

func (c *PageController) Reservations(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, web.PageReservations, web.PageData{Title: "Reservations"})
}

func (c *PageController) NotFound(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusNotFound, web.PageNotFound, web.PageData{Title: "Page not found"})
}

func (c *PageController) render(w http.ResponseWriter, r *http.Request, status int, page string, data web.PageData) {
	if data.Active == "" {
		data.Active = page
	}
	if err := c.pages.Render(w, status, page, data); err != nil {
		slog.Error("failed to render page",
			"requestID", helper.RequestID(r.Context()),
			"page", page,
			"error", err,
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
