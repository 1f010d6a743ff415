package routes

import (
	"net/http"

	controller "github.com/IrumShehryar/Restaurant-Website/controllers"

	"github.com/gorilla/mux"
)

func MenuRoutes(router *mux.Router, c *controller.MenuController) {

	router.HandleFunc("/menu", c.GetMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/menu", c.CreateMenuItem).Methods(http.MethodPost)

	router.HandleFunc("/menu/{id}", c.GetMenuItem).Methods(http.MethodGet)
	router.HandleFunc("/menu/{id}", c.UpdateMenuItem).Methods(http.MethodPut, http.MethodPatch)
	router.HandleFunc("/menu/{id}", c.DeleteMenuItem).Methods(http.MethodDelete)
}
