package routes

import (
	"net/http"

	controller "github.com/IrumShehryar/Restaurant-Website/controllers"
	"github.com/IrumShehryar/Restaurant-Website/web"

	"github.com/gorilla/mux"
)

func PageRoutes(router *mux.Router, c *controller.PageController) {
	router.HandleFunc("/", c.Home).Methods(http.MethodGet)
	router.HandleFunc("/menu", c.Menu).Methods(http.MethodGet)
	router.HandleFunc("/about", c.About).Methods(http.MethodGet)
	router.HandleFunc("/contact", c.Contact).Methods(http.MethodGet)
	router.HandleFunc("/reservations", c.Reservations).Methods(http.MethodGet)

	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", web.Static())).Methods(http.MethodGet)
}
