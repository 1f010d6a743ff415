package routes

import (
	"net/http"

	controller "github.com/IrumShehryar/Restaurant-Website/controllers"

	"github.com/gorilla/mux"
)

func OrderRoutes(router *mux.Router, c *controller.SubmissionController) {
	router.HandleFunc("/orders", c.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders", c.CreateOrder).Methods(http.MethodPost)
}
