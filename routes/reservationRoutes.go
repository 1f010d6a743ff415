package routes

import (
	"net/http"

	controller "github.com/IrumShehryar/Restaurant-Website/controllers"

	"github.com/gorilla/mux"
)

func ReservationRoutes(router *mux.Router, c *controller.SubmissionController) {
	router.HandleFunc("/reservations", c.GetReservations).Methods(http.MethodGet)
	router.HandleFunc("/reservations", c.CreateReservation).Methods(http.MethodPost)
}
