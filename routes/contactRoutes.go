package routes

import (
	"net/http"

	controller "github.com/IrumShehryar/Restaurant-Website/controllers"

	"github.com/gorilla/mux"
)

func ContactRoutes(router *mux.Router, c *controller.SubmissionController) {
	router.HandleFunc("/contact", c.GetContactMessages).Methods(http.MethodGet)
	router.HandleFunc("/contact", c.CreateContactMessage).Methods(http.MethodPost)
}
