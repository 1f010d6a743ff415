package controller

import (
	"time"

	"github.com/IrumShehryar/Restaurant-Website/services"
)

// SubmissionController serves the reservation, order and contact endpoints.
type SubmissionController struct {
	submissions *services.SubmissionService
	timeout     time.Duration
}

func NewSubmissionController(submissions *services.SubmissionService, timeout time.Duration) *SubmissionController {
	return &SubmissionController{submissions: submissions, timeout: timeout}
}
