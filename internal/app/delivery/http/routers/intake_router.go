package routers

import (
	"podium-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// attachIntakeRoutes registers the patient-facing routes. They are public,
// the visit id in the link is the only credential.
func attachIntakeRoutes(router chi.Router, intakeController *controllers.IntakeController) {
	router.Get("/", intakeController.GetIntake)
	router.Put("/answers/{field_id}", intakeController.SetAnswer)
	router.Post("/answers/{field_id}/toggle", intakeController.ToggleOption)
	router.Post("/next", intakeController.GoNext)
	router.Post("/prev", intakeController.GoPrev)
	router.Put("/consent", intakeController.UpdateConsent)
	router.Post("/submit", intakeController.Submit)
}
