package routers

import (
	"podium-service/internal/app/delivery/http/controllers"
	"podium-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachVisitRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrls *Controllers) {
	router.Post("/", ctrls.Visit.CreateVisit)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Get("/", ctrls.Visit.ListVisits)
		r.Get("/{visit_id}", ctrls.Visit.GetVisit)
		r.Put("/{visit_id}/body-region", ctrls.Visit.SetBodyRegion)
		r.Post("/{visit_id}/diagnosis", ctrls.Diagnosis.RequestDiagnosis)
		r.Get("/{visit_id}/submission", ctrls.Submission.GetSubmission)
		r.Post("/{visit_id}/submission/steps/{step}/retry", ctrls.Submission.RetryStep)
		r.Get("/{visit_id}/report", ctrls.Exam.GetReport)
	})
}

func attachExamRoutes(router chi.Router, middlewares *middlewares.Middlewares, examController *controllers.ExamController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", examController.GetExam)
	router.Put("/assessment", examController.SaveAssessment)
	router.Post("/assessment/measurements/step", examController.StepMeasurement)
	router.Post("/assessment/tests/toggle", examController.ToggleTestResult)
	router.Post("/report", examController.GenerateReport)
}
