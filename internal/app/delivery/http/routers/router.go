package routers

import (
	"fmt"
	"podium-service/internal/app/config"
	"podium-service/internal/app/delivery/http/controllers"
	"podium-service/internal/app/delivery/http/middlewares"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

type Controllers struct {
	Visit      *controllers.VisitController
	Intake     *controllers.IntakeController
	Submission *controllers.SubmissionController
	Diagnosis  *controllers.DiagnosisController
	Blueprint  *controllers.BlueprintController
	Exam       *controllers.ExamController
	Auth       *controllers.AuthController
	Staff      *controllers.StaffController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLog *logrus.Logger,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.App.CorsAllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "x-api-key"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RequestLogger(internalConfig.App, accessLog))
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.APIKeyAuth)

	normalLimiter, apiKeyLimiter := middlewares.CreateRateLimiters()
	router.Use(middlewares.ConditionalRateLimit(normalLimiter, apiKeyLimiter))

	loginLimiter := newLoginLimiter(internalConfig, middlewares)

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))
	versionPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.Version, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, loginLimiter.Limit, ctrls.Auth)
			})

			r.Route("/intake/{visit_id}", func(r chi.Router) {
				attachIntakeRoutes(r, ctrls.Intake)
			})

			r.Route("/visits", func(r chi.Router) {
				attachVisitRoutes(r, middlewares, ctrls)
			})

			r.Route("/blueprints", func(r chi.Router) {
				r.Use(middlewares.Authenticate)
				r.Post("/resolve", ctrls.Blueprint.Resolve)
			})

			r.Route("/exams/{visit_id}", func(r chi.Router) {
				attachExamRoutes(r, middlewares, ctrls.Exam)
			})

			r.Route("/admin/staff", func(r chi.Router) {
				attachStaffRoutes(r, middlewares, ctrls.Staff)
			})
		})
	})
}

func newLoginLimiter(internalConfig *config.InternalConfig, m *middlewares.Middlewares) *middlewares.RateLimiter {
	return middlewares.NewRateLimiter(internalConfig.Auth.LoginRatePerMinute, time.Minute, 5*time.Minute, m.Log)
}
