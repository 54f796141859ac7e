package routers

import (
	"net/http"
	"podium-service/internal/app/delivery/http/controllers"
	"podium-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, loginLimiter func(http.Handler) http.Handler, authController *controllers.AuthController) {
	router.With(loginLimiter).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/whoami", authController.WhoAmI)
}

func attachStaffRoutes(router chi.Router, middlewares *middlewares.Middlewares, staffController *controllers.StaffController) {
	router.Use(middlewares.Authenticate, middlewares.RequireAdmin)
	router.Get("/", staffController.ListStaff)
	router.Post("/", staffController.CreateStaff)
	router.Patch("/{username}", staffController.UpdateStaff)
	router.Delete("/{username}", staffController.DeleteStaff)
}
