package route

import (
	authController "skillsmap_backend/internals/features/users/auth/controller"
	middlewares "skillsmap_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	authCtrl := authController.NewAuthController(db)

	authRoutes := app.Group("/api/auth")
	authRoutes.Post("/register", authCtrl.Register)
	authRoutes.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	authRoutes.Post("/refresh", middlewares.LoginRateLimiter(), authCtrl.Refresh)
}
