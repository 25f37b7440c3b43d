package route

import (
	userController "skillsmap_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserSelfRoutes: endpoint yang boleh diakses user biasa.
func UserSelfRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	api.Put("/me/preferences", userCtrl.UpdatePreferences)
}

// UserAdminRoutes: manajemen user & business unit (admin only).
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	userRoutes := api.Group("/users")
	userRoutes.Get("/", userCtrl.GetAll)
	userRoutes.Get("/:id", userCtrl.GetByID)
	userRoutes.Put("/:id/roles", userCtrl.AssignRoles)

	unitRoutes := api.Group("/business-units")
	unitRoutes.Get("/", userCtrl.GetBusinessUnits)
	unitRoutes.Post("/", userCtrl.CreateBusinessUnit)
}
