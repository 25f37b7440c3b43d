package route

import (
	progressionController "skillsmap_backend/internals/features/surveys/progression/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProgressionUserRoutes(api fiber.Router, db *gorm.DB) {
	progressionCtrl := progressionController.NewProgressionController(db)

	api.Get("/progression", progressionCtrl.GetProgression)
}
