package route

import (
	surveyController "skillsmap_backend/internals/features/surveys/survey/controller"
	middlewares "skillsmap_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SurveyAdminRoutes(api fiber.Router, db *gorm.DB) {
	surveyCtrl := surveyController.NewSurveyController(db)

	// 📤 Upload survey baru (migrasi + carry-forward history)
	surveyRoutes := api.Group("/surveys")
	surveyRoutes.Post("/upload", middlewares.SurveyUploadRateLimiter(), surveyCtrl.UploadSurvey)
}
