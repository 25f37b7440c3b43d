package route

import (
	surveyController "skillsmap_backend/internals/features/surveys/survey/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SurveyUserRoutes(api fiber.Router, db *gorm.DB) {
	surveyCtrl := surveyController.NewSurveyController(db)

	// 📋 Survey aktif (GET only)
	surveyRoutes := api.Group("/surveys")
	surveyRoutes.Get("/latest", surveyCtrl.GetLatestSurvey)
}
