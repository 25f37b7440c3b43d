package route

import (
	resultsController "skillsmap_backend/internals/features/results/results/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ResultsAdminRoutes(api fiber.Router, db *gorm.DB) {
	resultsCtrl := resultsController.NewResultsController(db)

	// 📊 Laporan hasil survey (admin only)
	resultsRoutes := api.Group("/results")
	resultsRoutes.Get("/detail", resultsCtrl.GetDetailTable)
	resultsRoutes.Get("/experts", resultsCtrl.GetExperts)
	resultsRoutes.Get("/anonymized", resultsCtrl.GetAnonymizedHistogram)
}
