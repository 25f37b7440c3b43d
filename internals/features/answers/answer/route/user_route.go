package route

import (
	answerController "skillsmap_backend/internals/features/answers/answer/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AnswerUserRoutes(api fiber.Router, db *gorm.DB) {
	answerCtrl := answerController.NewAnswerController(db)

	// 📝 Routes untuk user menjawab survey
	answerRoutes := api.Group("/answers")
	answerRoutes.Post("/", answerCtrl.SubmitAnswer)
	answerRoutes.Post("/batch", answerCtrl.SubmitAnswerBatch)
}
