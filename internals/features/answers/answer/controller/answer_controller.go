package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skillsmap_backend/internals/features/answers/answer/dto"
	"skillsmap_backend/internals/features/answers/answer/service"
	helper "skillsmap_backend/internals/helpers"
)

type AnswerController struct {
	DB      *gorm.DB
	Service *service.AnswerService
}

func NewAnswerController(db *gorm.DB) *AnswerController {
	return &AnswerController{
		DB:      db,
		Service: service.NewAnswerService(db),
	}
}

// 📩 SubmitAnswer: upsert satu jawaban (user, question) → option.
func (ctrl *AnswerController) SubmitAnswer(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input dto.AnswerSubmitRequest
	if err := c.BodyParser(&input); err != nil {
		log.Println("[ERROR] Failed to parse answer input:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, err)
	}

	created, err := ctrl.Service.Upsert(c.UserContext(), userID, input.QuestionID, input.AnswerOptionID)
	if err != nil {
		return answerErrorToJSON(c, err)
	}

	return helper.JsonOK(c, "Jawaban tersimpan", dto.AnswerSubmitResponse{
		QuestionID:      input.QuestionID,
		WasNewlyCreated: created,
	})
}

// 📩 SubmitAnswerBatch: upsert banyak jawaban sekaligus, per item independen.
// Kalau ada yang gagal → 207 + detail per item supaya klien bisa retry
// cuma item yang failed.
func (ctrl *AnswerController) SubmitAnswerBatch(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	// payload harus array
	var inputs []dto.AnswerSubmitRequest
	if err := c.BodyParser(&inputs); err != nil {
		log.Println("[ERROR] Failed to parse batch answer input:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input (expected JSON array)")
	}
	if len(inputs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No answers provided")
	}
	for _, in := range inputs {
		if err := in.Validate(); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	result := ctrl.Service.SubmitBatch(c.UserContext(), userID, inputs)
	if result.FailedCount > 0 {
		return helper.JsonPartial(c, "Sebagian jawaban gagal disimpan", result)
	}
	return helper.JsonOK(c, "Semua jawaban tersimpan", result)
}

func answerErrorToJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrQuestionNotFound), errors.Is(err, service.ErrOptionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrQuestionNotLive):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		log.Println("[ERROR] Failed to save answer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jawaban")
	}
}
