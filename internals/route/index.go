// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerRoute "skillsmap_backend/internals/features/answers/answer/route"
	resultsRoute "skillsmap_backend/internals/features/results/results/route"
	progressionRoute "skillsmap_backend/internals/features/surveys/progression/route"
	surveyRoute "skillsmap_backend/internals/features/surveys/survey/route"
	authRoute "skillsmap_backend/internals/features/users/auth/route"
	userRoute "skillsmap_backend/internals/features/users/user/route"
	middlewares "skillsmap_backend/internals/middlewares"
	authMiddleware "skillsmap_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(middlewares.DBMiddleware(db))

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	// GET survey aktif boleh tanpa login (katalog pertanyaan saja,
	// tidak ada data jawaban user).
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	surveyRoute.SurveyUserRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	surveyRoute.SurveyUserRoutes(private, db)
	answerRoute.AnswerUserRoutes(private, db)
	progressionRoute.ProgressionUserRoutes(private, db)
	userRoute.UserSelfRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.OnlyAdmin("laporan & manajemen survey"),
	)
	surveyRoute.SurveyAdminRoutes(admin, db)
	resultsRoute.ResultsAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
}
