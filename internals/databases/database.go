package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skillsmap_backend/internals/configs"
	"skillsmap_backend/internals/constants"
	answerModel "skillsmap_backend/internals/features/answers/answer/model"
	surveyModel "skillsmap_backend/internals/features/surveys/survey/model"
	userModel "skillsmap_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ Gunakan URL/DSN lengkap + statement_timeout
	// Catatan: kalau pakai PgBouncer, arahkan ke port PgBouncer dan biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=skillsmap&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrateAll menjalankan migrasi skema untuk semua model inti.
func AutoMigrateAll() {
	if err := DB.AutoMigrate(
		&userModel.RoleModel{},
		&userModel.BusinessUnitModel{},
		&userModel.UserModel{},
		&surveyModel.SurveyModel{},
		&surveyModel.QuestionModel{},
		&surveyModel.AnswerOptionModel{},
		&answerModel.AnswerModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}

// SeedAnswerOptions memastikan skala ordinal 0..3 selalu ada.
// Role default "General" juga di-ensure di sini.
func SeedAnswerOptions() {
	for ord := constants.AnswerOrdinalMin; ord <= constants.AnswerOrdinalMax; ord++ {
		opt := surveyModel.AnswerOptionModel{
			AnswerOptionLabel:   constants.AnswerOrdinalLabels[ord],
			AnswerOptionOrdinal: ord,
		}
		if err := DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "answer_option_ordinal"}},
			DoNothing: true,
		}).Create(&opt).Error; err != nil {
			log.Printf("[SEED] answer option ordinal=%d err: %v", ord, err)
		}
	}

	defaultRole := userModel.RoleModel{
		RoleName:      constants.DefaultRoleName,
		RoleIsDefault: true,
	}
	if err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role_name"}},
		DoNothing: true,
	}).Create(&defaultRole).Error; err != nil {
		log.Printf("[SEED] default role err: %v", err)
	}
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool keisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
