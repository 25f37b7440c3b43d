package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skillsmap_backend/internals/configs"
	"skillsmap_backend/internals/features/users/auth/dto"
	userModel "skillsmap_backend/internals/features/users/user/model"
	helper "skillsmap_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 📝 Register: buat user baru + auto-attach role default.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var input dto.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] Failed to hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName:     input.UserName,
		UserEmail:    input.Email,
		UserPassword: string(hashed),
	}

	// role default "General" otomatis melekat ke user baru
	var defaultRole userModel.RoleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("role_is_default = ?", true).First(&defaultRole).Error; err == nil {
		user.Roles = []userModel.RoleModel{defaultRole}
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		log.Println("[ERROR] Failed to create user:", err)
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"user_id": user.UserID,
	})
}

// 🔑 Login: verifikasi bcrypt → terbitkan access token.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "user_email = ?", input.Email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err != nil {
		log.Println("[ERROR] Failed to load user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := helper.GenerateAccessToken(configs.JWTSecret, user.UserID, user.UserIsAdmin, 24*time.Hour)
	if err != nil {
		log.Println("[ERROR] Failed to sign token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	refresh, err := helper.GenerateRefreshToken(configs.JWTRefreshSecret, user.UserID, 7*24*time.Hour)
	if err != nil {
		log.Println("[ERROR] Failed to sign refresh token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken:  token,
		RefreshToken: refresh,
		UserID:       user.UserID.String(),
		UserName:     user.UserName,
		IsAdmin:      user.UserIsAdmin,
	})
}

// 🔁 Refresh: tukar refresh token dengan access token baru. User di-reload
// supaya perubahan status admin ikut masuk ke claim terbaru.
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, err := helper.ParseRefreshToken(configs.JWTRefreshSecret, input.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	token, err := helper.GenerateAccessToken(configs.JWTSecret, user.UserID, user.UserIsAdmin, 24*time.Hour)
	if err != nil {
		log.Println("[ERROR] Failed to sign token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	return helper.JsonOK(c, "Token diperbarui", dto.RefreshResponse{AccessToken: token})
}
