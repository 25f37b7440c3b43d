package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skillsmap_backend/internals/constants"
	"skillsmap_backend/internals/features/users/user/dto"
	"skillsmap_backend/internals/features/users/user/model"
	helper "skillsmap_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 📋 GetAll: daftar user (paged) untuk layar admin.
func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	var users []model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Roles").
		Order("user_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Failed to load users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(&u))
	}

	return helper.JsonList(c, "OK", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 📋 GetByID
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var user model.UserModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Preload("Roles").Preload("BusinessUnit").
		First(&user, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		log.Println("[ERROR] Failed to load user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	return helper.JsonOK(c, "OK", toUserResponse(&user))
}

// 🔧 AssignRoles: replace daftar role user (role default tidak bisa dicabut).
func (ctrl *UserController) AssignRoles(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var input dto.AssignRolesRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	err = ctrl.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	var roles []model.RoleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("role_id IN ?", input.RoleIDs).Find(&roles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat role")
	}
	if len(roles) != len(input.RoleIDs) {
		return helper.JsonError(c, fiber.StatusNotFound, "Ada role yang tidak ditemukan")
	}

	// role default ("General") selalu melekat, tidak bisa di-toggle off
	hasDefault := false
	for _, r := range roles {
		if r.RoleIsDefault {
			hasDefault = true
			break
		}
	}
	if !hasDefault {
		var defaultRole model.RoleModel
		if err := ctrl.DB.WithContext(c.UserContext()).
			Where("role_is_default = ?", true).First(&defaultRole).Error; err == nil {
			roles = append(roles, defaultRole)
		}
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&user).Association("Roles").Replace(roles); err != nil {
		log.Println("[ERROR] Failed to assign roles:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan role user")
	}

	user.Roles = roles
	return helper.JsonOK(c, "Role user diperbarui", toUserResponse(&user))
}

// 🔧 UpdatePreferences: user mengubah cara dia mau dihubungi.
func (ctrl *UserController) UpdatePreferences(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input dto.UpdatePreferencesRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_communication_preferences", pq.StringArray(input.CommunicationPreferences)).Error; err != nil {
		log.Println("[ERROR] Failed to update preferences:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan preferensi")
	}

	return helper.JsonOK(c, "Preferensi tersimpan", fiber.Map{
		"communication_preferences": input.CommunicationPreferences,
	})
}

/* =========================================================
   BUSINESS UNITS
========================================================= */

// 📋 GetBusinessUnits
func (ctrl *UserController) GetBusinessUnits(c *fiber.Ctx) error {
	var units []model.BusinessUnitModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("business_unit_name ASC").Find(&units).Error; err != nil {
		log.Println("[ERROR] Failed to load business units:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat business unit")
	}
	return helper.JsonOK(c, "OK", units)
}

// ➕ CreateBusinessUnit (idempoten by name)
func (ctrl *UserController) CreateBusinessUnit(c *fiber.Ctx) error {
	var input dto.CreateBusinessUnitRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, err)
	}

	unit := model.BusinessUnitModel{BusinessUnitName: input.BusinessUnitName}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "business_unit_name"}},
			DoNothing: true,
		}).Create(&unit).Error; err != nil {
		log.Println("[ERROR] Failed to create business unit:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan business unit")
	}

	return helper.JsonCreated(c, "Business unit tersimpan", unit)
}

/* =========================================================
   Internal helpers
========================================================= */

func toUserResponse(u *model.UserModel) dto.UserResponse {
	resp := dto.UserResponse{
		UserID:                       u.UserID,
		UserName:                     u.UserName,
		UserEmail:                    u.UserEmail,
		UserIsAdmin:                  u.UserIsAdmin,
		UserBusinessUnitID:           u.UserBusinessUnitID,
		UserCommunicationPreferences: u.UserCommunicationPreferences,
	}
	if len(resp.UserCommunicationPreferences) == 0 {
		resp.UserCommunicationPreferences = []string{constants.SentinelDoNotContact}
	}
	for _, r := range u.Roles {
		resp.RoleNames = append(resp.RoleNames, r.RoleName)
	}
	return resp
}
