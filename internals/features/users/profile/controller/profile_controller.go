package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/users/profile/dto"
	"kelasku_backend/internals/features/users/profile/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

var validate = validator.New()

/* =========================== LIST (ADMIN) =========================== */
// GET /api/a/profiles?role=
func (ctrl *ProfileController) ListProfiles(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.ProfileModel{})

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		if !model.ValidRole(role) {
			return fiber.NewError(fiber.StatusBadRequest, "Role tidak dikenal")
		}
		q = q.Where("profile_role = ?", role)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.ProfileModel
	if err := q.Order("profile_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Data diterima", dto.FromModels(list),
		helper.BuildPagination(total, paging, len(list)))
}

/* ============================ GET OWN ============================ */
// GET /api/u/profile
func (ctrl *ProfileController) GetOwnProfile(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var m model.ProfileModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "profile_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Profil tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Data diterima", dto.FromModel(&m))
}

/* ============================ UPDATE OWN ============================ */
// PUT /api/u/profile
func (ctrl *ProfileController) UpdateOwnProfile(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.ProfileModel{}).
		Where("profile_id = ?", userID).
		Update("profile_name", req.ProfileName)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Profil tidak ditemukan")
	}

	var m model.ProfileModel
	if err := ctrl.DB.WithContext(c.Context()).First(&m, "profile_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.FromModel(&m))
}
