package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kelasku_backend/internals/features/notifications/settings/dto"
	"kelasku_backend/internals/features/notifications/settings/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

var validate = validator.New()

/* ====================== USER SETTINGS ====================== */

// GET /api/u/notification-settings
func (ctrl *NotificationController) ListOwnSettings(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var list []model.NotificationSettingModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("setting_user_id = ?", userID).
		Order("setting_key ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}

	return helper.JsonList(c, "Data diterima", list, nil)
}

// PUT /api/u/notification-settings — upsert per (user, key)
func (ctrl *NotificationController) UpsertOwnSetting(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := model.NotificationSettingModel{
		SettingUserID:    userID,
		SettingKey:       req.SettingKey,
		SettingEnabled:   req.SettingEnabled,
		SettingUpdatedAt: time.Now(),
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_user_id"}, {Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_enabled", "setting_updated_at"}),
		}).
		Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
	}

	return helper.JsonUpdated(c, "Pengaturan disimpan", m)
}

// DELETE /api/u/notification-settings/:key — kembali ke default
func (ctrl *NotificationController) DeleteOwnSetting(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	key := strings.ToLower(strings.TrimSpace(c.Params("key")))
	if key == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Key wajib diisi")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&model.NotificationSettingModel{}, "setting_user_id = ? AND setting_key = ?", userID, key).
		Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus pengaturan")
	}

	return helper.JsonDeleted(c, "Pengaturan dihapus", fiber.Map{"setting_key": key})
}

/* ======================= CLASS FLAGS ======================= */

// GET /api/a/class-notification-flags?class_id=
func (ctrl *NotificationController) ListClassFlags(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("class_id"))
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "class_id wajib diisi")
	}
	classID, err := uuid.Parse(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}

	var list []model.ClassNotificationFlagModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("flag_class_id = ?", classID).
		Order("flag_key ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil flag")
	}

	return helper.JsonList(c, "Data diterima", list, nil)
}

// PUT /api/a/class-notification-flags — upsert per (class, key)
func (ctrl *NotificationController) UpsertClassFlag(c *fiber.Ctx) error {
	var req dto.UpsertFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := model.ClassNotificationFlagModel{
		FlagClassID:   req.FlagClassID,
		FlagKey:       req.FlagKey,
		FlagEnabled:   req.FlagEnabled,
		FlagUpdatedAt: time.Now(),
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "flag_class_id"}, {Name: "flag_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"flag_enabled", "flag_updated_at"}),
		}).
		Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan flag")
	}

	return helper.JsonUpdated(c, "Flag disimpan", m)
}
