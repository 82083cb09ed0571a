package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "kelasku_backend/internals/features/classroom/classes/model"
	"kelasku_backend/internals/features/content/notices/dto"
	"kelasku_backend/internals/features/content/notices/model"
	helper "kelasku_backend/internals/helpers"
)

type NoticeController struct {
	DB *gorm.DB
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/a/class-notices
func (ctrl *NoticeController) CreateNotice(c *fiber.Ctx) error {
	var req dto.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var class classModel.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("class_id").
		First(&class, "class_id = ?", req.NoticeClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pengumuman")
	}

	return helper.JsonCreated(c, "Pengumuman berhasil dibuat", dto.FromModel(m))
}

/* ============================ LIST ============================ */
// GET /api/u/class-notices?class_id= — yang dipin tampil duluan
func (ctrl *NoticeController) ListNotices(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("class_id"))
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "class_id wajib diisi")
	}
	classID, err := uuid.Parse(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}

	var list []model.NoticeModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("notice_class_id = ?", classID).
		Order("notice_is_pinned DESC, notice_created_at DESC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	return helper.JsonList(c, "Data diterima", dto.FromModels(list), nil)
}

/* =========================== UPDATE =========================== */
// PATCH /api/a/class-notices/:id
func (ctrl *NoticeController) UpdateNotice(c *fiber.Ctx) error {
	noticeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID pengumuman tidak valid")
	}

	var req dto.UpdateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existing model.NoticeModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&existing, "notice_id = ?", noticeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", dto.FromModel(&existing))
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&existing).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui pengumuman")
	}

	var fresh model.NoticeModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&fresh, "notice_id = ?", noticeID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	return helper.JsonUpdated(c, "Pengumuman berhasil diperbarui", dto.FromModel(&fresh))
}

/* =========================== DELETE =========================== */
// DELETE /api/a/class-notices/:id
func (ctrl *NoticeController) DeleteNotice(c *fiber.Ctx) error {
	noticeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID pengumuman tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.NoticeModel{}, "notice_id = ?", noticeID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pengumuman berhasil dihapus", fiber.Map{"notice_id": noticeID})
}
