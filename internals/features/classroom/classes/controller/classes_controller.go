package controller

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/classroom/classes/dto"
	"kelasku_backend/internals/features/classroom/classes/model"
	"kelasku_backend/internals/features/classroom/rules"
	helper "kelasku_backend/internals/helpers"
	helperOSS "kelasku_backend/internals/helpers/oss"
)

/* ================= Controller & Constructor ================= */

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/a/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	// 🧹 Normalisasi
	req.Normalize()

	// ✅ Validasi payload
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// 🖼️ (Opsional) upload cover kelas → otomatis konversi ke WebP
	if fh, ferr := c.FormFile("class_image"); ferr == nil && fh != nil {
		svc, err := helperOSS.NewOSSServiceFromEnv("")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Init OSS gagal: "+err.Error())
		}
		ctx, cancel := context.WithTimeout(c.Context(), 45*time.Second)
		defer cancel()

		publicURL, upErr := svc.UploadAsWebP(ctx, fh, "classes")
		if upErr != nil {
			if strings.Contains(strings.ToLower(upErr.Error()), "format tidak didukung") {
				return fiber.NewError(fiber.StatusUnsupportedMediaType, "Format tidak didukung (jpg/png/webp)")
			}
			return fiber.NewError(fiber.StatusBadGateway, "Upload gambar gagal: "+upErr.Error())
		}
		m.ClassImageURL = &publicURL
	}

	// 💾 Simpan
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat data kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.FromModel(m))
}

/* ============================ PATCH ============================ */
// PATCH /api/a/classes/:id
func (ctrl *ClassController) PatchClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PatchClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// --- Upload gambar baru (multipart) → override patch field
	if fh, ferr := c.FormFile("class_image"); ferr == nil && fh != nil {
		svc, err := helperOSS.NewOSSServiceFromEnv("")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Init OSS gagal: "+err.Error())
		}
		ctx, cancel := context.WithTimeout(c.Context(), 45*time.Second)
		defer cancel()

		publicURL, upErr := svc.UploadAsWebP(ctx, fh, "classes")
		if upErr != nil {
			if strings.Contains(strings.ToLower(upErr.Error()), "format tidak didukung") {
				return fiber.NewError(fiber.StatusUnsupportedMediaType, "Format tidak didukung (jpg/png/webp)")
			}
			return fiber.NewError(fiber.StatusBadGateway, "Upload gambar gagal: "+upErr.Error())
		}
		req.ClassImageURL = dto.PatchField[string]{Present: true, Value: &publicURL}
	}

	upd, err := req.ToUpdates()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if len(upd) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.ClassModel{}).
		Where("class_id = ?", classID).
		Updates(upd)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).First(&m, "class_id = ?", classID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.FromModel(&m))
}

/* ============================ LIST ============================ */
// GET /api/a/classes?category=&active=  (juga dipakai listing publik siswa)
func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.ClassModel{})

	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("class_category = ?", cat)
	}
	switch strings.ToLower(strings.TrimSpace(c.Query("active"))) {
	case "true":
		q = q.Where("class_is_active = TRUE")
	case "false":
		q = q.Where("class_is_active = FALSE")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.ClassModel
	if err := q.Order("class_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Data diterima", dto.FromModels(list),
		helper.BuildPagination(total, paging, len(list)))
}

/* ========================== GET BY ID ========================== */
// GET /api/u/classes/:id
func (ctrl *ClassController) GetClassByID(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Data diterima", dto.FromModel(&m))
}

/* ========================== DELETE ========================== */
// DELETE /api/a/classes/:id — hapus FISIK (tanpa soft-delete);
// tugas/materi/notice ikut terhapus via ON DELETE CASCADE.
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("class_id = ?", classID).
		Delete(&model.ClassModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{
		"class_id": classID,
	})
}

/* ========================= CAN SUBMIT ========================= */
// GET /api/u/classes/:id/can-submit — evaluasi aturan pengumpulan saat ini
func (ctrl *ClassController) CanSubmit(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	rule := dto.RuleFromModel(&m)
	now := time.Now()
	allowed := m.ClassIsActive && rules.CanSubmitAt(rule, now)

	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"class_id":     m.ClassID,
		"can_submit":   allowed,
		"rule":         rule,
		"evaluated_at": now.Format(time.RFC3339),
	})
}
