package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "kelasku_backend/internals/features/classroom/classes/model"
	"kelasku_backend/internals/features/content/materials/dto"
	"kelasku_backend/internals/features/content/materials/model"
	helper "kelasku_backend/internals/helpers"
	helperOSS "kelasku_backend/internals/helpers/oss"
)

type MaterialController struct {
	DB *gorm.DB
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/a/class-materials (multipart)
// type=file ambil dari field "material_file"; link/video pakai material_url.
func (ctrl *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	var req dto.CreateMaterialRequest
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
		First(&class, "class_id = ?", req.MaterialClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	}

	url := req.MaterialURL
	switch req.MaterialType {
	case model.MaterialTypeFile:
		fh, err := c.FormFile("material_file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File materi wajib diunggah untuk tipe file")
		}
		svc, err := helperOSS.NewOSSServiceFromEnv("")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Storage belum dikonfigurasi")
		}
		uploaded, err := svc.UploadFormFile(c.Context(), fh, "materials/"+req.MaterialClassID.String())
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Gagal mengunggah file: "+err.Error())
		}
		url = uploaded
	default:
		if url == "" {
			return fiber.NewError(fiber.StatusBadRequest, "material_url wajib diisi untuk tipe link/video")
		}
	}

	m := req.ToModel(url)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan materi")
	}

	return helper.JsonCreated(c, "Materi berhasil dibuat", dto.FromModel(m))
}

/* ============================ LIST ============================ */
// GET /api/u/class-materials?class_id=&session_no=
func (ctrl *MaterialController) ListMaterials(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("class_id"))
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "class_id wajib diisi")
	}
	classID, err := uuid.Parse(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}

	tx := ctrl.DB.WithContext(c.Context()).
		Where("material_class_id = ?", classID)
	if s := strings.TrimSpace(c.Query("session_no")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "session_no tidak valid")
		}
		tx = tx.Where("material_session_no = ?", n)
	}

	var list []model.MaterialModel
	if err := tx.Order("material_created_at DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	return helper.JsonList(c, "Data diterima", dto.FromModels(list), nil)
}

/* =========================== UPDATE =========================== */
// PATCH /api/a/class-materials/:id
func (ctrl *MaterialController) UpdateMaterial(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var req dto.UpdateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existing model.MaterialModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&existing, "material_id = ?", materialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", dto.FromModel(&existing))
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&existing).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui materi")
	}

	var fresh model.MaterialModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&fresh, "material_id = ?", materialID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	return helper.JsonUpdated(c, "Materi berhasil diperbarui", dto.FromModel(&fresh))
}

/* =========================== DELETE =========================== */
// DELETE /api/a/class-materials/:id — file di storage ikut dihapus (best effort)
func (ctrl *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var existing model.MaterialModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&existing, "material_id = ?", materialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus materi")
	}

	if existing.MaterialType == model.MaterialTypeFile {
		if svc, err := helperOSS.NewOSSServiceFromEnv(""); err == nil {
			_ = svc.DeleteByPublicURL(c.Context(), existing.MaterialURL)
		}
	}

	return helper.JsonDeleted(c, "Materi berhasil dihapus", fiber.Map{"material_id": materialID})
}
