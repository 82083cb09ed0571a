package controller

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/assignments/assignments/dto"
	"kelasku_backend/internals/features/assignments/assignments/model"
	"kelasku_backend/internals/features/assignments/assignments/service"
	fbModel "kelasku_backend/internals/features/assignments/feedback/model"
	profileModel "kelasku_backend/internals/features/users/profile/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
	helperOSS "kelasku_backend/internals/helpers/oss"
)

/* ================= Controller & Constructor ================= */

type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/u/assignments
// Identitas siswa dari token; admin boleh mengirim student_id untuk submit
// atas nama siswa. Tanpa dedup & tanpa update-in-place: duplikat session
// dibiarkan (dedup terjadi saat baca, lihat progress).
func (ctrl *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	callerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	// 🧹 Normalisasi + ✅ validasi — SEBELUM efek samping apa pun
	req.Normalize()
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID := callerID
	if req.StudentID != nil && *req.StudentID != callerID {
		if !helperAuth.IsAdmin(c) {
			return fiber.NewError(fiber.StatusForbidden, "Hanya admin yang boleh submit atas nama siswa lain")
		}
		studentID = *req.StudentID
	}

	// 🖼️ Upload gambar (kalau varian image). Error decode = error validasi (400),
	// error upload = error upstream (502) — dibedakan sesuai kontrak API.
	var imageURL *string
	if req.ImageBase64 != nil {
		webpBytes, decErr := helperOSS.DecodeBase64Image(*req.ImageBase64)
		if decErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Gambar tidak valid: "+decErr.Error())
		}

		svc, initErr := helperOSS.NewOSSServiceFromEnv("")
		if initErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Init OSS gagal: "+initErr.Error())
		}
		ctx, cancel := context.WithTimeout(c.Context(), 45*time.Second)
		defer cancel()

		key := fmt.Sprintf("classrooms/%s/students/%s/%d.webp",
			req.ClassroomID.String(), studentID.String(), time.Now().Unix())
		publicURL, upErr := svc.UploadBytes(ctx, key, webpBytes, "image/webp")
		if upErr != nil {
			// gagal upload = submit batal, TANPA row tersisa
			return fiber.NewError(fiber.StatusBadGateway, "Upload gambar gagal: "+upErr.Error())
		}
		imageURL = &publicURL
	}

	m := req.ToModel(studentID, imageURL)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan tugas")
	}

	// dikembalikan apa adanya (verbatim)
	return helper.JsonCreated(c, "Tugas berhasil dikumpulkan", dto.FromModel(m))
}

/* ============================ LIST ============================ */
// GET /api/u/assignments?classroom_id=&student_id=&session_no=
// Hasil urut terbaru dulu, TANPA pagination (full filtered set),
// lalu dua lookup sekunder (feedback & profil) digabung di memory.
func (ctrl *AssignmentController) ListAssignments(c *fiber.Ctx) error {
	var filter service.ListFilter

	if raw := strings.TrimSpace(c.Query("classroom_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "classroom_id tidak valid")
		}
		filter.ClassroomID = &id
	}
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
		}
		filter.StudentID = &id
	}
	if raw := strings.TrimSpace(c.Query("session_no")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "session_no tidak valid")
		}
		filter.SessionNo = n
	}

	var assignments []model.AssignmentModel
	if err := filter.Apply(ctrl.DB.WithContext(c.Context())).
		Find(&assignments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data tugas")
	}

	var (
		feedbacks []fbModel.FeedbackModel
		profiles  []profileModel.ProfileModel
	)
	if len(assignments) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Where("feedback_assignment_id IN ?", service.AssignmentIDs(assignments)).
			Order("feedback_created_at ASC").
			Find(&feedbacks).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil feedback")
		}
		if err := ctrl.DB.WithContext(c.Context()).
			Where("profile_id IN ?", service.StudentIDs(assignments)).
			Find(&profiles).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil")
		}
	}

	return helper.JsonList(c, "Data diterima", service.Enrich(assignments, feedbacks, profiles), nil)
}
