package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	asgModel "kelasku_backend/internals/features/assignments/assignments/model"
	"kelasku_backend/internals/features/assignments/feedback/dto"
	"kelasku_backend/internals/features/assignments/feedback/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/a/assignment-feedbacks — author = admin yang sedang login
func (ctrl *FeedbackController) CreateFeedback(c *fiber.Ctx) error {
	authorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// pastikan tugasnya ada
	var exists asgModel.AssignmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("assignment_id").
		First(&exists, "assignment_id = ?", req.AssignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa tugas")
	}

	m := req.ToModel(authorID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan feedback")
	}

	return helper.JsonCreated(c, "Feedback berhasil dibuat", dto.FromModel(m))
}

/* ============================ LIST ============================ */
// GET /api/u/assignment-feedbacks?assignment_id=
func (ctrl *FeedbackController) ListFeedbacks(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("assignment_id"))
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "assignment_id wajib diisi")
	}
	assignmentID, err := uuid.Parse(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "assignment_id tidak valid")
	}

	var list []model.FeedbackModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("feedback_assignment_id = ?", assignmentID).
		Order("feedback_created_at ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}

	return helper.JsonList(c, "Data diterima", dto.FromModels(list), nil)
}
