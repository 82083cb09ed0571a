package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	asgModel "kelasku_backend/internals/features/assignments/assignments/model"
	"kelasku_backend/internals/features/assignments/progress/service"
	classModel "kelasku_backend/internals/features/classroom/classes/model"
	profileDTO "kelasku_backend/internals/features/users/profile/dto"
	profileModel "kelasku_backend/internals/features/users/profile/model"
	helper "kelasku_backend/internals/helpers"
)

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

type submissionPair struct {
	StudentID uuid.UUID `json:"student_id" gorm:"column:assignment_student_id"`
	SessionNo int       `json:"session_no" gorm:"column:assignment_session_no"`
}

/* ============================ PROGRESS ============================ */
// GET /api/a/assignments/progress?class_id=
// Mengembalikan input mentah (roster, sesi, submission) PLUS agregasinya,
// supaya dashboard tidak perlu menghitung ulang di sisi klien.
func (ctrl *ProgressController) GetClassProgress(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("class_id"))
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "class_id wajib diisi")
	}
	classID, err := uuid.Parse(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}

	var class classModel.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	// roster = semua profil ber-role student
	var students []profileModel.ProfileModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("profile_role = ?", profileModel.RoleStudent).
		Order("profile_name ASC").
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar siswa")
	}

	var pairs []submissionPair
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&asgModel.AssignmentModel{}).
		Select("assignment_student_id", "assignment_session_no").
		Where("assignment_class_id = ?", classID).
		Find(&pairs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil submission")
	}

	roster := make([]uuid.UUID, 0, len(students))
	for i := range students {
		roster = append(roster, students[i].ProfileID)
	}
	submissions := make([]service.Submission, 0, len(pairs))
	for _, p := range pairs {
		submissions = append(submissions, service.Submission{
			StudentID: p.StudentID,
			SessionNo: p.SessionNo,
		})
	}
	sessions := service.ExpectedSessions(class.ClassTotalSessions)

	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"students":    profileDTO.FromModels(students),
		"sessions":    sessions,
		"submissions": pairs,
		"progress":    service.Aggregate(roster, submissions, sessions),
	})
}
