package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fbctrl "kelasku_backend/internals/features/assignments/feedback/controller"
)

// FeedbackAdminRoutes: admin menulis feedback atas tugas (grup /api/a)
func FeedbackAdminRoutes(admin fiber.Router, db *gorm.DB) {
	handler := fbctrl.NewFeedbackController(db)

	grp := admin.Group("/assignment-feedbacks")
	{
		grp.Post("/", handler.CreateFeedback)
	}
}

// FeedbackUserRoutes: siswa membaca feedback tugasnya (grup /api/u)
func FeedbackUserRoutes(user fiber.Router, db *gorm.DB) {
	handler := fbctrl.NewFeedbackController(db)

	grp := user.Group("/assignment-feedbacks")
	{
		grp.Get("/", handler.ListFeedbacks)
	}
}
