package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asgctrl "kelasku_backend/internals/features/assignments/assignments/controller"
)

// AssignmentUserRoutes: submit & listing tugas (grup /api/u)
func AssignmentUserRoutes(user fiber.Router, db *gorm.DB) {
	handler := asgctrl.NewAssignmentController(db)

	grp := user.Group("/assignments")
	{
		grp.Post("/", handler.CreateAssignment)
		grp.Get("/", handler.ListAssignments)
	}
}
