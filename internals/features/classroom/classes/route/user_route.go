package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctrl "kelasku_backend/internals/features/classroom/classes/controller"
)

// ClassUserRoutes: endpoint kelas untuk siswa/VOD (grup /api/u)
func ClassUserRoutes(user fiber.Router, db *gorm.DB) {
	handler := classctrl.NewClassController(db)

	grp := user.Group("/classes")
	{
		grp.Get("/", handler.ListClasses)
		grp.Get("/:id", handler.GetClassByID)
		grp.Get("/:id/can-submit", handler.CanSubmit)
	}
}
