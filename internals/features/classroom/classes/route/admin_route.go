package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctrl "kelasku_backend/internals/features/classroom/classes/controller"
)

// ClassAdminRoutes: CRUD kelas untuk dashboard admin (grup /api/a)
func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	handler := classctrl.NewClassController(db)

	grp := admin.Group("/classes")
	{
		grp.Post("/", handler.CreateClass)
		grp.Get("/", handler.ListClasses)
		grp.Get("/:id", handler.GetClassByID)
		grp.Patch("/:id", handler.PatchClass)
		grp.Delete("/:id", handler.DeleteClass)
	}
}
