package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	matctrl "kelasku_backend/internals/features/content/materials/controller"
)

// MaterialAdminRoutes: kelola materi kelas (grup /api/a)
func MaterialAdminRoutes(admin fiber.Router, db *gorm.DB) {
	handler := matctrl.NewMaterialController(db)

	grp := admin.Group("/class-materials")
	{
		grp.Post("/", handler.CreateMaterial)
		grp.Patch("/:id", handler.UpdateMaterial)
		grp.Delete("/:id", handler.DeleteMaterial)
	}
}

// MaterialUserRoutes: siswa membaca materi (grup /api/u)
func MaterialUserRoutes(user fiber.Router, db *gorm.DB) {
	handler := matctrl.NewMaterialController(db)

	grp := user.Group("/class-materials")
	{
		grp.Get("/", handler.ListMaterials)
	}
}
