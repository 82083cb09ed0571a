package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressctrl "kelasku_backend/internals/features/assignments/progress/controller"
)

// ProgressAdminRoutes: rekap progres per kelas untuk dashboard admin.
func ProgressAdminRoutes(admin fiber.Router, db *gorm.DB) {
	handler := progressctrl.NewProgressController(db)

	admin.Get("/assignments/progress", handler.GetClassProgress)
}
