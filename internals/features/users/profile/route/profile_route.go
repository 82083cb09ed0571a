package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profilectrl "kelasku_backend/internals/features/users/profile/controller"
)

// ProfileUserRoutes: endpoint profil milik sendiri (grup /api/u)
func ProfileUserRoutes(user fiber.Router, db *gorm.DB) {
	handler := profilectrl.NewProfileController(db)

	grp := user.Group("/profile")
	{
		grp.Get("/", handler.GetOwnProfile)
		grp.Put("/", handler.UpdateOwnProfile)
	}
}

// ProfileAdminRoutes: listing profil untuk dashboard admin (grup /api/a)
func ProfileAdminRoutes(admin fiber.Router, db *gorm.DB) {
	handler := profilectrl.NewProfileController(db)

	grp := admin.Group("/profiles")
	{
		grp.Get("/", handler.ListProfiles)
	}
}
