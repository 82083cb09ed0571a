package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifctrl "kelasku_backend/internals/features/notifications/settings/controller"
)

// NotificationUserRoutes: toggle notifikasi milik user sendiri (grup /api/u)
func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	handler := notifctrl.NewNotificationController(db)

	grp := user.Group("/notification-settings")
	{
		grp.Get("/", handler.ListOwnSettings)
		grp.Put("/", handler.UpsertOwnSetting)
		grp.Delete("/:key", handler.DeleteOwnSetting)
	}
}

// NotificationAdminRoutes: flag notifikasi per kelas (grup /api/a)
func NotificationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	handler := notifctrl.NewNotificationController(db)

	grp := admin.Group("/class-notification-flags")
	{
		grp.Get("/", handler.ListClassFlags)
		grp.Put("/", handler.UpsertClassFlag)
	}
}
