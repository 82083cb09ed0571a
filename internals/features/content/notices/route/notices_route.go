package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticectrl "kelasku_backend/internals/features/content/notices/controller"
)

// NoticeAdminRoutes: kelola pengumuman kelas (grup /api/a)
func NoticeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	handler := noticectrl.NewNoticeController(db)

	grp := admin.Group("/class-notices")
	{
		grp.Post("/", handler.CreateNotice)
		grp.Patch("/:id", handler.UpdateNotice)
		grp.Delete("/:id", handler.DeleteNotice)
	}
}

// NoticeUserRoutes: siswa membaca pengumuman (grup /api/u)
func NoticeUserRoutes(user fiber.Router, db *gorm.DB) {
	handler := noticectrl.NewNoticeController(db)

	grp := user.Group("/class-notices")
	{
		grp.Get("/", handler.ListNotices)
	}
}
