package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asgRoute "kelasku_backend/internals/features/assignments/assignments/route"
	fbRoute "kelasku_backend/internals/features/assignments/feedback/route"
	progressRoute "kelasku_backend/internals/features/assignments/progress/route"
	classRoute "kelasku_backend/internals/features/classroom/classes/route"
	materialRoute "kelasku_backend/internals/features/content/materials/route"
	noticeRoute "kelasku_backend/internals/features/content/notices/route"
	notifRoute "kelasku_backend/internals/features/notifications/settings/route"
	authRoute "kelasku_backend/internals/features/users/auth/route"
	profileModel "kelasku_backend/internals/features/users/profile/model"
	profileRoute "kelasku_backend/internals/features/users/profile/route"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh route aplikasi.
// /api/auth : publik (register/login) + logout/me
// /api/u    : semua role, wajib login
// /api/a    : admin saja (role di token DAN re-check ke tabel profiles)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api")

	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	{
		profileRoute.ProfileUserRoutes(user, db)
		classRoute.ClassUserRoutes(user, db)
		asgRoute.AssignmentUserRoutes(user, db)
		fbRoute.FeedbackUserRoutes(user, db)
		materialRoute.MaterialUserRoutes(user, db)
		noticeRoute.NoticeUserRoutes(user, db)
		notifRoute.NotificationUserRoutes(user, db)
	}

	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("❌ Akses khusus admin", profileModel.RoleAdmin),
		authMiddleware.IsAdminDB(db),
	)
	{
		profileRoute.ProfileAdminRoutes(admin, db)
		classRoute.ClassAdminRoutes(admin, db)
		fbRoute.FeedbackAdminRoutes(admin, db)
		progressRoute.ProgressAdminRoutes(admin, db)
		materialRoute.MaterialAdminRoutes(admin, db)
		noticeRoute.NoticeAdminRoutes(admin, db)
		notifRoute.NotificationAdminRoutes(admin, db)
	}
}
