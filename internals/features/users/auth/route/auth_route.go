package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authctrl "kelasku_backend/internals/features/users/auth/controller"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
	middlewares "kelasku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	handler := authctrl.NewAuthController(db)

	grp := app.Group("/api/auth")
	{
		grp.Post("/register", middlewares.RegisterRateLimiter(), handler.Register)
		grp.Post("/login", middlewares.LoginRateLimiter(), handler.Login)
		grp.Post("/logout", authMiddleware.AuthMiddleware(db), handler.Logout)
		grp.Get("/me", authMiddleware.AuthMiddleware(db), handler.Me)
	}
}
