package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// BaseRoutes: endpoint non-domain (health check untuk LB/anti-cold-start).
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "error: " + err.Error()
		} else if err := sqlDB.PingContext(c.Context()); err != nil {
			dbStatus = "error: " + err.Error()
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"db":        dbStatus,
			"uptime":    time.Since(startedAt).Round(time.Second).String(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}
