package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	profileModel "kelasku_backend/internals/features/users/profile/model"
)

// RoleMiddlewareWithCustomError validasi role + custom error message
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Ambil role dari context (HARUS seragam)
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

// IsAdminDB memastikan kolom role di tabel profiles MEMANG 'admin'
// (klaim token saja tidak cukup untuk grup /api/a).
func IsAdminDB(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := c.Locals("user_id").(string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing user information")
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: user id tidak valid")
		}

		var p profileModel.ProfileModel
		if err := db.Select("profile_role").
			First(&p, "profile_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusForbidden, "Profil tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa role")
		}
		if p.ProfileRole != profileModel.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Khusus admin")
		}
		return c.Next()
	}
}
