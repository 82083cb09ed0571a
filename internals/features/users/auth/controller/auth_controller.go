package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	"kelasku_backend/internals/features/users/auth/dto"
	authModel "kelasku_backend/internals/features/users/auth/model"
	profileModel "kelasku_backend/internals/features/users/profile/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

/* =========================== REGISTER =========================== */
// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := authModel.UserModel{
		UserName: req.UserName,
		Email:    req.Email,
		Password: string(hashed),
		IsActive: true,
	}

	// users + profiles dibuat dalam satu transaksi
	tx := ctrl.DB.WithContext(c.Context()).Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback().Error
			panic(r)
		}
	}()

	if err := tx.Create(&user).Error; err != nil {
		_ = tx.Rollback().Error
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}

	profile := profileModel.ProfileModel{
		ProfileID:    user.ID,
		ProfileName:  user.UserName,
		ProfileEmail: user.Email,
		ProfileRole:  req.Role,
	}
	if err := tx.Create(&profile).Error; err != nil {
		_ = tx.Rollback().Error
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat profil")
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Registrasi berhasil", dto.FromUser(&user, profile.ProfileRole))
}

/* ============================= LOGIN ============================= */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user authModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("email = ?", req.Email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	var profile profileModel.ProfileModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&profile, "profile_id = ?", user.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Profil tidak ditemukan")
	}

	expiresAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"role":      profile.ProfileRole,
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] Gagal membuat token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        dto.FromUser(&user, profile.ProfileRole),
	})
}

/* ============================= LOGOUT ============================= */
// POST /api/auth/logout — token masuk blacklist (sesi dipaksa berakhir)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, ok := c.Locals("token").(string)
	if !ok || tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token tidak ditemukan")
	}

	entry := authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: blacklistExpiry(tokenString, time.Now()),
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal logout")
	}

	return helper.JsonOK(c, "Logout berhasil", nil)
}

// blacklistExpiry mengambil klaim exp token supaya entri blacklist hidup
// tepat selama token-nya masih berlaku. Token sudah diverifikasi
// middleware; kalau exp tak terbaca, fallback ke now+TTL.
func blacklistExpiry(tokenString string, now time.Time) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok && exp > 0 {
			return time.Unix(int64(exp), 0)
		}
	}
	return now.Add(accessTokenTTL)
}

/* =============================== ME =============================== */
// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user authModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	var profile profileModel.ProfileModel
	if err := ctrl.DB.WithContext(c.Context()).First(&profile, "profile_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Profil tidak ditemukan")
	}

	return helper.JsonOK(c, "Data diterima", dto.FromUser(&user, profile.ProfileRole))
}
