package seeds

import (
	"errors"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "kelasku_backend/internals/features/users/auth/model"
	profileModel "kelasku_backend/internals/features/users/profile/model"
)

// Run mengisi data awal. Idempoten: aman dijalankan berkali-kali.
func Run(db *gorm.DB) {
	if err := seedAdmin(db); err != nil {
		log.Fatalf("❌ Seeder admin gagal: %v", err)
	}
	log.Println("✅ Seeder selesai")
}

// seedAdmin membuat satu akun admin dari env (SEED_ADMIN_EMAIL,
// SEED_ADMIN_PASSWORD, SEED_ADMIN_NAME). Skip bila emailnya sudah ada.
func seedAdmin(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	name := strings.TrimSpace(os.Getenv("SEED_ADMIN_NAME"))
	if email == "" || password == "" {
		log.Println("⚠️ SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD kosong, seeder admin dilewati")
		return nil
	}
	if name == "" {
		name = "Administrator"
	}

	var existing userModel.UserModel
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("ℹ️ Admin %s sudah ada, skip", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: string(hashed),
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := profileModel.ProfileModel{
			ProfileID:    user.ID,
			ProfileName:  name,
			ProfileEmail: email,
			ProfileRole:  profileModel.RoleAdmin,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		log.Printf("✅ Admin %s dibuat", email)
		return nil
	})
}
