package migrations

import (
	"embed"
	"log"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// Up menjalankan migrasi terversi sekali saat startup.
// Skema TIDAK dibuat per-request; goose menyimpan versi di tabel goose_db_version.
func Up(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(sqlDB, "sql"); err != nil {
		return err
	}
	log.Println("✅ Migrasi database selesai.")
	return nil
}
