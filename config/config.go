package config

import (
	"os"
	"path/filepath"

	"habittracker/models"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// UploadDir is where profile pictures land. Served under /static.
var UploadDir string

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment defaults")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "habits.db"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("failed to open database")
	}
	DB = db

	// Legacy-column checks run first so the timestamp backfill sees the
	// old schema before AutoMigrate fills in whatever else is missing.
	RunSchemaChecks(DB)

	err = DB.AutoMigrate(
		&models.Habit{},
		&models.HabitLog{},
		&models.User{},
	)
	if err != nil {
		log.Error().Err(err).Msg("AutoMigrate failed, continuing with existing schema")
	}

	UploadDir = os.Getenv("UPLOAD_DIR")
	if UploadDir == "" {
		UploadDir = filepath.Join("static", "uploads")
	}
	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", UploadDir).Msg("failed to create upload directory")
	}
}

func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
