package config

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"habittracker/models"
)

// RunSchemaChecks upgrades databases written by older builds: habit_logs
// gained a timestamp column (backfilled from the legacy date column) and
// users gained profile_picture. Every step is best-effort; a failure is
// logged and the app keeps serving with the schema it has.
func RunSchemaChecks(db *gorm.DB) {
	migrator := db.Migrator()

	if migrator.HasTable(&models.HabitLog{}) && !migrator.HasColumn(&models.HabitLog{}, "timestamp") {
		if err := migrator.AddColumn(&models.HabitLog{}, "Timestamp"); err != nil {
			log.Error().Err(err).Msg("schema check: could not add habit_logs.timestamp")
		} else if err := db.Exec(
			"UPDATE habit_logs SET timestamp = date WHERE timestamp IS NULL",
		).Error; err != nil {
			log.Error().Err(err).Msg("schema check: could not backfill habit_logs.timestamp")
		} else {
			log.Info().Msg("schema check: added habit_logs.timestamp and backfilled from date")
		}
	}

	if migrator.HasTable(&models.User{}) && !migrator.HasColumn(&models.User{}, "profile_picture") {
		if err := migrator.AddColumn(&models.User{}, "ProfilePicture"); err != nil {
			log.Error().Err(err).Msg("schema check: could not add users.profile_picture")
		} else {
			log.Info().Msg("schema check: added users.profile_picture")
		}
	}
}

// HasLogTimestamps reports whether the log table carries the timestamp
// column. Calendar queries return empty results instead of erroring when
// it is absent.
func HasLogTimestamps(db *gorm.DB) bool {
	return db.Migrator().HasColumn(&models.HabitLog{}, "timestamp")
}
