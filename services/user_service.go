package services

import (
	"errors"
	"os"
	"path/filepath"

	"habittracker/config"
	"habittracker/models"
	"habittracker/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	placeholderEmail       = "you@example.com"
	placeholderDisplayName = "New User"
)

var ErrNoProfilePicture = errors.New("no profile picture set")

// GetOrCreateDefaultUser returns the implicit single user (first row),
// creating it with placeholder values on first visit.
func GetOrCreateDefaultUser() (*models.User, error) {
	var user models.User
	err := config.DB.First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Email:       placeholderEmail,
			DisplayName: placeholderDisplayName,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile overwrites the profile fields. The password is hashed and
// stored only when a new one was supplied; pictureName is the already-saved
// upload filename, empty to leave the current picture alone. Callers must
// have validated everything first.
func UpdateProfile(id uint, displayName, email, password, pictureName string) error {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return err
	}

	user.DisplayName = displayName
	user.Email = email
	if password != "" {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}
	if pictureName != "" {
		user.ProfilePicture = pictureName
	}

	return config.DB.Save(&user).Error
}

// DeleteProfilePicture removes the stored file and clears the reference.
func DeleteProfilePicture() error {
	var user models.User
	if err := config.DB.First(&user).Error; err != nil {
		return err
	}
	if user.ProfilePicture == "" {
		return ErrNoProfilePicture
	}

	path := filepath.Join(config.UploadDir, user.ProfilePicture)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Str("path", path).Msg("failed to remove profile picture file")
		return err
	}

	user.ProfilePicture = ""
	return config.DB.Save(&user).Error
}
