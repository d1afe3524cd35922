package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	MaxDisplayNameLen = 30
	MaxPictureBytes   = 300 * 1024
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

var allowedPictureExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func ValidateDisplayName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("display name is required")
	}
	if len(name) > MaxDisplayNameLen {
		return fmt.Errorf("display name must be %d characters or fewer", MaxDisplayNameLen)
	}
	return nil
}

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("email must look like name@example.com")
	}
	return nil
}

// ValidatePassword enforces the minimum strength rules. An empty password
// is handled by the caller (it means "keep the current one").
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return errors.New("password must contain a lowercase letter, an uppercase letter, and a digit")
	}
	return nil
}

func ValidateProfilePicture(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedPictureExts[ext] {
		return errors.New("profile picture must be a jpg, jpeg, png, gif, or webp file")
	}
	if size > MaxPictureBytes {
		return fmt.Errorf("profile picture must be %dKB or smaller", MaxPictureBytes/1024)
	}
	return nil
}

// PictureExt returns the lowercased extension for an already-validated
// upload filename.
func PictureExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
