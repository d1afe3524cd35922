package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"habittracker/config"
	"habittracker/services"
	"habittracker/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func ShowProfile(c *gin.Context) {
	user, err := services.GetOrCreateDefaultUser()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{"User": user})
}

// UpdateProfile handles the profile form. Every field is validated before
// anything is written, and all failures are reported together.
func UpdateProfile(c *gin.Context) {
	user, err := services.GetOrCreateDefaultUser()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	displayName := c.PostForm("display_name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	picture, pictureErr := c.FormFile("profile_picture")
	if pictureErr != nil {
		picture = nil
	}

	var errs []string
	if err := utils.ValidateDisplayName(displayName); err != nil {
		errs = append(errs, err.Error())
	}
	if err := utils.ValidateEmail(email); err != nil {
		errs = append(errs, err.Error())
	}
	if password != "" {
		if err := utils.ValidatePassword(password); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if picture != nil {
		if err := utils.ValidateProfilePicture(picture.Filename, picture.Size); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		c.HTML(http.StatusOK, "profile.html", gin.H{
			"User":   user,
			"Errors": errs,
			"Form":   gin.H{"DisplayName": displayName, "Email": email},
		})
		return
	}

	pictureName := ""
	if picture != nil {
		pictureName = fmt.Sprintf("user_%d%s", user.ID, utils.PictureExt(picture.Filename))
		dest := filepath.Join(config.UploadDir, pictureName)
		if err := c.SaveUploadedFile(picture, dest); err != nil {
			log.Error().Err(err).Str("path", dest).Msg("failed to save profile picture")
			c.HTML(http.StatusInternalServerError, "profile.html", gin.H{
				"User":   user,
				"Errors": []string{"could not save the profile picture, try again"},
			})
			return
		}
	}

	if err := services.UpdateProfile(user.ID, displayName, email, password, pictureName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated, err := services.GetOrCreateDefaultUser()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{"User": updated, "Saved": true})
}

func DeleteProfilePicture(c *gin.Context) {
	err := services.DeleteProfilePicture()
	if err != nil {
		if errors.Is(err, services.ErrNoProfilePicture) || errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no profile picture set"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
