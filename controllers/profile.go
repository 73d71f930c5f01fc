package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bellasalon-backend/config"
	"bellasalon-backend/models"
	"bellasalon-backend/utils"
)

type UpdateProfileInput struct {
	Username *string `json:"username"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

func GetProfile(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, user)
}

func UpdateProfile(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithErrorDetail(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if input.Username == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	user.Username = *input.Username
	if err := config.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "Username already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangePassword requires the current password before accepting a new one.
func ChangePassword(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithErrorDetail(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to change password")
		return
	}
	if err := config.DB.Model(&models.User{}).Where("id = ?", user.ID).
		Update("password", hashed).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to change password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// UploadAvatar stores a profile image under the local uploads directory and
// records its URL on the user.
func UploadAvatar(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "An image file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unsupported image type")
		return
	}

	name := uuid.NewString() + ext
	dest := filepath.Join(config.Cfg.UploadDir, name)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	user.AvatarURL = "/uploads/" + name
	if err := config.DB.Model(&models.User{}).Where("id = ?", user.ID).
		Update("avatar_url", user.AvatarURL).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatarUrl": user.AvatarURL})
}
