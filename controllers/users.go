package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bellasalon-backend/config"
	"bellasalon-backend/models"
	"bellasalon-backend/utils"
)

type CreateUserInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	IsAdmin  bool   `json:"isAdmin"`
}

type UpdateUserInput struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"isAdmin"`
}

func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("id").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func GetUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithErrorDetail(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Username already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := models.User{
		Username: input.Username,
		Password: hashed,
		IsAdmin:  input.IsAdmin,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "Username already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}
	c.JSON(http.StatusCreated, user)
}

func UpdateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithErrorDetail(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	updated := false
	if input.Username != nil {
		user.Username = *input.Username
		updated = true
	}
	if input.Password != nil {
		if len(*input.Password) < 8 {
			utils.RespondWithError(c, http.StatusBadRequest, "Password must be at least 8 characters")
			return
		}
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
			return
		}
		user.Password = hashed
		updated = true
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
		updated = true
	}

	if !updated {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := config.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "Username already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a staff account. Admins cannot delete themselves, which
// keeps at least the acting account alive.
func DeleteUser(c *gin.Context) {
	current, _ := utils.CurrentUser(c)
	if id, err := strconv.ParseUint(c.Param("id"), 10, 64); err == nil && uint(id) == current.ID {
		utils.RespondWithError(c, http.StatusBadRequest, "You cannot delete your own account")
		return
	}

	result := config.DB.Delete(&models.User{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}
	c.Status(http.StatusNoContent)
}
