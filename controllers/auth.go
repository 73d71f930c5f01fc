package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bellasalon-backend/config"
	"bellasalon-backend/models"
	"bellasalon-backend/utils"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an admin and sets the session cookie. Unknown username,
// wrong password and non-admin account all answer the identical 401 so the
// response leaks nothing about which check failed.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !user.IsAdmin || !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.SetSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"isAdmin":  user.IsAdmin,
		},
	})
}

// Logout clears the session cookie. Idempotent; always succeeds.
func Logout(c *gin.Context) {
	utils.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated admin behind the session cookie.
func Me(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
