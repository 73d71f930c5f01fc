package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bellasalon-backend/config"
	"bellasalon-backend/models"
	"bellasalon-backend/utils"
)

type CreateContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// CreateContact stores a contact-form message. Write-only from the public
// side; the dashboard lists them.
func CreateContact(c *gin.Context) {
	var input CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Name, email and message are required")
		return
	}
	if !utils.ValidateEmail(input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email address")
		return
	}

	contact := models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}
	if err := config.DB.Create(&contact).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save message")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": contact.ID})
}

func GetContacts(c *gin.Context) {
	var contacts []models.Contact
	if err := config.DB.Order("created_at DESC").Find(&contacts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}
	c.JSON(http.StatusOK, contacts)
}
