package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bellasalon-backend/config"
	"bellasalon-backend/models"
	"bellasalon-backend/utils"
)

type CreateMembershipInput struct {
	MembershipNumber string    `json:"membershipNumber" binding:"required"`
	Name             string    `json:"name" binding:"required"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Type             string    `json:"type" binding:"required,oneof=gold silver"`
	ExpiresAt        time.Time `json:"expiresAt" binding:"required"`
}

func GetMemberships(c *gin.Context) {
	var memberships []models.Membership
	if err := config.DB.Order("id").Find(&memberships).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve memberships")
		return
	}
	c.JSON(http.StatusOK, memberships)
}

func CreateMembership(c *gin.Context) {
	var input CreateMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithErrorDetail(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	membership := models.Membership{
		MembershipNumber: input.MembershipNumber,
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Type:             input.Type,
		ExpiresAt:        input.ExpiresAt,
	}
	if err := config.DB.Create(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "Membership number already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create membership")
		}
		return
	}
	c.JSON(http.StatusCreated, membership)
}

func DeleteMembership(c *gin.Context) {
	result := config.DB.Delete(&models.Membership{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete membership")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Membership not found")
		return
	}
	c.Status(http.StatusNoContent)
}
