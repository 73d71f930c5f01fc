package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bellasalon-backend/config"
	"bellasalon-backend/models"
	"bellasalon-backend/utils"
)

type CreateBlockedSlotInput struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func GetBlockedSlots(c *gin.Context) {
	query := config.DB.Model(&models.BlockedTimeSlot{})
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	var slots []models.BlockedTimeSlot
	if err := query.Order("date, time").Find(&slots).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve blocked slots")
		return
	}
	c.JSON(http.StatusOK, slots)
}

func CreateBlockedSlot(c *gin.Context) {
	var input CreateBlockedSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Date and time are required")
		return
	}
	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	if !utils.ValidateTime(input.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time, expected HH:MM")
		return
	}

	slot := models.BlockedTimeSlot{Date: input.Date, Time: input.Time}
	if err := config.DB.Create(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "This slot is already blocked")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to block slot")
		}
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func DeleteBlockedSlot(c *gin.Context) {
	result := config.DB.Delete(&models.BlockedTimeSlot{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete blocked slot")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Blocked slot not found")
		return
	}
	c.Status(http.StatusNoContent)
}
