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

type CreateServiceInput struct {
	Slug             string                `json:"slug" binding:"required"`
	Category         string                `json:"category" binding:"required"`
	Name             models.LocalizedText  `json:"name" binding:"required"`
	ShortDescription *models.LocalizedText `json:"shortDescription"`
	LongDescription  *models.LocalizedText `json:"longDescription"`
	Duration         int                   `json:"duration" binding:"required,min=1"`
	Price            int                   `json:"price" binding:"min=0"`
	ImageURL         string                `json:"imageUrl"`
	ImageLarge       string                `json:"imageLarge"`
}

type UpdateServiceInput struct {
	Slug             *string               `json:"slug"`
	Category         *string               `json:"category"`
	Name             *models.LocalizedText `json:"name"`
	ShortDescription *models.LocalizedText `json:"shortDescription"`
	LongDescription  *models.LocalizedText `json:"longDescription"`
	Duration         *int                  `json:"duration"`
	Price            *int                  `json:"price"`
	ImageURL         *string               `json:"imageUrl"`
	ImageLarge       *string               `json:"imageLarge"`
	IsActive         *bool                 `json:"isActive"`
}

// GetPublicServices lists active services, or one active service by ?slug=.
func GetPublicServices(c *gin.Context) {
	if slug := c.Query("slug"); slug != "" {
		var service models.Service
		err := config.DB.Where("slug = ? AND is_active = ?", slug, true).First(&service).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Service not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service")
			}
			return
		}
		c.JSON(http.StatusOK, service.ToResponse())
		return
	}

	var services []models.Service
	if err := config.DB.Where("is_active = ?", true).Order("id").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, serviceResponses(services))
}

func serviceResponses(services []models.Service) []models.ServiceResponse {
	out := make([]models.ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, services[i].ToResponse())
	}
	return out
}

// GetServices lists every service, active or not, for the dashboard.
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order("id").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, serviceResponses(services))
}

func GetService(c *gin.Context) {
	var service models.Service
	if err := config.DB.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, service.ToResponse())
}

func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithErrorDetail(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	if !utils.ValidateSlug(input.Slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Slug must be lowercase and URL-safe")
		return
	}

	var group models.ServiceGroup
	if err := config.DB.Where("slug = ?", input.Category).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown category")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	service := models.Service{
		Slug:       input.Slug,
		Category:   group.Slug,
		GroupID:    group.ID,
		Duration:   input.Duration,
		Price:      input.Price,
		ImageURL:   input.ImageURL,
		ImageLarge: input.ImageLarge,
		IsActive:   true,
	}
	service.SetName(input.Name)
	if input.ShortDescription != nil {
		service.SetShortDescription(*input.ShortDescription)
	}
	if input.LongDescription != nil {
		service.SetLongDescription(*input.LongDescription)
	}

	if err := config.DB.Create(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "A service with this slug already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		}
		return
	}
	c.JSON(http.StatusCreated, service.ToResponse())
}

func UpdateService(c *gin.Context) {
	var service models.Service
	if err := config.DB.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithErrorDetail(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	updated := false
	if input.Slug != nil {
		if !utils.ValidateSlug(*input.Slug) {
			utils.RespondWithError(c, http.StatusBadRequest, "Slug must be lowercase and URL-safe")
			return
		}
		service.Slug = *input.Slug
		updated = true
	}
	if input.Category != nil {
		var group models.ServiceGroup
		if err := config.DB.Where("slug = ?", *input.Category).First(&group).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown category")
			return
		}
		service.Category = group.Slug
		service.GroupID = group.ID
		updated = true
	}
	if input.Name != nil {
		service.SetName(*input.Name)
		updated = true
	}
	if input.ShortDescription != nil {
		service.SetShortDescription(*input.ShortDescription)
		updated = true
	}
	if input.LongDescription != nil {
		service.SetLongDescription(*input.LongDescription)
		updated = true
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
		updated = true
	}
	if input.Price != nil {
		service.Price = *input.Price
		updated = true
	}
	if input.ImageURL != nil {
		service.ImageURL = *input.ImageURL
		updated = true
	}
	if input.ImageLarge != nil {
		service.ImageLarge = *input.ImageLarge
		updated = true
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
		updated = true
	}

	if !updated {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, service.ToResponse())
}

func DeleteService(c *gin.Context) {
	result := config.DB.Delete(&models.Service{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.Status(http.StatusNoContent)
}
