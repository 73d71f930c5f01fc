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

type CreateServiceGroupInput struct {
	Slug         string                `json:"slug" binding:"required"`
	Name         models.LocalizedText  `json:"name" binding:"required"`
	Description  *models.LocalizedText `json:"description"`
	DisplayOrder int                   `json:"displayOrder"`
}

type UpdateServiceGroupInput struct {
	Slug         *string               `json:"slug"`
	Name         *models.LocalizedText `json:"name"`
	Description  *models.LocalizedText `json:"description"`
	DisplayOrder *int                  `json:"displayOrder"`
	IsActive     *bool                 `json:"isActive"`
}

// GetPublicServiceGroups lists active groups ordered for display, or one by
// ?slug=. With ?embed=services each group carries its active services.
func GetPublicServiceGroups(c *gin.Context) {
	embed := c.Query("embed") == "services"

	if slug := c.Query("slug"); slug != "" {
		var group models.ServiceGroup
		err := config.DB.Where("slug = ? AND is_active = ?", slug, true).First(&group).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Service group not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service group")
			}
			return
		}
		resp := group.ToResponse()
		if embed {
			if !attachServices(c, &resp) {
				return
			}
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	var groups []models.ServiceGroup
	err := config.DB.Where("is_active = ?", true).
		Order("display_order, id").Find(&groups).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service groups")
		return
	}

	out := make([]models.ServiceGroupResponse, 0, len(groups))
	for i := range groups {
		resp := groups[i].ToResponse()
		if embed {
			if !attachServices(c, &resp) {
				return
			}
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}

func attachServices(c *gin.Context, resp *models.ServiceGroupResponse) bool {
	var services []models.Service
	err := config.DB.Where("category = ? AND is_active = ?", resp.Slug, true).
		Order("id").Find(&services).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return false
	}
	resp.Services = serviceResponses(services)
	return true
}

func GetServiceGroups(c *gin.Context) {
	var groups []models.ServiceGroup
	if err := config.DB.Order("display_order, id").Find(&groups).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service groups")
		return
	}
	out := make([]models.ServiceGroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, groups[i].ToResponse())
	}
	c.JSON(http.StatusOK, out)
}

func GetServiceGroup(c *gin.Context) {
	var group models.ServiceGroup
	if err := config.DB.First(&group, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service group not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, group.ToResponse())
}

func CreateServiceGroup(c *gin.Context) {
	var input CreateServiceGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithErrorDetail(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if !utils.ValidateSlug(input.Slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Slug must be lowercase and URL-safe")
		return
	}

	group := models.ServiceGroup{
		Slug:         input.Slug,
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
	}
	group.SetName(input.Name)
	if input.Description != nil {
		group.SetDescription(*input.Description)
	}

	if err := config.DB.Create(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "A service group with this slug already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service group")
		}
		return
	}
	c.JSON(http.StatusCreated, group.ToResponse())
}

func UpdateServiceGroup(c *gin.Context) {
	var group models.ServiceGroup
	if err := config.DB.First(&group, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service group not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateServiceGroupInput
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
		group.Slug = *input.Slug
		updated = true
	}
	if input.Name != nil {
		group.SetName(*input.Name)
		updated = true
	}
	if input.Description != nil {
		group.SetDescription(*input.Description)
		updated = true
	}
	if input.DisplayOrder != nil {
		group.DisplayOrder = *input.DisplayOrder
		updated = true
	}
	if input.IsActive != nil {
		group.IsActive = *input.IsActive
		updated = true
	}

	if !updated {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := config.DB.Save(&group).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service group")
		return
	}
	c.JSON(http.StatusOK, group.ToResponse())
}

// DeleteServiceGroup refuses to remove a group that still has services. The
// count and the delete run in one transaction so a service created in between
// cannot be orphaned.
func DeleteServiceGroup(c *gin.Context) {
	id := c.Param("id")

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var group models.ServiceGroup
		if err := tx.First(&group, "id = ?", id).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Service{}).Where("category = ?", group.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errGroupHasServices
		}

		return tx.Delete(&group).Error
	})

	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Service group not found")
	case errors.Is(err, errGroupHasServices):
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot delete a service group that still has services; remove its services first")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service group")
	}
}

var errGroupHasServices = errors.New("service group has services")
