package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bellasalon-backend/services"
	"bellasalon-backend/utils"
)

// Imgur is the upload proxy client, wired in main and replaced in tests.
var Imgur *services.ImgurClient

type UploadInput struct {
	Image string `json:"image" binding:"required"`
}

// UploadImage proxies a base64 image to Imgur and returns the hosted link.
// Upstream failures are mirrored; a rate limit keeps its Retry-After hint.
func UploadImage(c *gin.Context) {
	var input UploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "An image payload is required")
		return
	}

	if Imgur == nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Image hosting is not configured")
		return
	}

	link, err := Imgur.Upload(c.Request.Context(), input.Image)
	if err != nil {
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			if upstream.RetryAfter != "" {
				c.Header("Retry-After", upstream.RetryAfter)
			}
			utils.RespondWithErrorDetail(c, upstream.Status, "Image host rejected the upload", string(upstream.Body))
			return
		}
		utils.RespondWithError(c, http.StatusBadGateway, "Image upload failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"link": link},
	})
}
