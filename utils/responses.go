package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the uniform error envelope. Every handler failure
// goes through here so clients always see {"message": ...}.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// RespondWithErrorDetail additionally carries the underlying error text, used
// only where surfacing it is safe (validation binding errors and upstream
// proxy bodies).
func RespondWithErrorDetail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, gin.H{"message": message, "error": detail})
}
