package utils

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"bellasalon-backend/config"
	"bellasalon-backend/models"
)

// TokenCookieName is the session cookie carrying the signed JWT.
const TokenCookieName = "token"

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken issues a signed session token for the user.
func GenerateToken(userID uint) (string, error) {
	expiryHours := config.Cfg.JWTExpiryHours
	if expiryHours <= 0 {
		expiryHours = 24
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"exp": time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})

	if config.Cfg.JWTSecret == "" {
		return "", errors.New("JWT_SECRET not set")
	}
	return token.SignedString([]byte(config.Cfg.JWTSecret))
}

// SetSessionCookie writes the HttpOnly SameSite=Strict session cookie.
func SetSessionCookie(c *gin.Context, token string) {
	maxAge := config.Cfg.JWTExpiryHours * 3600
	if maxAge <= 0 {
		maxAge = 24 * 3600
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookieName, token, maxAge, "/", "", config.Cfg.CookieSecure, true)
}

// ClearSessionCookie expires the session cookie. Idempotent.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookieName, "", -1, "/", "", config.Cfg.CookieSecure, true)
}

// parseUserID validates the token and returns the embedded user id.
func parseUserID(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.Cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, errors.New("invalid token claims")
	}
	return uint(id), nil
}

// AuthMiddleware gates the admin surface. It reads the session cookie,
// verifies the token, then re-queries the user so a revoked admin flag takes
// effect immediately. Every failure mode answers the same 401 so the client
// learns nothing about why.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		userID, err := parseUserID(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
