package utils

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bellasalon-backend/config"
	"bellasalon-backend/models"
)

func setupAuthTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Cfg.JWTSecret = "test-secret"
	config.Cfg.JWTExpiryHours = 24

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	config.DB = db
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/secret", AuthMiddleware(), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return r
}

func request(r *gin.Engine, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)
	assert.True(t, CheckPasswordHash("hunter2hunter2", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestAuthMiddlewareNoCookie(t *testing.T) {
	setupAuthTest(t)
	w := request(protectedRouter(), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	setupAuthTest(t)
	w := request(protectedRouter(), &http.Cookie{Name: TokenCookieName, Value: "not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidAdmin(t *testing.T) {
	setupAuthTest(t)
	user := models.User{Username: "boss", Password: "irrelevant", IsAdmin: true}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := GenerateToken(user.ID)
	require.NoError(t, err)

	w := request(protectedRouter(), &http.Cookie{Name: TokenCookieName, Value: token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "boss")
}

func TestAuthMiddlewareNonAdminRejected(t *testing.T) {
	setupAuthTest(t)
	user := models.User{Username: "staff", Password: "irrelevant", IsAdmin: false}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := GenerateToken(user.ID)
	require.NoError(t, err)

	w := request(protectedRouter(), &http.Cookie{Name: TokenCookieName, Value: token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareDemotedAdminRejected(t *testing.T) {
	setupAuthTest(t)
	user := models.User{Username: "former", Password: "irrelevant", IsAdmin: true}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := GenerateToken(user.ID)
	require.NoError(t, err)

	// Revoking the flag takes effect on the very next request.
	require.NoError(t, config.DB.Model(&user).Update("is_admin", false).Error)

	w := request(protectedRouter(), &http.Cookie{Name: TokenCookieName, Value: token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	setupAuthTest(t)
	user := models.User{Username: "late", Password: "irrelevant", IsAdmin: true}
	require.NoError(t, config.DB.Create(&user).Error)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(user.ID), 10),
		"exp": time.Now().Add(-25 * time.Hour).Unix(),
		"iat": time.Now().Add(-49 * time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(config.Cfg.JWTSecret))
	require.NoError(t, err)

	w := request(protectedRouter(), &http.Cookie{Name: TokenCookieName, Value: tokenString})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	setupAuthTest(t)
	user := models.User{Username: "forged", Password: "irrelevant", IsAdmin: true}
	require.NoError(t, config.DB.Create(&user).Error)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(user.ID), 10),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := forged.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	w := request(protectedRouter(), &http.Cookie{Name: TokenCookieName, Value: tokenString})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidatePhone("+49 151 1234 5678"))
	assert.False(t, ValidatePhone("abc"))
	assert.True(t, ValidateEmail("a@b.co"))
	assert.False(t, ValidateEmail("nope"))
	assert.True(t, ValidateSlug("deep-clean"))
	assert.False(t, ValidateSlug("Deep Clean"))
	assert.True(t, ValidateDate("2024-06-01"))
	assert.False(t, ValidateDate("01.06.2024"))
	assert.True(t, ValidateTime("09:30"))
	assert.False(t, ValidateTime("9:30"))
	assert.False(t, ValidateTime("24:00"))
}
