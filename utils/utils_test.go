package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"festquote/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func init() {
	gin.SetMode(gin.TestMode)
	Logger = zap.NewNop()
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Message)
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	JSONError(c, http.StatusNotFound, "Session not found", "expired")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Session not found","details":"expired"}`, w.Body.String())
}

func TestLogLevel(t *testing.T) {
	config.AppConfig.Env = "development"
	assert.Equal(t, zapcore.WarnLevel, logLevel("warn"))
	assert.Equal(t, zapcore.DebugLevel, logLevel(""))
	assert.Equal(t, zapcore.DebugLevel, logLevel("nonsense"))

	config.AppConfig.Env = "production"
	t.Cleanup(func() { config.AppConfig.Env = "" })
	assert.Equal(t, zapcore.InfoLevel, logLevel(""))
}

func TestCloudinaryDisabledWithoutCloudName(t *testing.T) {
	config.AppConfig.CloudinaryCloudName = ""
	images, err := Cloudinary()
	require.NoError(t, err)
	assert.Nil(t, images)
}

func TestCloudinaryRequiresCredentials(t *testing.T) {
	config.AppConfig.CloudinaryCloudName = "demo"
	t.Cleanup(func() { config.AppConfig.CloudinaryCloudName = "" })
	_, err := Cloudinary()
	assert.Error(t, err)
}

func TestCheckHealthWithoutClient(t *testing.T) {
	status := CheckHealth(context.Background(), nil)
	assert.False(t, status.Redis)
	assert.Equal(t, status, GetHealthStatus())
}
