package handlers

import (
	"net/http"

	"festquote/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last session store check.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "message": "Hi, I'm festquote"})
}
