package handlers

import (
	"net/http"

	"farecast/database"
	"farecast/services"

	"github.com/gin-gonic/gin"
)

const serviceVersion = "1.0.0"

func HealthHandler(c *gin.Context) {
	loaded := false
	if svc := services.GetModelService(); svc != nil {
		loaded = svc.Loaded()
	}

	history := "disabled"
	if database.Enabled() {
		history = "ok"
		if err := database.DB.Ping(); err != nil {
			history = "error: " + err.Error()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"service":      "farecast",
		"version":      serviceVersion,
		"model_loaded": loaded,
		"history":      history,
	})
}
