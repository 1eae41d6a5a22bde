package handlers

import (
	"net/http"
	"time"

	"farecast/services"

	"github.com/gin-gonic/gin"
)

func ModelInfoHandler(c *gin.Context) {
	svc := services.GetModelService()
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Model not loaded",
		})
		return
	}

	info, err := svc.Info()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Model not loaded",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"model_type":         info.ModelType,
		"n_estimators":       info.NumTrees,
		"max_depth":          info.MaxDepth,
		"feature_importance": info.FeatureImportance,
	})
}

func RetrainHandler(c *gin.Context) {
	svc := services.GetModelService()
	if svc == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "model service not initialized",
		})
		return
	}

	start := time.Now()
	if err := svc.Retrain(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	trainingDuration.Observe(time.Since(start).Seconds())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Model retrained successfully",
	})
}
