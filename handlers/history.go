package handlers

import (
	"net/http"
	"strconv"

	"farecast/database"
	"farecast/services"

	"github.com/gin-gonic/gin"
)

func RecentPredictionsHandler(c *gin.Context) {
	if !database.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Prediction history is disabled (no database configured)",
		})
		return
	}

	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 100 {
		limit = 100
	}

	records, err := database.RecentPredictions(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"predictions": records,
	})
}

func ReportHandler(c *gin.Context) {
	if !database.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Prediction history is disabled (no database configured)",
		})
		return
	}

	id := c.Param("id")
	record, err := database.GetPrediction(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Prediction not found",
		})
		return
	}

	pdfBytes, err := services.GenerateReportBytes(services.ReportData{
		ID:             record.ID,
		FromAirport:    record.FromAirport,
		ToAirport:      record.ToAirport,
		DepartureDate:  record.DepartureDate,
		PredictedPrice: record.PredictedPrice,
		CreatedAt:      record.CreatedAt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=farecast-estimate.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
