package handlers

import (
	"log"
	"net/http"

	"farecast/database"
	"farecast/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func PredictHandler(c *gin.Context) {
	var req services.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No data provided",
		})
		return
	}

	result, err := services.PredictPrice(req)
	if err != nil {
		predictionErrors.WithLabelValues("single").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	predictionsTotal.WithLabelValues("single").Inc()

	resp := gin.H{
		"success":        true,
		"predictedPrice": result.PredictedPrice,
		"currency":       result.Currency,
		"features":       result.Features,
		"confidence":     result.Confidence,
	}

	// History is best-effort: a write failure never fails the prediction.
	if database.Enabled() {
		norm := req
		norm.Normalize()
		record := &database.PredictionRecord{
			ID:             uuid.New().String(),
			FromAirport:    norm.FromAirport,
			ToAirport:      norm.ToAirport,
			DepartureDate:  norm.DepartureDate,
			PredictedPrice: result.PredictedPrice,
		}
		if err := database.SavePrediction(record); err != nil {
			log.Printf("⚠️  Failed to save prediction history: %v", err)
		} else {
			resp["predictionId"] = record.ID
		}
	}

	c.JSON(http.StatusOK, resp)
}

type batchRequest struct {
	Flights []services.PredictRequest `json:"flights"`
}

func BatchPredictHandler(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Flights == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No flights data provided",
		})
		return
	}

	predictions, err := services.PredictBatch(req.Flights)
	if err != nil {
		predictionErrors.WithLabelValues("batch").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	predictionsTotal.WithLabelValues("batch").Add(float64(len(predictions)))

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"predictions": predictions,
	})
}
