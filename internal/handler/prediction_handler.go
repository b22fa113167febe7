/**
* Name:			prediction_handler.go
* Description:	Gin HTTP handlers for the SleepCheck API
* Workflow:		submit prediction, list records, delete record
 */
package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/thiagosnuness/sleep-backend/internal/models"
	"github.com/thiagosnuness/sleep-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// SleepPredictor is the model gateway consumed by the handlers. It is
// loaded once at startup and shared read-only.
type SleepPredictor interface {
	Predict(age, heartRate, stressLevel, physicalActivityLevel int, sleepDuration float64) (int, error)
}

var predictor SleepPredictor

// SetPredictor installs the loaded model gateway. Must be called before
// the router starts serving.
func SetPredictor(p SleepPredictor) {
	predictor = p
}

// SleepInput is the /predict request body. Numeric fields are pointers so
// that a legitimate zero (age 0, stress level 0) survives the required
// check.
type SleepInput struct {
	Name                  string   `form:"name" json:"name" binding:"required,max=100" example:"Alice"`
	Age                   *int     `form:"age" json:"age" binding:"required,gte=0,lte=120" example:"28"`
	HeartRate             *int     `form:"heart_rate" json:"heart_rate" binding:"required,gte=30,lte=220" example:"85"`
	StressLevel           *int     `form:"stress_level" json:"stress_level" binding:"required,gte=0,lte=10" example:"9"`
	PhysicalActivityLevel *int     `form:"physical_activity_level" json:"physical_activity_level" binding:"required,gte=0,lte=100" example:"45"`
	SleepDuration         *float64 `form:"sleep_duration" json:"sleep_duration" binding:"required,gte=0,lte=24" example:"6.0"`
}

// DeletePredictionRequest identifies the record to remove.
type DeletePredictionRequest struct {
	ID *int `form:"id" json:"id" binding:"required,gt=0" example:"1"`
}

type PredictionResponse struct {
	Prediction int `json:"prediction" example:"1"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Prediction record removed successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"reason for the failure"`
}

// Predict godoc
// @Summary      Predict sleep disorder
// @Description  Receives age, heart rate, stress level, physical activity level and sleep duration, predicts the likelihood of a sleep disorder and stores the result. Returns 1 for 'Disorder' and 0 for 'No Disorder'.
// @Tags         SleepCheck
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        request formData handler.SleepInput true "Health and lifestyle measurements"
// @Success      200 {object} handler.PredictionResponse
// @Failure      400 {object} handler.ValidationError
// @Failure      422 {array}  handler.ValidationError
// @Failure      500 {object} handler.ErrorResponse
// @Router       /predict [post]
func Predict(c *gin.Context) {
	var input SleepInput

	if err := c.ShouldBind(&input); err != nil {
		translateBindingError(c, err)
		return
	}

	prediction, err := predictor.Predict(
		*input.Age,
		*input.HeartRate,
		*input.StressLevel,
		*input.PhysicalActivityLevel,
		*input.SleepDuration,
	)
	if err != nil {
		log.Printf("[ERROR] Predict: model prediction failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute prediction"})
		return
	}

	record := models.PredictionRecord{
		Name:                  input.Name,
		Age:                   *input.Age,
		HeartRate:             *input.HeartRate,
		StressLevel:           *input.StressLevel,
		PhysicalActivityLevel: *input.PhysicalActivityLevel,
		SleepDuration:         *input.SleepDuration,
		PredictionResult:      prediction,
		Timestamp:             time.Now().UTC(),
	}

	// The caller only sees a success once the record is durably stored.
	if err := storage.CreatePrediction(&record); err != nil {
		log.Printf("[ERROR] Predict: failed to store prediction record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store prediction record"})
		return
	}

	c.JSON(http.StatusOK, PredictionResponse{Prediction: prediction})
}

// ListRecords godoc
// @Summary      List prediction records
// @Description  Retrieves all prediction records stored in the database, oldest first.
// @Tags         SleepCheck
// @Produce      json
// @Success      200 {array}  models.PredictionRecord
// @Failure      500 {object} handler.ErrorResponse
// @Router       /records [get]
func ListRecords(c *gin.Context) {
	records, err := storage.ListPredictions()
	if err != nil {
		log.Printf("[ERROR] ListRecords: failed to fetch records: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}
	if records == nil {
		records = []models.PredictionRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// DeletePrediction godoc
// @Summary      Delete prediction record
// @Description  Removes a specific prediction record by ID.
// @Tags         SleepCheck
// @Produce      json
// @Param        id query int true "Unique ID of the prediction record to delete"
// @Success      200 {object} handler.MessageResponse
// @Failure      404 {object} handler.ValidationError
// @Failure      422 {array}  handler.ValidationError
// @Failure      500 {object} handler.ErrorResponse
// @Router       /prediction [delete]
func DeletePrediction(c *gin.Context) {
	var query DeletePredictionRequest

	if err := c.ShouldBindQuery(&query); err != nil {
		translateBindingError(c, err)
		return
	}

	if _, err := storage.GetPredictionByID(*query.ID); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ValidationError{
				Loc:  []string{"id"},
				Msg:  "Prediction record not found",
				Type: "not_found_error",
			})
			return
		}
		log.Printf("[ERROR] DeletePrediction: lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch record"})
		return
	}

	if err := storage.DeletePrediction(*query.ID); err != nil {
		log.Printf("[ERROR] DeletePrediction: delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Prediction record removed successfully"})
}
