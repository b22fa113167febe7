// @title           SleepCheck API
// @version         1.0.0
// @description     API that predicts sleep disorders based on health and lifestyle
// @BasePath        /
package main

import (
	"log"
	"os"

	_ "github.com/thiagosnuness/sleep-backend/docs"
	"github.com/thiagosnuness/sleep-backend/internal/handler"
	"github.com/thiagosnuness/sleep-backend/internal/middleware"
	"github.com/thiagosnuness/sleep-backend/internal/ml"
	"github.com/thiagosnuness/sleep-backend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	dbPath := envOrDefault("DB_PATH", "./sleepcheck.sqlite3")
	modelPath := envOrDefault("MODEL_PATH", "machine_learning/sleep_model.json")
	scalerPath := envOrDefault("SCALER_PATH", "machine_learning/sleep_scaler.json")
	port := envOrDefault("PORT", "8080")

	if err := storage.InitDB(dbPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Printf("Database initialized at %s", dbPath)

	// Missing or malformed artifacts are fatal; the service must not
	// start without a working predictor.
	predictor, err := ml.Load(modelPath, scalerPath)
	if err != nil {
		log.Fatalf("Failed to load model artifacts: %v", err)
	}
	handler.SetPredictor(predictor)
	log.Println("Model and scaler loaded")

	router := gin.Default()
	router.HandleMethodNotAllowed = true
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	router.Use(cors.New(config))
	router.Use(middleware.RequestID())

	router.POST("/predict", handler.Predict)
	router.GET("/records", handler.ListRecords)
	router.DELETE("/prediction", handler.DeletePrediction)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handler.RegisterErrorHandlers(router)

	log.Fatal(router.Run(":" + port))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
