package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"foodlens/internal/api"
	"foodlens/internal/food"
	"foodlens/internal/platform/classifier"
	"foodlens/internal/platform/spoonacular"
)

// Config represents the application configuration.
type Config struct {
	SpoonacularAPIKey  string `json:"spoonacular_api_key"`
	SpoonacularBaseURL string `json:"spoonacular_base_url"`
	PythonPath         string `json:"python_path"`
	ClassifierScript   string `json:"classifier_script"`
}

func main() {
	// Read configuration from config.json, with the API key overridable from
	// the environment (.env supported).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	configData, err := os.ReadFile("config.json")
	if err != nil {
		panic(fmt.Errorf("failed to read config.json: %w", err))
	}

	var config Config
	if err := json.Unmarshal(configData, &config); err != nil {
		panic(fmt.Errorf("failed to unmarshal config.json: %w", err))
	}

	if key := os.Getenv("SPOONACULAR_API_KEY"); key != "" {
		config.SpoonacularAPIKey = key
	}

	spoonacularClient := spoonacular.NewClient(config.SpoonacularAPIKey, config.SpoonacularBaseURL)
	resolver := food.NewResolver(spoonacularClient)
	classifierClient := classifier.NewClient(config.PythonPath, config.ClassifierScript)

	handler := api.NewHandler(classifierClient, resolver)

	r := gin.Default()

	// Configure CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.POST("/identify", handler.Identify)
	r.GET("/foods/:name", handler.GetFood)
	r.Static("/images", "./images")
	r.Run(":8080") // listen and serve on 0.0.0.0:8080
}
