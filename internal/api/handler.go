package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nfnt/resize"

	"foodlens/internal/food"
	"foodlens/internal/prediction"
)

// Classifier defines the interface for the external image classifier.
type Classifier interface {
	Predict(ctx context.Context, imagePath string) (string, error)
}

// FoodResolver defines the interface for enriching a food name with
// nutritional and dietary metadata.
type FoodResolver interface {
	Resolve(ctx context.Context, foodName string) food.Info
}

// Handler handles HTTP requests.
type Handler struct {
	Classifier Classifier
	Resolver   FoodResolver
}

// NewHandler creates a new Handler.
func NewHandler(classifier Classifier, resolver FoodResolver) *Handler {
	return &Handler{Classifier: classifier, Resolver: resolver}
}

// identifyResponse is the JSON body returned by Identify.
type identifyResponse struct {
	Food           string   `json:"food"`
	Confidence     string   `json:"confidence"`
	AllPredictions []string `json:"all_predictions"`
	Description    string   `json:"description"`
	Ingredients    []string `json:"ingredients"`
	DietaryTags    []string `json:"dietary_tags"`
	Allergens      []string `json:"allergens"`
	Calories       int      `json:"calories"`
	Vegan          bool     `json:"vegan"`
	Vegetarian     bool     `json:"vegetarian"`
	GlutenFree     bool     `json:"gluten_free"`
	DairyFree      bool     `json:"dairy_free"`
	ImagePath      string   `json:"image_path,omitempty"`
}

// Identify handles food image uploads: it runs the classifier over the
// uploaded image, parses the prediction report, and enriches the detected
// food name with nutritional information.
func (h *Handler) Identify(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		log.Printf("Error getting form file: %v", err)
		c.String(http.StatusBadRequest, fmt.Sprintf("get form err: %s", err.Error()))
		return
	}

	// Validate file extension
	allowedExtensions := map[string]bool{
		".jpeg": true,
		".jpg":  true,
		".png":  true,
	}
	extension := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[extension] {
		c.String(http.StatusBadRequest, "Invalid file type. Only JPEG, JPG, and PNG images are allowed.")
		return
	}

	// Read the image file into memory
	src, err := file.Open()
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("open file err: %s", err.Error()))
		return
	}
	defer src.Close()

	imageData, err := io.ReadAll(src)
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("read image err: %s", err.Error()))
		return
	}

	if len(imageData) == 0 {
		c.String(http.StatusBadRequest, "No image uploaded")
		return
	}

	// Write the image to a temp file for the classifier script
	tempFile, err := os.CreateTemp("", "food_*"+extension)
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("temp file err: %s", err.Error()))
		return
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(imageData); err != nil {
		tempFile.Close()
		c.String(http.StatusInternalServerError, fmt.Sprintf("temp file write err: %s", err.Error()))
		return
	}
	tempFile.Close()

	// Create a context with a 45-second timeout for external calls
	ctx, cancel := context.WithTimeout(c.Request.Context(), 45*time.Second)
	defer cancel()

	output, err := h.Classifier.Predict(ctx, tempFile.Name())
	if err != nil {
		log.Printf("Classifier failed: %v", err)
		c.String(http.StatusInternalServerError, fmt.Sprintf("classifier err: %s", err.Error()))
		return
	}

	result := prediction.Parse(output)
	log.Printf("Detected food: %s (%.1f%%)", result.FoodName, result.Confidence)

	info := h.Resolver.Resolve(ctx, result.FoodName)

	// Keep a resized copy of the upload for the result view. Failing to save
	// the copy never fails the identification itself.
	imagePath, err := saveImage(imageData, generateImageHash(imageData), extension)
	if err != nil {
		log.Printf("failed to save result image: %s", err.Error())
		imagePath = ""
	}

	c.JSON(http.StatusOK, identifyResponse{
		Food:           info.Name,
		Confidence:     fmt.Sprintf("%.1f%%", result.Confidence),
		AllPredictions: result.AllPredictions,
		Description:    info.Description,
		Ingredients:    info.Ingredients,
		DietaryTags:    info.DietaryTags(),
		Allergens:      info.Allergens,
		Calories:       info.Calories,
		Vegan:          info.Vegan,
		Vegetarian:     info.Vegetarian,
		GlutenFree:     info.GlutenFree,
		DairyFree:      info.DairyFree,
		ImagePath:      imagePath,
	})
}

// GetFood handles direct lookups for clients that already know the dish name.
func (h *Handler) GetFood(c *gin.Context) {
	name := c.Param("name")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	info := h.Resolver.Resolve(ctx, name)

	c.JSON(http.StatusOK, gin.H{
		"name":         info.Name,
		"description":  info.Description,
		"ingredients":  info.Ingredients,
		"dietary_tags": info.DietaryTags(),
		"allergens":    info.Allergens,
		"calories":     info.Calories,
		"vegan":        info.Vegan,
		"vegetarian":   info.Vegetarian,
		"gluten_free":  info.GlutenFree,
		"dairy_free":   info.DairyFree,
	})
}

// generateImageHash calculates the SHA256 hash of the image data.
func generateImageHash(imageData []byte) string {
	hash := sha256.Sum256(imageData)
	return hex.EncodeToString(hash[:])
}

func saveImage(imageData []byte, imageHash string, originalExtension string) (string, error) {
	img, _, err := image.Decode(strings.NewReader(string(imageData)))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	img = resize.Resize(800, 0, img, resize.Lanczos3)

	// Create the images directory if it doesn't exist
	if err := os.MkdirAll("images", 0755); err != nil {
		return "", fmt.Errorf("failed to create images directory: %w", err)
	}

	imagePath := filepath.Join("images", imageHash+originalExtension)
	out, err := os.Create(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer out.Close()

	switch originalExtension {
	case ".jpeg", ".jpg":
		err = jpeg.Encode(out, img, nil)
	case ".png":
		err = png.Encode(out, img)
	default:
		return "", fmt.Errorf("unsupported image format: %s", originalExtension)
	}

	if err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return imagePath, nil
}
