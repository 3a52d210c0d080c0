package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"foodlens/internal/api"
	"foodlens/internal/food"
)

// mockClassifier is a mock of the image classifier subprocess client.
type mockClassifier struct {
	output            string
	returnError       error
	receivedImagePath string
}

// Predict mocks the Predict method.
func (m *mockClassifier) Predict(ctx context.Context, imagePath string) (string, error) {
	m.receivedImagePath = imagePath
	if m.returnError != nil {
		return "", m.returnError
	}
	return m.output, nil
}

// mockResolver is a mock of the food resolver backed by the static fallback
// table, so responses are deterministic without any network access.
type mockResolver struct {
	receivedName string
}

// Resolve mocks the Resolve method.
func (m *mockResolver) Resolve(ctx context.Context, foodName string) food.Info {
	m.receivedName = foodName
	return food.Lookup(foodName)
}

// identifyResponse mirrors the JSON body returned by the identify endpoint.
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
}

// newUploadRequest builds a multipart request carrying imageData as the "file"
// form field.
func newUploadRequest(t *testing.T, filename string, imageData []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)

	_, err = io.Copy(part, bytes.NewReader(imageData))
	assert.NoError(t, err)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/identify", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestIdentify(t *testing.T) {
	// Set up Gin in test mode
	gin.SetMode(gin.TestMode)

	r := gin.Default()

	mockClassifier := &mockClassifier{
		output: "Top prediction: pizza (88.50%)\nAll predictions:\n1. pizza: 88.50%\n2. sushi: 6.30%\n3. steak: 2.10%",
	}
	mockResolver := &mockResolver{}

	handler := api.NewHandler(mockClassifier, mockResolver)
	r.POST("/identify", handler.Identify)

	req := newUploadRequest(t, "dinner.png", []byte("not a real png, classifier is mocked"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp identifyResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)

	// The classifier ran against the temp file and the parsed name reached
	// the resolver.
	assert.NotEmpty(t, mockClassifier.receivedImagePath)
	assert.Equal(t, "pizza", mockResolver.receivedName)

	assert.Equal(t, "Pizza", resp.Food)
	assert.Equal(t, "88.5%", resp.Confidence)
	assert.Equal(t, []string{"pizza (88.5%)", "sushi (6.3%)", "steak (2.1%)"}, resp.AllPredictions)
	assert.Equal(t, 266, resp.Calories)
	assert.True(t, resp.Vegetarian)
	assert.Equal(t, []string{"Vegetarian"}, resp.DietaryTags)
	assert.Equal(t, []string{"Gluten", "Dairy"}, resp.Allergens)
	assert.NotEmpty(t, resp.Ingredients)
	assert.NotEmpty(t, resp.Description)
}

func TestIdentify_UnrecognizedOutput(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.Default()

	mockClassifier := &mockClassifier{output: "model warmup noise, nothing parseable"}
	mockResolver := &mockResolver{}

	handler := api.NewHandler(mockClassifier, mockResolver)
	r.POST("/identify", handler.Identify)

	req := newUploadRequest(t, "dinner.jpg", []byte("image bytes"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp identifyResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)

	assert.Equal(t, "Unknown", mockResolver.receivedName)
	assert.Equal(t, "Unknown", resp.Food)
	assert.Equal(t, "0.0%", resp.Confidence)
	assert.Empty(t, resp.AllPredictions)
	assert.NotEmpty(t, resp.Ingredients)
	assert.NotEmpty(t, resp.Description)
}

func TestIdentify_MissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.Default()
	handler := api.NewHandler(&mockClassifier{}, &mockResolver{})
	r.POST("/identify", handler.Identify)

	req := httptest.NewRequest(http.MethodPost, "/identify", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestIdentify_InvalidExtension(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.Default()
	handler := api.NewHandler(&mockClassifier{}, &mockResolver{})
	r.POST("/identify", handler.Identify)

	req := newUploadRequest(t, "notes.txt", []byte("plain text"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid file type. Only JPEG, JPG, and PNG images are allowed.", rr.Body.String())
}

func TestIdentify_EmptyUpload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.Default()
	handler := api.NewHandler(&mockClassifier{}, &mockResolver{})
	r.POST("/identify", handler.Identify)

	req := newUploadRequest(t, "empty.png", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "No image uploaded", rr.Body.String())
}

func TestIdentify_ClassifierError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.Default()

	mockClassifier := &mockClassifier{returnError: assert.AnError}
	handler := api.NewHandler(mockClassifier, &mockResolver{})
	r.POST("/identify", handler.Identify)

	req := newUploadRequest(t, "dinner.png", []byte("image bytes"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetFood(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.Default()

	mockResolver := &mockResolver{}
	handler := api.NewHandler(&mockClassifier{}, mockResolver)
	r.GET("/foods/:name", handler.GetFood)

	req := httptest.NewRequest(http.MethodGet, "/foods/steak", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "steak", mockResolver.receivedName)

	var resp map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)

	assert.Equal(t, "Steak", resp["name"])
	assert.Equal(t, float64(679), resp["calories"])
	assert.Equal(t, true, resp["gluten_free"])
}
