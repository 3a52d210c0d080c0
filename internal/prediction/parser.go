// Package prediction parses the textual report produced by the image
// classifier script into a typed, ranked prediction result.
package prediction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	topPredictionPattern    = regexp.MustCompile(`Top prediction: (.+?) \((\d+\.\d+)%\)`)
	rankedPredictionPattern = regexp.MustCompile(`\d+\. (.+?): (\d+\.\d+)%`)
)

// Result holds the parsed classifier output.
type Result struct {
	FoodName       string   `json:"food_name"`
	Confidence     float64  `json:"confidence"`
	AllPredictions []string `json:"all_predictions"`
}

// Parse extracts the top prediction and the ranked prediction list from the
// classifier's raw output. It never fails: unrecognized input yields
// FoodName "Unknown" with zero confidence and an empty ranked list. Lines
// that match neither pattern are ignored.
func Parse(output string) Result {
	result := Result{
		FoodName:       "Unknown",
		Confidence:     0.0,
		AllPredictions: []string{},
	}

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if m := topPredictionPattern.FindStringSubmatch(line); m != nil {
			confidence, _ := strconv.ParseFloat(m[2], 64)
			result.FoodName = strings.ReplaceAll(m[1], "_", " ")
			result.Confidence = confidence
		}

		if m := rankedPredictionPattern.FindStringSubmatch(line); m != nil {
			confidence, _ := strconv.ParseFloat(m[2], 64)
			name := strings.ReplaceAll(m[1], "_", " ")
			result.AllPredictions = append(result.AllPredictions, fmt.Sprintf("%s (%.1f%%)", name, confidence))
		}
	}

	return result
}
