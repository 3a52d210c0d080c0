// Package classifier runs the external image classifier script and captures
// its textual prediction report.
package classifier

import (
	"context"
	"fmt"
	"os/exec"
)

// Client invokes the Python classifier as a subprocess.
type Client struct {
	pythonPath string
	scriptPath string
}

// NewClient creates a new classifier client. Empty arguments fall back to
// "python" and "predict.py" in the working directory.
func NewClient(pythonPath, scriptPath string) *Client {
	if pythonPath == "" {
		pythonPath = "python"
	}
	if scriptPath == "" {
		scriptPath = "predict.py"
	}
	return &Client{pythonPath: pythonPath, scriptPath: scriptPath}
}

// Predict runs the classifier against the image at imagePath and returns its
// combined stdout/stderr output. A non-zero exit status is an error carrying
// the captured output for diagnosis.
func (c *Client) Predict(ctx context.Context, imagePath string) (string, error) {
	cmd := exec.CommandContext(ctx, c.pythonPath, c.scriptPath, imagePath)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("classifier script failed: %w: %s", err, output)
	}

	return string(output), nil
}
