package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// detectorProperties returns the schema of the arguments shared by every
// edge detection tool, merged with extra.
func detectorProperties(extra map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"path": pathProperty(),
		"threshold_low": map[string]interface{}{
			"type":        "number",
			"description": "Low hysteresis threshold on gradient magnitude. Weak pixels at or above it are kept only when connected to a strong pixel (default 0.2)",
			"default":     0.2,
		},
		"threshold_high": map[string]interface{}{
			"type":        "number",
			"description": "High hysteresis threshold. Pixels at or above it are always edges. A hard black/white step has magnitude about 4 (default 0.3)",
			"default":     0.3,
		},
		"region": map[string]interface{}{
			"type":        "object",
			"description": "Optional region to analyze; (x1,y1) inclusive, (x2,y2) exclusive",
			"properties": map[string]interface{}{
				"x1": map[string]interface{}{"type": "integer"},
				"y1": map[string]interface{}{"type": "integer"},
				"x2": map[string]interface{}{"type": "integer"},
				"y2": map[string]interface{}{"type": "integer"},
			},
			"required": []string{"x1", "y1", "x2", "y2"},
		},
		"scale": map[string]interface{}{
			"type":        "number",
			"description": "Resize factor applied after the region crop (default 1.0)",
			"default":     1.0,
		},
		"gray_mode": map[string]interface{}{
			"type":        "string",
			"description": "Color to intensity conversion",
			"enum":        []string{"bt601", "lightness"},
			"default":     "bt601",
		},
		"smoothing": map[string]interface{}{
			"type":        "string",
			"description": "Gaussian smoothing implementation",
			"enum":        []string{"kernel", "bild"},
			"default":     "kernel",
		},
		"kernel_size": map[string]interface{}{
			"type":        "integer",
			"description": "Odd Gaussian kernel width for kernel smoothing (default 3)",
			"default":     3,
		},
		"sigma": map[string]interface{}{
			"type":        "number",
			"description": "Gaussian standard deviation (default 0.8)",
			"default":     0.8,
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. Sets this as the active image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Edge Detection
		{
			Name:        "image_edge_detect",
			Description: "Run Canny edge detection and return a binary edge map (edges white, background black) as base64 PNG, with pixel statistics.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": detectorProperties(nil),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_edge_stages",
			Description: "Run Canny edge detection and return every intermediate stage (smoothed, Sobel x/y, magnitude, direction, non-maximum suppression, edges) as base64 PNG. Useful for tuning thresholds.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": detectorProperties(nil),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_gradient_sample",
			Description: "Report gradient magnitude, direction, suppression octant and hysteresis class at one pixel of the analyzed image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": detectorProperties(map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate in the analyzed image (after region and scale)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate in the analyzed image (after region and scale)",
					},
				}),
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_edge_segments",
			Description: "Run Canny edge detection and group edge pixels into 8-connected segments with bounding boxes, sorted by size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": detectorProperties(map[string]interface{}{
					"min_pixels": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum pixel count for a segment to be reported (default 10)",
						"default":     10,
					},
				}),
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
