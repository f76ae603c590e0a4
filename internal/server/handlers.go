package server

import (
	"encoding/json"
	"fmt"
	"image"
	"time"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
	"github.com/ironsheep/canny-edge-mcp/internal/detection"
	"github.com/ironsheep/canny-edge-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_edge_detect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.logger.Info("tool call", "tool", params.Name, "elapsed", time.Since(start))

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Edge Detection
	case "image_edge_detect":
		return s.handleImageEdgeDetect(args)
	case "image_edge_stages":
		return s.handleImageEdgeStages(args)
	case "image_gradient_sample":
		return s.handleImageGradientSample(args)
	case "image_edge_segments":
		return s.handleImageEdgeSegments(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Edge Detection Handlers ===

// detectorArgs are the arguments shared by every edge detection tool.
// Thresholds are pointers because 0 is a valid low threshold.
type detectorArgs struct {
	Path          string          `json:"path"`
	ThresholdLow  *float32        `json:"threshold_low"`
	ThresholdHigh *float32        `json:"threshold_high"`
	Region        *imaging.Region `json:"region"`
	Scale         float64         `json:"scale"`
	GrayMode      string          `json:"gray_mode"`
	Smoothing     string          `json:"smoothing"`
	KernelSize    int             `json:"kernel_size"`
	Sigma         float64         `json:"sigma"`
}

// edgeOptions applies server defaults to a and converts it to pipeline
// options.
func (s *Server) edgeOptions(a detectorArgs) (imaging.EdgeOptions, error) {
	opts := imaging.DefaultEdgeOptions()
	opts.Thresholds = s.cfg.Thresholds
	opts.Workers = s.cfg.Workers

	if a.ThresholdLow != nil {
		opts.Thresholds.Low = *a.ThresholdLow
	}
	if a.ThresholdHigh != nil {
		opts.Thresholds.High = *a.ThresholdHigh
	}

	var err error
	if opts.GrayMode, err = imaging.ParseGrayMode(a.GrayMode); err != nil {
		return opts, err
	}
	if opts.Smoothing, err = imaging.ParseSmoothMethod(a.Smoothing); err != nil {
		return opts, err
	}
	if a.KernelSize != 0 {
		opts.KernelSize = a.KernelSize
	}
	if a.Sigma != 0 {
		opts.Sigma = a.Sigma
	}
	if a.Scale != 0 {
		opts.Scale = a.Scale
	}
	opts.Region = a.Region
	return opts, nil
}

// prepare loads the image named by a and resolves its options.
func (s *Server) prepare(a detectorArgs) (image.Image, imaging.EdgeOptions, error) {
	opts, err := s.edgeOptions(a)
	if err != nil {
		return nil, opts, err
	}
	if err := opts.Thresholds.Validate(); err != nil {
		return nil, opts, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, opts, err
	}
	return img, opts, nil
}

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a detectorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, opts, err := s.prepare(a)
	if err != nil {
		return nil, err
	}
	return imaging.EdgeDetect(img, opts)
}

func (s *Server) handleImageEdgeStages(args json.RawMessage) (interface{}, error) {
	var a detectorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, opts, err := s.prepare(a)
	if err != nil {
		return nil, err
	}
	return imaging.EdgeStages(img, opts)
}

type imageGradientSampleArgs struct {
	detectorArgs
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleImageGradientSample(args json.RawMessage) (interface{}, error) {
	var a imageGradientSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, opts, err := s.prepare(a.detectorArgs)
	if err != nil {
		return nil, err
	}
	analysis, err := imaging.Analyze(img, opts)
	if err != nil {
		return nil, err
	}
	return imaging.SampleGradient(analysis, a.X, a.Y)
}

type imageEdgeSegmentsArgs struct {
	detectorArgs
	MinPixels *int `json:"min_pixels"`
}

// edgeSegmentsResult combines detector statistics with the segments of the
// resulting edge map.
type edgeSegmentsResult struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Stats  canny.Stats `json:"stats"`
	*detection.SegmentsResult
}

func (s *Server) handleImageEdgeSegments(args json.RawMessage) (interface{}, error) {
	var a imageEdgeSegmentsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	minPixels := 10
	if a.MinPixels != nil {
		minPixels = *a.MinPixels
	}
	img, opts, err := s.prepare(a.detectorArgs)
	if err != nil {
		return nil, err
	}
	analysis, err := imaging.Analyze(img, opts)
	if err != nil {
		return nil, err
	}
	segments, err := detection.Segments(analysis.Edges, minPixels)
	if err != nil {
		return nil, err
	}
	return &edgeSegmentsResult{
		Width:          analysis.Edges.Bounds().Dx(),
		Height:         analysis.Edges.Bounds().Dy(),
		Stats:          analysis.Stats,
		SegmentsResult: segments,
	}, nil
}
