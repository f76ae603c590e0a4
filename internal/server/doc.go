// Package server implements the MCP (Model Context Protocol) server for
// Canny edge detection.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_edge_detect: Binary edge map as base64 PNG
//   - image_edge_stages: Every intermediate stage as base64 PNG
//   - image_gradient_sample: Detector state at one pixel
//   - image_edge_segments: Connected edge segments with bounding boxes
//
// The detection tools share threshold_low, threshold_high, region, scale,
// gray_mode, smoothing, kernel_size and sigma arguments. Omitted thresholds
// fall back to the configured defaults.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (malformed params) or
//     -32601 (unknown method)
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    logger.Error("server failed", "error", err)
//	}
package server
