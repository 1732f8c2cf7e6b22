package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/hylite/internal/hylite"
	"github.com/dshills/hylite/internal/report"
	"github.com/dshills/hylite/internal/scanner"
	"github.com/dshills/hylite/internal/workset"
	"github.com/dshills/hylite/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams   = -32602 // Invalid method parameters
	ErrorCodeInternalError   = -32603 // Internal JSON-RPC error
	ErrorCodeSetFileNotFound = -32001 // Working-set file missing or unreadable
	ErrorCodeScanInProgress  = -32002 // Another scan is already running
	ErrorCodeNotScanned      = -32003 // No scan has run yet
	ErrorCodeScanAborted     = -32004 // Scan stopped on a read error or cancellation
)

const (
	maxReportedErrors = 5
	defaultListLimit  = 100
	maxListLimit      = 1000
)

// handleScanFiles handles the scan_files tool invocation
func (s *Server) handleScanFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	files, err := getStringSlice(args, "files")
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid files parameter", map[string]interface{}{
			"param":  "files",
			"reason": err.Error(),
		})
	}
	setFile := getStringDefault(args, "set_file", "")
	covert := getBoolDefault(args, "covert", false)

	if len(files) == 0 && setFile == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "files or set_file parameter is required", map[string]interface{}{
			"param":  "files",
			"reason": "missing or empty",
		})
	}

	if !s.scanLock.TryAcquire() {
		return nil, newMCPError(ErrorCodeScanInProgress, "a scan is already running", nil)
	}
	defer s.scanLock.Release()

	var ws workset.WorkingSet
	if len(files) > 0 {
		ws = workset.NewManual(s.logger, files...)
	} else {
		fs, err := workset.Load(setFile)
		if err != nil {
			var fe *types.FileError
			if errors.As(err, &fe) {
				return nil, newMCPError(ErrorCodeSetFileNotFound, "working-set file is not readable", map[string]interface{}{
					"param":  "set_file",
					"reason": err.Error(),
				})
			}
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid working-set file", map[string]interface{}{
				"param":  "set_file",
				"reason": err.Error(),
			})
		}
		ws = fs
	}
	ws.SetCovert(covert)

	paths, err := ws.Files()
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list working set", map[string]interface{}{
			"error": err.Error(),
		})
	}

	set := hylite.NewSet()
	stats, scanErr := scanner.New(set, s.logger).ScanFiles(ctx, paths)
	s.publish(set, stats, paths, scanErr)

	if scanErr != nil {
		return nil, newMCPError(ErrorCodeScanAborted, "scan aborted", map[string]interface{}{
			"error":        scanErr.Error(),
			"hylites_kept": stats.Hylites,
		})
	}

	response := statsResponse(stats)
	response["scanned"] = true
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListHylites handles the list_hylites tool invocation
func (s *Server) handleListHylites(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		args = map[string]interface{}{}
	}

	set := s.current()
	if set == nil {
		return nil, errNotScanned()
	}

	groups, err := getStringSlice(args, "groups")
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid groups parameter", map[string]interface{}{
			"param":  "groups",
			"reason": err.Error(),
		})
	}
	attributes, err := getStringSlice(args, "attributes")
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid attributes parameter", map[string]interface{}{
			"param":  "attributes",
			"reason": err.Error(),
		})
	}

	limit := getIntDefault(args, "limit", defaultListLimit)
	if limit < 1 || limit > maxListLimit {
		return nil, newMCPError(ErrorCodeInvalidParams, fmt.Sprintf("limit must be between 1 and %d", maxListLimit), map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	query := report.Query{
		Name:       getStringDefault(args, "name", ""),
		Groups:     groups,
		Attributes: attributes,
	}
	src, err := query.Apply(set)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid name parameter", map[string]interface{}{
			"param":  "name",
			"reason": err.Error(),
		})
	}

	entries := report.Entries(src)
	total := len(entries)
	if total > limit {
		entries = entries[:limit]
	}

	response := map[string]interface{}{
		"total":    total,
		"returned": len(entries),
		"hylites":  entries,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleAttributeDirectory handles the attribute_directory tool invocation
func (s *Server) handleAttributeDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	set := s.current()
	if set == nil {
		return nil, errNotScanned()
	}

	entries := report.DirEntries(set)
	response := map[string]interface{}{
		"count":      len(entries),
		"attributes": entries,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.set == nil {
		response := map[string]interface{}{
			"scanned":          false,
			"scan_in_progress": s.scanLock.Busy(),
			"message":          "No files scanned. Use scan_files tool to scan a working set.",
		}
		return mcp.NewToolResultText(formatJSON(response)), nil
	}

	response := map[string]interface{}{
		"scanned":          true,
		"scan_in_progress": s.scanLock.Busy(),
		"last_scan_at":     s.lastScan.Format(time.RFC3339),
		"working_set_size": len(s.files),
		"statistics":       statsResponse(s.stats),
	}
	if s.scanErr != nil {
		response["aborted"] = true
		response["error"] = s.scanErr.Error()
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// statsResponse formats scan statistics, including the first few skip messages
func statsResponse(stats *scanner.Statistics) map[string]interface{} {
	response := map[string]interface{}{
		"files_scanned": stats.FilesScanned,
		"files_skipped": stats.FilesSkipped,
		"annotations":   stats.Annotations,
		"hylites":       stats.Hylites,
		"duration_ms":   stats.Duration.Milliseconds(),
	}

	if errorCount := len(stats.ErrorMessages); errorCount > 0 {
		if errorCount > maxReportedErrors {
			response["errors"] = stats.ErrorMessages[:maxReportedErrors]
			response["error_count"] = errorCount
		} else {
			response["errors"] = stats.ErrorMessages
		}
	}
	return response
}

func errNotScanned() error {
	return newMCPError(ErrorCodeNotScanned, "no files scanned yet", map[string]interface{}{
		"hint": "call scan_files first",
	})
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// getStringSlice extracts an optional array of strings. JSON arrays arrive as
// []interface{}; a missing key yields nil.
func getStringSlice(args map[string]interface{}, key string) ([]string, error) {
	raw, present := args[key]
	if !present || raw == nil {
		return nil, nil
	}

	switch val := raw.(type) {
	case []string:
		return val, nil
	case []interface{}:
		out := make([]string, 0, len(val))
		for i, item := range val {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T, not a string", i, item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected an array of strings, got %T", raw)
	}
}
