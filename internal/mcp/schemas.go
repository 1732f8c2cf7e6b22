package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// scanFilesTool returns the tool definition for scan_files
func scanFilesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "scan_files",
		Description: "Scan files for hylite annotations and replace the current hylite set",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"files": map[string]interface{}{
					"type":        "array",
					"description": "Files to scan, in order. Unreadable files are skipped.",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"set_file": map[string]interface{}{
					"type":        "string",
					"description": "Working-set YAML file with include/exclude globs, used when files is empty",
				},
				"covert": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, also scan hidden files and editor backups matched by the working set",
					"default":     false,
				},
			},
		},
	}
}

// listHylitesTool returns the tool definition for list_hylites
func listHylitesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_hylites",
		Description: "List hylites from the last scan, optionally filtered by name, name group or attribute",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Exact hylite name (e.g. 'cache-evict'); wrap in slashes for a regular expression ('/^cache/')",
				},
				"groups": map[string]interface{}{
					"type":        "array",
					"description": "Name prefixes; a hylite is shown if its name starts with any of them",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"attributes": map[string]interface{}{
					"type":        "array",
					"description": "Attribute paths (e.g. 'todo', 'owner-team'); a hylite is shown if it carries any of them",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of hylites to return (1-1000)",
					"default":     100,
					"minimum":     1,
					"maximum":     1000,
				},
			},
		},
	}
}

// attributeDirectoryTool returns the tool definition for attribute_directory
func attributeDirectoryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "attribute_directory",
		Description: "List every attribute from the last scan with the number of hylites carrying it",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report whether a scan has run and the statistics of the last one",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
