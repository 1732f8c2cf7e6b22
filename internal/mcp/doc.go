// Package mcp implements the Model Context Protocol (MCP) server for hylite.
//
// The MCP server exposes four tools to AI coding assistants:
//   - scan_files: Scan a working set and replace the current hylite set
//   - list_hylites: List hylites, optionally filtered by name, group or attribute
//   - attribute_directory: List the attribute tree with reference counts
//   - get_status: Check whether a scan has run and its statistics
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// # Basic Usage
//
// The MCP server is typically started via the serve command:
//
//	hyt serve
//
// It then listens on stdin for MCP protocol messages and writes responses to stdout.
//
// # Tool: scan_files
//
// Scan explicit files, or the files described by a working-set file:
//
//	Request:
//	{
//	  "name": "scan_files",
//	  "arguments": {
//	    "set_file": "/path/to/project/.hylite",
//	    "covert": false
//	  }
//	}
//
//	Response:
//	{
//	  "scanned": true,
//	  "files_scanned": 212,
//	  "files_skipped": 1,
//	  "annotations": 96,
//	  "hylites": 71,
//	  "duration_ms": 48,
//	  "errors": ["/path/to/project/src/gone.c: file is not readable: ..."]
//	}
//
// Each scan builds a new set. Sets already handed to readers are never
// modified; the new one replaces them when the scan ends, even if it was
// aborted.
//
// # Tool: list_hylites
//
//	Request:
//	{
//	  "name": "list_hylites",
//	  "arguments": {
//	    "name": "/^cache/",
//	    "attributes": ["todo"],
//	    "limit": 20
//	  }
//	}
//
//	Response:
//	{
//	  "total": 1,
//	  "returned": 1,
//	  "hylites": [
//	    {
//	      "name": "cache-evict",
//	      "anonymous": false,
//	      "attributes": ["todo", "perf"],
//	      "texts": ["revisit the LRU size"],
//	      "locations": ["src/cache.c:42"]
//	    }
//	  ]
//	}
//
// Filters combine: a hylite must pass the name, the groups and the attributes
// given.
//
// # Tool: attribute_directory
//
//	Response:
//	{
//	  "count": 3,
//	  "attributes": [
//	    {"path": "_Name", "level": 1, "count": 0},
//	    {"path": "_Name-cache-evict", "level": 3, "count": 1},
//	    {"path": "todo", "level": 1, "count": 4}
//	  ]
//	}
//
// # Error Handling
//
// Error codes:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error (filesystem, etc.)
//   - -32001: Working-set file not readable
//   - -32002: Scan in progress
//   - -32003: Nothing scanned yet
//   - -32004: Scan aborted (read error or cancellation)
//
// # Logging
//
// The server logs through the *slog.Logger it is given; hyt writes it to
// stderr since stdout carries the protocol.
package mcp
