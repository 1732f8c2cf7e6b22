package mcp

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/hylite/internal/hylite"
	"github.com/dshills/hylite/internal/scanner"
)

const (
	// ServerName is the MCP server name
	ServerName = "hylite"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the most recently scanned set
type Server struct {
	mcp    *server.MCPServer
	logger *slog.Logger

	// scanLock refuses overlapping scan_files calls
	scanLock scanner.ScanLock

	mu       sync.RWMutex
	set      *hylite.Set
	stats    *scanner.Statistics
	files    []string
	scanErr  error
	lastScan time.Time
}

// NewServer creates a new MCP server instance. A nil logger uses slog.Default().
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		mcp:    server.NewMCPServer(ServerName, ServerVersion),
		logger: logger,
	}
	s.registerTools()
	return s
}

// Serve runs the MCP protocol over in/out until ctx is cancelled or in closes
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(scanFilesTool(), s.handleScanFiles)
	s.mcp.AddTool(listHylitesTool(), s.handleListHylites)
	s.mcp.AddTool(attributeDirectoryTool(), s.handleAttributeDirectory)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
}

// publish replaces the current set. A set from an aborted scan is still
// published; it holds everything found before the failure.
func (s *Server) publish(set *hylite.Set, stats *scanner.Statistics, files []string, scanErr error) {
	// display names are cached on first use; fill the cache before readers share the set
	for _, hy := range set.Hylites() {
		hy.Name()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.set = set
	s.stats = stats
	s.files = files
	s.scanErr = scanErr
	s.lastScan = time.Now()
}

// current returns the published set, or nil before the first scan
func (s *Server) current() *hylite.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set
}
