package server

import (
	"log/slog"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/wnoronha-3blmedia/gong-mcp/gong"
)

const (
	serverName    = "gong-mcp"
	serverVersion = "1.0.0"
)

// Server is the MCP surface over the Gong API client. It registers the two
// supported tools and serves them over stdio.
type Server struct {
	mcpServer *mcpserver.MCPServer
	client    *gong.Client
	logger    *slog.Logger
}

// ServerOption is a functional option for configuring a Server.
type ServerOption func(*Server)

// WithLogger sets the server's logger. If not set, slog.Default() is used.
// The logger must write to stderr; stdout carries the MCP protocol.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a Server wrapping the given Gong client and registers the
// list_calls and retrieve_transcripts tools.
func New(client *gong.Client, opts ...ServerOption) *Server {
	s := &Server{
		client: client,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = mcpserver.NewMCPServer(serverName, serverVersion,
		mcpserver.WithToolCapabilities(false))
	s.mcpServer.AddTool(listCallsTool(), s.handleListCalls)
	s.mcpServer.AddTool(retrieveTranscriptsTool(), s.handleRetrieveTranscripts)

	return s
}

// Serve runs the MCP server on the stdio transport until the transport closes
// or fails. A transport failure is fatal for the process: there is no peer
// left to respond to.
func (s *Server) Serve() error {
	s.logger.Info("serving MCP over stdio", "server", serverName, "version", serverVersion)
	return mcpserver.ServeStdio(s.mcpServer)
}
