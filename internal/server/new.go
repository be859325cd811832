package server

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/config"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/logger"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/ytdlp"
)

type implServer struct {
	mcp         *mcpserver.MCPServer
	svc         ytdlp.Service
	logger      logger.Logger
	available   bool
	defaultLang string
}

// New creates a new Server instance. available is the startup probe result;
// when false every tool returns a fixed advisory instead of invoking yt-dlp.
func New(cfg *config.Config, svc ytdlp.Service, log logger.Logger, available bool) Server {
	s := &implServer{
		svc:         svc,
		logger:      log,
		available:   available,
		defaultLang: cfg.YTDLP.DefaultLang,
	}

	s.mcp = mcpserver.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithPromptCapabilities(false),
	)
	s.registerTools()
	s.registerPrompts()

	return s
}

// ServeStdio blocks serving MCP requests on stdin/stdout.
func (s *implServer) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcp)
}
