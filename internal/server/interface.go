package server

// Server exposes the yt-dlp operations as MCP tools over stdio.
type Server interface {
	ServeStdio() error
}
