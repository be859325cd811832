package batch

import (
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/config"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/logger"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/ytdlp"
)

type implHandler struct {
	transcriptsDir string
	defaultLang    string
	svc            ytdlp.Service
	logger         logger.Logger
}

// New creates a new Handler instance
func New(cfg *config.Config, svc ytdlp.Service, log logger.Logger) Handler {
	return &implHandler{
		transcriptsDir: cfg.Batch.Transcripts,
		defaultLang:    cfg.YTDLP.DefaultLang,
		svc:            svc,
		logger:         log,
	}
}
