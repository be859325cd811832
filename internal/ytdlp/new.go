package ytdlp

import (
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/config"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/logger"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/pkg/executor"
)

type implService struct {
	binary        string
	updateChannel string
	executor      executor.Executor
	logger        logger.Logger
}

// New creates a new Service instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Service {
	return &implService{
		binary:        cfg.YTDLP.BinaryPath,
		updateChannel: cfg.YTDLP.UpdateChannel,
		executor:      exec,
		logger:        log,
	}
}
