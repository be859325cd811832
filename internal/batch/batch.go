package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/ytdlp"
)

// Process handles one request file: the first non-blank line is the video
// URL; the cleaned transcript lands in the transcripts directory under the
// request's base name. A video without subtitles is logged, not an error.
func (h *implHandler) Process(ctx context.Context, requestPath string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(requestPath), filepath.Ext(requestPath))

	h.logger.Info(ctx, "Processing request: %s", requestPath)

	url, err := readRequestURL(requestPath)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}

	text, err := h.svc.DownloadSubtitles(ctx, url, h.defaultLang)
	if err != nil {
		var notFound *ytdlp.SubtitleNotFoundError
		if errors.As(err, &notFound) {
			h.logger.Warn(ctx, "No %s subtitles for %s, skipping", notFound.Lang, url)
			return nil
		}
		return fmt.Errorf("download subtitles: %w", err)
	}

	if err := os.MkdirAll(h.transcriptsDir, 0755); err != nil {
		return fmt.Errorf("create transcripts dir: %w", err)
	}

	outputPath := filepath.Join(h.transcriptsDir, name+".txt")
	if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}

	h.logger.Info(ctx, "Transcript written: %s (%s)", outputPath, time.Since(startTime))
	return nil
}

// readRequestURL returns the first non-blank line of the request file.
func readRequestURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
	}

	return "", fmt.Errorf("no URL in request file %s", path)
}
