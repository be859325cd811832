package ytdlp

import (
	"context"
	"strings"
)

// infoTemplate asks yt-dlp to print the five metadata fields, one per line.
const infoTemplate = "%(title)s\n%(duration_string)s\n%(channel)s\n%(upload_date)s\n%(view_count)s"

// GetVideoInfo fetches basic metadata for the video. Output shorter than
// the five expected lines yields *ParseError carrying the raw output.
func (s *implService) GetVideoInfo(ctx context.Context, url string) (*VideoInfo, error) {
	s.logger.Info(ctx, "Fetching video information for %s", url)

	out, err := s.run(ctx, "", "--skip-download", "--print", infoTemplate, url)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 5 {
		return nil, &ParseError{Raw: out}
	}

	return &VideoInfo{
		Title:      lines[0],
		Duration:   lines[1],
		Channel:    lines[2],
		UploadDate: formatUploadDate(lines[3]),
		ViewCount:  lines[4],
	}, nil
}

// formatUploadDate rewrites an 8-character YYYYMMDD date as YYYY-MM-DD.
// Anything else passes through unchanged.
func formatUploadDate(date string) string {
	if len(date) != 8 {
		return date
	}
	return date[:4] + "-" + date[4:6] + "-" + date[6:8]
}
