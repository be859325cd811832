package ytdlp

import "context"

// Service drives the yt-dlp command line tool. Every call spawns a fresh
// process; nothing is cached between calls.
type Service interface {
	// Probe reports whether the yt-dlp binary is resolvable on PATH.
	Probe(ctx context.Context) bool
	// StartBackgroundUpdate fires a yt-dlp self-update without waiting for it.
	StartBackgroundUpdate(ctx context.Context)
	// ListSubtitleLanguages returns the subtitle languages yt-dlp reports
	// for the video, in yt-dlp's output order.
	ListSubtitleLanguages(ctx context.Context, url string) ([]Language, error)
	// DownloadSubtitles fetches auto-generated subtitles for lang and
	// returns them as cleaned plain text.
	DownloadSubtitles(ctx context.Context, url, lang string) (string, error)
	// GetVideoInfo fetches basic metadata for the video.
	GetVideoInfo(ctx context.Context, url string) (*VideoInfo, error)
}

// Language is one entry from a subtitle listing.
type Language struct {
	Code string
	Name string
}

// VideoInfo holds basic video metadata. All fields are kept as yt-dlp
// prints them; only UploadDate is reformatted (YYYYMMDD -> YYYY-MM-DD).
type VideoInfo struct {
	Title      string
	Duration   string
	Channel    string
	UploadDate string
	ViewCount  string
}
