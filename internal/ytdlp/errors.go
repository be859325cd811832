package ytdlp

import "errors"

// ErrToolMissing is returned when the yt-dlp binary cannot be found.
var ErrToolMissing = errors.New("yt-dlp not found. Please make sure it's installed and in your PATH.")

// ToolError reports a yt-dlp invocation that exited non-zero. Stderr is the
// tool's captured stderr, verbatim.
type ToolError struct {
	Stderr string
}

func (e *ToolError) Error() string {
	return "yt-dlp error: " + e.Stderr
}

// SubtitleNotFoundError means yt-dlp ran but produced no subtitle file for
// the requested language. Callers treat this as a normal result.
type SubtitleNotFoundError struct {
	Lang string
}

func (e *SubtitleNotFoundError) Error() string {
	return "no subtitles found for language: " + e.Lang
}

// ParseError means yt-dlp output did not match the expected shape. Raw keeps
// the full output so callers can surface it.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return "couldn't parse video information: " + e.Raw
}
