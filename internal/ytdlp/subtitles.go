package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

var (
	// srtCueRe matches one SRT cue header: the sequence number line plus the
	// `HH:MM:SS,mmm --> HH:MM:SS,mmm` timestamp line.
	srtCueRe = regexp.MustCompile(`(?m)^\d+\r?\n\d{2}:\d{2}:\d{2},\d{3} --> \d{2}:\d{2}:\d{2},\d{3}.*\r?\n`)
	// blankRunRe matches a run of blank lines left behind after cue removal.
	blankRunRe = regexp.MustCompile(`\n\s*\n`)
)

// DownloadSubtitles fetches auto-generated subtitles for lang into a fresh
// scratch directory, reads the produced SRT file back and returns it as
// cleaned plain text. The scratch directory is removed on every exit path.
// A missing subtitle file yields *SubtitleNotFoundError, not a tool failure.
func (s *implService) DownloadSubtitles(ctx context.Context, url, lang string) (string, error) {
	s.logger.Info(ctx, "Downloading %s subtitles for %s", lang, url)

	tempDir, err := os.MkdirTemp("", "subtitles-*")
	if err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	stem := filepath.Join(tempDir, "subtitles")

	_, err = s.run(ctx, tempDir,
		"--skip-download",
		"--write-auto-sub",
		"--sub-lang="+lang,
		"--convert-subs=srt",
		"--output="+stem,
		url,
	)
	if err != nil {
		return "", err
	}

	// yt-dlp appends the language and extension to the output stem.
	subtitleFile := fmt.Sprintf("%s.%s.srt", stem, lang)

	data, err := os.ReadFile(subtitleFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Error(ctx, "No subtitle file found: %s", subtitleFile)
			return "", &SubtitleNotFoundError{Lang: lang}
		}
		return "", fmt.Errorf("read subtitle file: %w", err)
	}

	return CleanSRT(string(data)), nil
}

// CleanSRT strips SRT structural noise: each cue's sequence-number and
// timestamp lines are removed, then blank-line runs collapse to single
// newlines. Applying it to already-clean text is a no-op.
func CleanSRT(raw string) string {
	text := srtCueRe.ReplaceAllString(raw, "")
	return blankRunRe.ReplaceAllString(text, "\n")
}
