package ytdlp

import (
	"context"
	"regexp"
	"strings"
)

// subtitleSectionMarker announces the start of the listing in
// `yt-dlp --list-subs` output. Lines before it are noise (extractor
// progress, auto-caption section headers are handled by the same marker
// check per line).
const subtitleSectionMarker = "Available subtitles"

// languageLineRe matches one listing line: a language-code token, an
// optional middle column (the format list, delimited by two or more
// spaces), and the display name as remainder. The middle column is
// recognized but discarded; only code and name survive.
var languageLineRe = regexp.MustCompile(`^\s*(\w+)\s+(?:(\S.*?)\s{2,})?(\S.*)$`)

// ListSubtitleLanguages lists the subtitle languages yt-dlp reports for the
// video. No media is downloaded. An empty slice is a normal result.
func (s *implService) ListSubtitleLanguages(ctx context.Context, url string) ([]Language, error) {
	s.logger.Info(ctx, "Fetching available subtitle languages for %s", url)

	out, err := s.run(ctx, "", "--skip-download", "--list-subs", url)
	if err != nil {
		return nil, err
	}

	return parseLanguageList(out), nil
}

// parseLanguageList scans --list-subs output. Everything before the
// "Available subtitles" marker is ignored; after it, each non-blank line
// that matches languageLineRe yields one entry, in output order. Lines that
// don't match are skipped.
func parseLanguageList(output string) []Language {
	var languages []Language
	inSection := false

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")

		if strings.Contains(line, subtitleSectionMarker) {
			inSection = true
			continue
		}
		if !inSection || strings.TrimSpace(line) == "" {
			continue
		}

		m := languageLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		languages = append(languages, Language{
			Code: m[1],
			Name: strings.TrimSpace(m[3]),
		})
	}

	return languages
}
