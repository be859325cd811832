package ytdlp

import "context"

// Probe resolves the yt-dlp binary on PATH and logs the outcome. The result
// is computed once at startup and threaded into the operation facade.
func (s *implService) Probe(ctx context.Context) bool {
	path, err := s.executor.LookPath(s.binary)
	if err != nil {
		s.logger.Error(ctx, "yt-dlp not found in PATH. Please install it: pip install yt-dlp")
		return false
	}

	s.logger.Info(ctx, "Using yt-dlp at: %s", path)
	return true
}

// StartBackgroundUpdate launches a yt-dlp self-update and returns
// immediately. The update's outcome never affects startup or any operation;
// a failure to even launch is logged and ignored.
func (s *implService) StartBackgroundUpdate(ctx context.Context) {
	if err := s.executor.Start(ctx, s.binary, "--update-to", s.updateChannel); err != nil {
		s.logger.Warn(ctx, "Failed to start yt-dlp self-update: %v", err)
		return
	}

	s.logger.Debug(ctx, "yt-dlp self-update started (channel: %s)", s.updateChannel)
}
