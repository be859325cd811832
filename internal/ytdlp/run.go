package ytdlp

import (
	"context"
	"errors"
	"os/exec"

	"github.com/nguyentantai21042004/yt-subtitles-mcp/pkg/executor"
)

// run invokes yt-dlp once with the given arguments and returns its stdout.
// dir is the working directory; empty means the process default. A missing
// binary maps to ErrToolMissing, a non-zero exit to *ToolError carrying the
// tool's stderr. One attempt only, no retry.
func (s *implService) run(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := s.executor.ExecuteInDir(ctx, dir, s.binary, args...)
	if err != nil {
		var cmdErr *executor.CommandError
		if errors.As(err, &cmdErr) {
			if errors.Is(cmdErr.Err, exec.ErrNotFound) {
				return "", ErrToolMissing
			}
			return "", &ToolError{Stderr: cmdErr.Stderr}
		}
		return "", err
	}
	return out, nil
}
