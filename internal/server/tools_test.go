package server

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/config"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/logger"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/ytdlp"
)

// fakeService implements ytdlp.Service for facade tests.
type fakeService struct {
	languages []ytdlp.Language
	langErr   error
	subtitles string
	subErr    error
	info      *ytdlp.VideoInfo
	infoErr   error

	called bool
}

func (f *fakeService) Probe(ctx context.Context) bool { return true }

func (f *fakeService) StartBackgroundUpdate(ctx context.Context) {}

func (f *fakeService) ListSubtitleLanguages(ctx context.Context, url string) ([]ytdlp.Language, error) {
	f.called = true
	return f.languages, f.langErr
}

func (f *fakeService) DownloadSubtitles(ctx context.Context, url, lang string) (string, error) {
	f.called = true
	return f.subtitles, f.subErr
}

func (f *fakeService) GetVideoInfo(ctx context.Context, url string) (*ytdlp.VideoInfo, error) {
	f.called = true
	return f.info, f.infoErr
}

func newTestServer(t *testing.T, svc ytdlp.Service, available bool) *implServer {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return New(cfg, svc, logger.New("error"), available).(*implServer)
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) != 1 {
		t.Fatalf("result = %+v, want exactly one content item", result)
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content = %T, want mcp.TextContent", result.Content[0])
	}
	return text.Text
}

func TestToolsUnavailable(t *testing.T) {
	svc := &fakeService{}
	srv := newTestServer(t, svc, false)
	req := callRequest(map[string]any{"url": "https://example.com/v"})

	handlers := map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"list_subtitle_languages": srv.handleListSubtitleLanguages,
		"download_subtitles":      srv.handleDownloadSubtitles,
		"get_video_info":          srv.handleGetVideoInfo,
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			result, err := handler(context.Background(), req)
			if err != nil {
				t.Fatalf("handler error = %v, want nil", err)
			}
			if got := resultText(t, result); got != msgNotInstalled {
				t.Errorf("text = %q, want the fixed advisory", got)
			}
		})
	}

	if svc.called {
		t.Error("yt-dlp service was invoked while unavailable")
	}
}

func TestHandleListSubtitleLanguages(t *testing.T) {
	svc := &fakeService{languages: []ytdlp.Language{
		{Code: "en", Name: "English"},
		{Code: "fr", Name: "French"},
	}}
	srv := newTestServer(t, svc, true)

	result, err := srv.handleListSubtitleLanguages(context.Background(),
		callRequest(map[string]any{"url": "https://example.com/v"}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	want := "Available subtitle languages:\nen: English\nfr: French"
	if got := resultText(t, result); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestHandleListSubtitleLanguagesEmpty(t *testing.T) {
	svc := &fakeService{}
	srv := newTestServer(t, svc, true)

	result, err := srv.handleListSubtitleLanguages(context.Background(),
		callRequest(map[string]any{"url": "https://example.com/v"}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if got := resultText(t, result); got != "No subtitles found for this video." {
		t.Errorf("text = %q", got)
	}
}

func TestHandleListSubtitleLanguagesToolFailure(t *testing.T) {
	svc := &fakeService{langErr: &ytdlp.ToolError{Stderr: "ERROR: Video unavailable"}}
	srv := newTestServer(t, svc, true)

	result, err := srv.handleListSubtitleLanguages(context.Background(),
		callRequest(map[string]any{"url": "https://example.com/v"}))
	if err != nil {
		t.Fatalf("handler error = %v, want nil (errors become text)", err)
	}

	want := "Error listing subtitle languages: yt-dlp error: ERROR: Video unavailable"
	if got := resultText(t, result); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestHandleDownloadSubtitles(t *testing.T) {
	svc := &fakeService{subtitles: "Hello\nWorld\n"}
	srv := newTestServer(t, svc, true)

	result, err := srv.handleDownloadSubtitles(context.Background(),
		callRequest(map[string]any{"url": "https://example.com/v", "lang": "en"}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if got := resultText(t, result); got != "Hello\nWorld\n" {
		t.Errorf("text = %q", got)
	}
}

func TestHandleDownloadSubtitlesNotFound(t *testing.T) {
	svc := &fakeService{subErr: &ytdlp.SubtitleNotFoundError{Lang: "xx"}}
	srv := newTestServer(t, svc, true)

	result, err := srv.handleDownloadSubtitles(context.Background(),
		callRequest(map[string]any{"url": "https://example.com/v", "lang": "xx"}))
	if err != nil {
		t.Fatalf("handler error = %v, want nil (not-found is a normal result)", err)
	}

	if got := resultText(t, result); got != "No subtitles found for language: xx" {
		t.Errorf("text = %q", got)
	}
}

func TestHandleGetVideoInfo(t *testing.T) {
	svc := &fakeService{info: &ytdlp.VideoInfo{
		Title:      "Never Gonna Give You Up",
		Duration:   "3:33",
		Channel:    "Rick Astley",
		UploadDate: "2009-10-25",
		ViewCount:  "1400000000",
	}}
	srv := newTestServer(t, svc, true)

	result, err := srv.handleGetVideoInfo(context.Background(),
		callRequest(map[string]any{"url": "https://example.com/v"}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	want := "Title: Never Gonna Give You Up\nDuration: 3:33\nChannel: Rick Astley\nUpload Date: 2009-10-25\nViews: 1400000000"
	if got := resultText(t, result); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestHandleGetVideoInfoParseShortfall(t *testing.T) {
	svc := &fakeService{infoErr: &ytdlp.ParseError{Raw: "garbage output"}}
	srv := newTestServer(t, svc, true)

	result, err := srv.handleGetVideoInfo(context.Background(),
		callRequest(map[string]any{"url": "https://example.com/v"}))
	if err != nil {
		t.Fatalf("handler error = %v, want nil (shortfall is a normal result)", err)
	}

	if got := resultText(t, result); got != "Couldn't parse video information: garbage output" {
		t.Errorf("text = %q", got)
	}
}

func TestHandleDownloadSubtitlesGenericError(t *testing.T) {
	svc := &fakeService{subErr: errors.New("disk full")}
	srv := newTestServer(t, svc, true)

	result, err := srv.handleDownloadSubtitles(context.Background(),
		callRequest(map[string]any{"url": "https://example.com/v"}))
	if err != nil {
		t.Fatalf("handler error = %v, want nil (errors become text)", err)
	}

	if got := resultText(t, result); got != "Error downloading subtitles: disk full" {
		t.Errorf("text = %q", got)
	}
}
