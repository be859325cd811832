package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/ytdlp"
)

// msgNotInstalled is the advisory every tool returns when the startup probe
// failed. Kept byte-identical across tools so clients can match on it.
const msgNotInstalled = "Error: yt-dlp is not installed. Please install it with: pip install yt-dlp"

const msgNoSubtitles = "No subtitles found for this video."

func (s *implServer) registerTools() {
	listTool := mcp.NewTool("list_subtitle_languages",
		mcp.WithDescription("List available subtitle languages for a YouTube video"),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL of the YouTube video"),
		),
	)
	s.mcp.AddTool(listTool, s.handleListSubtitleLanguages)

	downloadTool := mcp.NewTool("download_subtitles",
		mcp.WithDescription("Download subtitles from a YouTube video as plain readable text"),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL of the YouTube video"),
		),
		mcp.WithString("lang",
			mcp.Description("Language code for subtitles (default: 'en' for English)"),
			mcp.DefaultString(s.defaultLang),
		),
	)
	s.mcp.AddTool(downloadTool, s.handleDownloadSubtitles)

	infoTool := mcp.NewTool("get_video_info",
		mcp.WithDescription("Get basic information about a YouTube video"),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL of the YouTube video"),
		),
	)
	s.mcp.AddTool(infoTool, s.handleGetVideoInfo)
}

// Every handler follows the same boundary contract: whatever happens inside,
// the caller gets a text result, never a protocol-level fault.

func (s *implServer) handleListSubtitleLanguages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.available {
		return mcp.NewToolResultText(msgNotInstalled), nil
	}

	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	languages, err := s.svc.ListSubtitleLanguages(ctx, url)
	if err != nil {
		s.logger.Error(ctx, "Error listing subtitle languages: %v", err)
		return mcp.NewToolResultText(fmt.Sprintf("Error listing subtitle languages: %v", err)), nil
	}

	if len(languages) == 0 {
		return mcp.NewToolResultText(msgNoSubtitles), nil
	}

	var b strings.Builder
	b.WriteString("Available subtitle languages:")
	for _, lang := range languages {
		b.WriteString("\n")
		b.WriteString(lang.Code)
		b.WriteString(": ")
		b.WriteString(lang.Name)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *implServer) handleDownloadSubtitles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.available {
		return mcp.NewToolResultText(msgNotInstalled), nil
	}

	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lang := request.GetString("lang", s.defaultLang)

	text, err := s.svc.DownloadSubtitles(ctx, url, lang)
	if err != nil {
		var notFound *ytdlp.SubtitleNotFoundError
		if errors.As(err, &notFound) {
			return mcp.NewToolResultText(fmt.Sprintf("No subtitles found for language: %s", notFound.Lang)), nil
		}
		s.logger.Error(ctx, "Error downloading subtitles: %v", err)
		return mcp.NewToolResultText(fmt.Sprintf("Error downloading subtitles: %v", err)), nil
	}

	return mcp.NewToolResultText(text), nil
}

func (s *implServer) handleGetVideoInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.available {
		return mcp.NewToolResultText(msgNotInstalled), nil
	}

	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	info, err := s.svc.GetVideoInfo(ctx, url)
	if err != nil {
		var parseErr *ytdlp.ParseError
		if errors.As(err, &parseErr) {
			return mcp.NewToolResultText("Couldn't parse video information: " + parseErr.Raw), nil
		}
		s.logger.Error(ctx, "Error getting video info: %v", err)
		return mcp.NewToolResultText(fmt.Sprintf("Error getting video info: %v", err)), nil
	}

	return mcp.NewToolResultText(formatVideoInfo(info)), nil
}

func formatVideoInfo(info *ytdlp.VideoInfo) string {
	return fmt.Sprintf("Title: %s\nDuration: %s\nChannel: %s\nUpload Date: %s\nViews: %s",
		info.Title, info.Duration, info.Channel, info.UploadDate, info.ViewCount)
}
