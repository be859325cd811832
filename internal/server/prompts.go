package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *implServer) registerPrompts() {
	workflow := mcp.NewPrompt("youtube_subtitles_workflow",
		mcp.WithPromptDescription("Create a workflow for analyzing YouTube video subtitles"),
		mcp.WithArgument("url",
			mcp.ArgumentDescription("URL of the YouTube video"),
			mcp.RequiredArgument(),
		),
	)
	s.mcp.AddPrompt(workflow, s.handleWorkflowPrompt)
}

func (s *implServer) handleWorkflowPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	url := request.Params.Arguments["url"]

	return mcp.NewGetPromptResult(
		"Workflow for analyzing YouTube video subtitles",
		workflowMessages(url),
	), nil
}

// workflowMessages is a pure function of the URL: a fixed four-message
// scripted conversation, no external calls.
func workflowMessages(url string) []mcp.PromptMessage {
	return []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(
			fmt.Sprintf("I want to analyze the subtitles from this YouTube video: %s", url))),
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(
			"First, get basic information about the video.")),
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(
			"Then, list available subtitle languages.")),
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(
			"Finally, download the subtitles in my preferred language and analyze their content.")),
	}
}
