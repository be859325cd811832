package logger

import "context"

// Logger defines the leveled diagnostic logger used across the server.
// Everything it writes goes to stderr: stdout carries the MCP protocol.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
