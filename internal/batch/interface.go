package batch

import "context"

// Handler processes one URL request file from the inbox.
type Handler interface {
	Process(ctx context.Context, requestPath string) error
}
