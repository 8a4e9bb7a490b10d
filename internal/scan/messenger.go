package scan

import "context"

// ImageMessage is one incoming image from the chat transport, already
// downloaded to a local path by the transport implementation.
type ImageMessage struct {
	ID        string
	ChatID    string
	ImagePath string
}

// Messenger is the chat transport that delivers images in and reports out.
// No concrete network transport ships in this repo; implementations are
// provided by the embedding program.
type Messenger interface {
	FetchImages(ctx context.Context, max int) ([]ImageMessage, error)
	SendText(ctx context.Context, chatID, text string) error
	SendFile(ctx context.Context, chatID, path string) error
}
