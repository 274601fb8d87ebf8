package xioca

import "context"

// AsyncClient is the non-blocking facade: each call starts a goroutine and
// returns a Call future immediately. Several calls may be in flight at once;
// the shared connection pool is safe for concurrent use.
//
// Валидация, сборка запроса и разбор ответа общие с Client — отличается
// только момент блокировки.
type AsyncClient struct {
	Chat   *AsyncChatService
	Images *AsyncImageService

	transport *transport
}

// NewAsync builds the async facade. Configuration rules match New.
func NewAsync(opts ...Option) (*AsyncClient, error) {
	o, err := resolveOptions(opts...)
	if err != nil {
		return nil, err
	}

	t := newTransport(o)
	return &AsyncClient{
		Chat:      &AsyncChatService{chat: &ChatService{transport: t}},
		Images:    &AsyncImageService{images: &ImageService{transport: t}},
		transport: t,
	}, nil
}

// Close releases the underlying connection pool exactly once. Calls already
// in flight are not aborted.
func (c *AsyncClient) Close() {
	c.transport.close()
}

type AsyncChatService struct {
	chat *ChatService
}

// Create starts the request and returns immediately.
func (s *AsyncChatService) Create(ctx context.Context, req ChatRequest) *Call[*ChatCompletion] {
	return newCall(func() (*ChatCompletion, error) {
		return s.chat.Create(ctx, req)
	})
}

type AsyncImageService struct {
	images *ImageService
}

// Generate starts the request and returns immediately.
func (s *AsyncImageService) Generate(ctx context.Context, req ImageRequest) *Call[*Image] {
	return newCall(func() (*Image, error) {
		return s.images.Generate(ctx, req)
	})
}
