package xioca

// Client is the blocking facade: every call holds the goroutine for the
// duration of the network round trip.
type Client struct {
	Chat   *ChatService
	Images *ImageService

	transport *transport
}

// New builds a client from options and the environment. The API key must
// come from WithAPIKey or XIOCA_API_KEY; without it New fails before any
// network call.
func New(opts ...Option) (*Client, error) {
	o, err := resolveOptions(opts...)
	if err != nil {
		return nil, err
	}

	t := newTransport(o)
	return &Client{
		Chat:      &ChatService{transport: t},
		Images:    &ImageService{transport: t},
		transport: t,
	}, nil
}

// Close releases the underlying connection pool. Safe to call more than
// once; only the first call has effect.
func (c *Client) Close() {
	c.transport.close()
}
