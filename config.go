package xioca

import (
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env/v9"
	"go.uber.org/zap"

	"github.com/xioca/xioca-go/metrics"
)

const (
	DefaultBaseURL = "https://xioca.live/api"
	DefaultTimeout = 60 * time.Second
)

// Config описывает настройки клиента. Заполняется из окружения; явные
// опции конструктора имеют приоритет.
type Config struct {
	APIKey   string        `env:"XIOCA_API_KEY"`
	BaseURL  string        `env:"XIOCA_BASE_URL" envDefault:"https://xioca.live/api"`
	Timeout  time.Duration `env:"XIOCA_TIMEOUT" envDefault:"60s"`
	LogLevel string        `env:"XIOCA_LOG_LEVEL" envDefault:"info"`
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

type options struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
	recorder   *metrics.Recorder
}

// Option настраивает клиент при создании.
type Option func(*options)

// WithAPIKey sets the API key explicitly, overriding XIOCA_API_KEY.
func WithAPIKey(key string) Option {
	return func(o *options) { o.cfg.APIKey = key }
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(url string) Option {
	return func(o *options) { o.cfg.BaseURL = url }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.cfg.Timeout = d }
}

// WithHTTPClient substitutes the underlying HTTP client. The configured
// timeout is not applied on top of a custom client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithLogger attaches a zap logger; by default the client logs nothing.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics attaches a Prometheus recorder to the transport.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func resolveOptions(opts ...Option) (*options, error) {
	o := &options{logger: zap.NewNop()}

	if err := env.Parse(&o.cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.cfg.BaseURL == "" {
		o.cfg.BaseURL = DefaultBaseURL
	}
	if o.cfg.Timeout <= 0 {
		o.cfg.Timeout = DefaultTimeout
	}

	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}
