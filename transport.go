package xioca

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xioca/xioca-go/metrics"
)

// transport держит базовый URL, ключ и пул соединений. Обе обвязки (Chat и
// Images) ходят в сеть только через него.
type transport struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	logger   *zap.Logger
	recorder *metrics.Recorder

	closeOnce sync.Once
}

func newTransport(o *options) *transport {
	hc := o.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: o.cfg.Timeout}
	}

	return &transport{
		baseURL:  strings.TrimRight(o.cfg.BaseURL, "/"),
		apiKey:   o.cfg.APIKey,
		client:   hc,
		logger:   o.logger,
		recorder: o.recorder,
	}
}

func (t *transport) post(ctx context.Context, path string, payload, out any) error {
	return t.do(ctx, http.MethodPost, path, payload, out)
}

func (t *transport) get(ctx context.Context, path string, out any) error {
	return t.do(ctx, http.MethodGet, path, nil, out)
}

func (t *transport) do(ctx context.Context, method, path string, payload, out any) error {
	url := t.baseURL + "/" + strings.TrimLeft(path, "/")

	var reqBody io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("X-Request-Id", requestID)

	if t.recorder != nil {
		t.recorder.IncRequestsInFlight()
		defer t.recorder.DecRequestsInFlight()
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		t.observe(path, "network_error", start)
		t.logger.Error("xioca request failed",
			zap.String("url", url),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.observe(path, "network_error", start)
		return &NetworkError{URL: url, Err: err}
	}

	t.observe(path, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		t.logger.Error("xioca request rejected",
			zap.String("url", url),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
			Body:       body,
		}
	}

	t.logger.Debug("xioca request done",
		zap.String("url", url),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return &ParseError{Err: err, Body: body}
		}
	}

	return nil
}

func (t *transport) observe(endpoint, status string, start time.Time) {
	if t.recorder != nil {
		t.recorder.RecordRequest(endpoint, status, time.Since(start))
	}
}

// close освобождает пул соединений; повторные вызовы — no-op.
func (t *transport) close() {
	t.closeOnce.Do(func() {
		t.client.CloseIdleConnections()
	})
}

// errorMessage вытаскивает человекочитаемое сообщение из тела ошибки.
// API отвечает {"error": "..."} или {"detail": "..."}; вложенный объект с
// полем message тоже встречается. Не-JSON тело возвращается как есть.
func errorMessage(body []byte) string {
	var payload struct {
		Error  any `json:"error"`
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, v := range []any{payload.Error, payload.Detail} {
			switch m := v.(type) {
			case string:
				if m != "" {
					return m
				}
			case map[string]any:
				if s, ok := m["message"].(string); ok && s != "" {
					return s
				}
			}
		}
	}
	return strings.TrimSpace(string(body))
}
