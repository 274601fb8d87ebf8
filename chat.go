package xioca

import (
	"context"
	"errors"
	"fmt"
)

// Единственный эндпоинт генерации: и текст, и картинки ходят в /ai.
const endpointAI = "ai"

// ChatRequest describes a chat completion request. Online and Temperature
// are optional; when nil they are omitted from the payload entirely so the
// server applies its own defaults.
type ChatRequest struct {
	Model       TextModel
	Messages    []ChatMessage
	Online      *bool
	Temperature *float64

	// Extra пробрасывается в тело запроса как есть, не перекрывая
	// основные поля.
	Extra map[string]any
}

func (r *ChatRequest) Validate() error {
	if !r.Model.Valid() {
		return &ValidationError{Param: "model", Reason: fmt.Sprintf("unsupported text model %q", r.Model)}
	}
	if len(r.Messages) == 0 {
		return &ValidationError{Param: "messages", Reason: "at least one message is required"}
	}
	for i, m := range r.Messages {
		if !m.Role.Valid() {
			return &ValidationError{Param: "messages", Reason: fmt.Sprintf("message %d: unknown role %q", i, m.Role)}
		}
	}
	if r.Temperature != nil && (*r.Temperature < 0 || *r.Temperature > 2) {
		return &ValidationError{Param: "temperature", Reason: "must be in [0, 2]"}
	}
	return nil
}

func (r *ChatRequest) payload() map[string]any {
	p := map[string]any{
		"model":    r.Model,
		"messages": r.Messages,
	}
	if r.Online != nil {
		p["online"] = *r.Online
	}
	if r.Temperature != nil {
		p["temperature"] = *r.Temperature
	}
	for k, v := range r.Extra {
		if _, ok := p[k]; !ok {
			p[k] = v
		}
	}
	return p
}

// ChatService — пространство имён чат-комплишенов.
type ChatService struct {
	transport *transport
}

// Create validates the request locally and sends it. Invalid parameters are
// rejected with *ValidationError before any network traffic.
func (s *ChatService) Create(ctx context.Context, req ChatRequest) (*ChatCompletion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var completion ChatCompletion
	if err := s.transport.post(ctx, endpointAI, req.payload(), &completion); err != nil {
		return nil, err
	}

	if len(completion.Choices) == 0 {
		return nil, &ParseError{Err: errors.New("response has no choices")}
	}

	return &completion, nil
}
