package xioca

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

const imageBody = `{
	"id": "img-1",
	"object": "chat.completion",
	"created": 1700000100,
	"model": "flux",
	"choices": [
		{"index": 0, "message": {"role": "assistant", "image_url": "https://xioca.live/images/abc.png"}}
	]
}`

func TestImageService_Generate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  ImageRequest
	}{
		{"unsupported model", ImageRequest{Model: "dall-e-3", Prompt: "a cat"}},
		{"empty model", ImageRequest{Prompt: "a cat"}},
		{"empty prompt", ImageRequest{Model: Flux, Prompt: ""}},
		{"whitespace prompt", ImageRequest{Model: Flux, Prompt: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &fakeTransport{
				respond: func(*http.Request) (*http.Response, error) {
					return jsonResponse(http.StatusOK, imageBody), nil
				},
			}
			client := newTestClient(t, ft)

			_, err := client.Images.Generate(context.Background(), tt.req)

			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("Generate() error = %v, want *ValidationError", err)
			}
			if ft.callCount() != 0 {
				t.Errorf("call count = %d, want 0 (rejected locally)", ft.callCount())
			}
		})
	}
}

func TestImageService_Generate_Success(t *testing.T) {
	var captured map[string]any

	ft := &fakeTransport{
		respond: func(r *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Fatalf("decode request body: %v", err)
			}
			return jsonResponse(http.StatusOK, imageBody), nil
		},
	}
	client := newTestClient(t, ft)

	img, err := client.Images.Generate(context.Background(), ImageRequest{
		Model:  Flux,
		Prompt: "a cat in a hat",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if img.URL != "https://xioca.live/images/abc.png" {
		t.Errorf("URL = %q, want %q", img.URL, "https://xioca.live/images/abc.png")
	}
	if img.Model != "flux" {
		t.Errorf("Model = %q, want %q", img.Model, "flux")
	}
	if img.Created != 1700000100 {
		t.Errorf("Created = %d, want 1700000100", img.Created)
	}

	// промпт уходит одним пользовательским сообщением
	messages, ok := captured["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Fatalf("payload messages = %v, want one message", captured["messages"])
	}
	msg := messages[0].(map[string]any)
	if msg["role"] != "user" || msg["content"] != "a cat in a hat" {
		t.Errorf("payload message = %v, want user prompt", msg)
	}
}

func TestImageService_Generate_MissingURL(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no choices", `{"id": "img-1", "model": "flux"}`},
		{"choice without image url", `{"choices": [{"index": 0, "message": {"role": "assistant", "content": "no image"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &fakeTransport{
				respond: func(*http.Request) (*http.Response, error) {
					return jsonResponse(http.StatusOK, tt.body), nil
				},
			}
			client := newTestClient(t, ft)

			_, err := client.Images.Generate(context.Background(), ImageRequest{Model: Flux, Prompt: "a cat"})

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Generate() error = %v, want *ParseError", err)
			}
		})
	}
}

func TestImageService_Generate_APIError(t *testing.T) {
	ft := &fakeTransport{
		respond: func(*http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusNotFound, `{"detail": "model not found"}`), nil
		},
	}
	client := newTestClient(t, ft)

	_, err := client.Images.Generate(context.Background(), ImageRequest{Model: Flux, Prompt: "a cat"})

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = false, want true; err = %v", err)
	}
}
