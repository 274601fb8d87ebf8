package xioca

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ImageRequest describes an image generation request.
type ImageRequest struct {
	Model  ImageModel
	Prompt string
}

func (r *ImageRequest) Validate() error {
	if !r.Model.Valid() {
		return &ValidationError{Param: "model", Reason: fmt.Sprintf("unsupported image model %q", r.Model)}
	}
	if strings.TrimSpace(r.Prompt) == "" {
		return &ValidationError{Param: "prompt", Reason: "must not be empty"}
	}
	return nil
}

// ImageService — пространство имён генерации изображений.
type ImageService struct {
	transport *transport
}

// Generate sends the prompt to the image model and returns the resulting
// image URL. Сервер принимает тот же формат, что и чат: промпт уходит
// одним пользовательским сообщением, ссылка приходит в image_url ответа.
func (s *ImageService) Generate(ctx context.Context, req ImageRequest) (*Image, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"model":    req.Model,
		"messages": []ChatMessage{{Role: RoleUser, Content: req.Prompt}},
	}

	var completion ChatCompletion
	if err := s.transport.post(ctx, endpointAI, payload, &completion); err != nil {
		return nil, err
	}

	var url string
	if len(completion.Choices) > 0 {
		url = completion.Choices[0].Message.ImageURL
	}
	if url == "" {
		return nil, &ParseError{Err: errors.New("response has no image url")}
	}

	return &Image{
		URL:     url,
		Model:   completion.Model,
		Created: completion.Created,
	}, nil
}
