package xioca

// Role идентифицирует автора сообщения в диалоге.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// TextModel — текстовая модель, доступная через API.
type TextModel string

const (
	DeepseekV3 TextModel = "deepseek-v3"
	DeepseekR1 TextModel = "deepseek-r1"
	Qwen3      TextModel = "qwen3"
	Deepcoder  TextModel = "deepcoder"
	Llama33    TextModel = "llama-3.3"
)

func (m TextModel) Valid() bool {
	switch m {
	case DeepseekV3, DeepseekR1, Qwen3, Deepcoder, Llama33:
		return true
	}
	return false
}

func SupportedTextModels() []TextModel {
	return []TextModel{DeepseekV3, DeepseekR1, Qwen3, Deepcoder, Llama33}
}

// ImageModel — модель генерации изображений.
type ImageModel string

const Flux ImageModel = "flux"

func (m ImageModel) Valid() bool {
	return m == Flux
}

func SupportedImageModels() []ImageModel {
	return []ImageModel{Flux}
}

// ChatMessage is a single role/content pair of a conversation. Assistant
// messages produced by the image model carry the result in ImageURL.
type ChatMessage struct {
	Role     Role   `json:"role"`
	Content  string `json:"content,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// ChatCompletion is the API response to a chat request.
type ChatCompletion struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage,omitempty"`
}

type Choice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason,omitempty"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Image is the result of a generation request.
type Image struct {
	URL     string
	Model   string
	Created int64
}

// Bool и Float64 — хелперы для опциональных полей запроса.
func Bool(v bool) *bool { return &v }

func Float64(v float64) *float64 { return &v }
