package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sandeepkv93/taskdash/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-3-flash-preview"
)

// GeminiParser calls the Gemini generateContent endpoint with a fixed
// instruction contract and a JSON response schema. It implements Parser.
type GeminiParser struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type GeminiOption func(*GeminiParser)

func WithModel(name string) GeminiOption {
	return func(p *GeminiParser) {
		if strings.TrimSpace(name) != "" {
			p.model = name
		}
	}
}

func WithBaseURL(url string) GeminiOption {
	return func(p *GeminiParser) {
		if strings.TrimSpace(url) != "" {
			p.baseURL = strings.TrimSuffix(url, "/")
		}
	}
}

func WithHTTPClient(client *http.Client) GeminiOption {
	return func(p *GeminiParser) {
		if client != nil {
			p.client = client
		}
	}
}

func NewGeminiParser(apiKey string, opts ...GeminiOption) *GeminiParser {
	p := &GeminiParser{
		apiKey:  strings.TrimSpace(apiKey),
		model:   defaultModel,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string        `json:"responseMimeType"`
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
}

type geminiSchema struct {
	Type       string                  `json:"type"`
	Properties map[string]geminiSchema `json:"properties,omitempty"`
	Enum       []string                `json:"enum,omitempty"`
	Required   []string                `json:"required,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type draftPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

const instructionTemplate = `Parse this sentence into a task object.
Input: %q
Rules:
1. Extract a clear 'title'.
2. Extract a 'description' if additional context exists.
3. Extract 'time' in HH:mm 24-hour format if specified (e.g., 3pm -> 15:00).
4. Infer 'priority' (LOW, MEDIUM, HIGH).
5. Infer 'category' (WORK, PERSONAL, FAMILY, HEALTH).`

// Parse submits the sentence and returns a validated draft. Any service,
// transport, or decoding failure is logged for diagnostics and collapsed
// to ErrNoResult.
func (p *GeminiParser) Parse(ctx context.Context, sentence string) (Draft, error) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" || p.apiKey == "" {
		return Draft{}, ErrNoResult
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: fmt.Sprintf(instructionTemplate, sentence)}},
		}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   draftSchema(),
		},
	})
	if err != nil {
		log.Printf("assist: encode request: %v", err)
		return Draft{}, ErrNoResult
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Printf("assist: build request: %v", err)
		return Draft{}, ErrNoResult
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("assist: call service: %v", err)
		return Draft{}, ErrNoResult
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("assist: service status %d", resp.StatusCode)
		return Draft{}, ErrNoResult
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("assist: decode response: %v", err)
		return Draft{}, ErrNoResult
	}
	text := firstText(decoded)
	if text == "" {
		log.Printf("assist: empty response")
		return Draft{}, ErrNoResult
	}

	var payload draftPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &payload); err != nil {
		log.Printf("assist: decode draft: %v", err)
		return Draft{}, ErrNoResult
	}
	draft, err := validateDraft(Draft{
		Title:       payload.Title,
		Description: payload.Description,
		Time:        payload.Time,
		Priority:    model.Priority(payload.Priority),
		Category:    model.Category(payload.Category),
	})
	if err != nil {
		log.Printf("assist: rejected draft: title=%q priority=%q category=%q", payload.Title, payload.Priority, payload.Category)
		return Draft{}, ErrNoResult
	}
	return draft, nil
}

func draftSchema() *geminiSchema {
	return &geminiSchema{
		Type: "OBJECT",
		Properties: map[string]geminiSchema{
			"title":       {Type: "STRING"},
			"description": {Type: "STRING"},
			"time":        {Type: "STRING"},
			"priority": {
				Type: "STRING",
				Enum: []string{string(model.PriorityLow), string(model.PriorityMedium), string(model.PriorityHigh)},
			},
			"category": {
				Type: "STRING",
				Enum: []string{string(model.CategoryWork), string(model.CategoryPersonal), string(model.CategoryFamily), string(model.CategoryHealth)},
			},
		},
		Required: []string{"title", "priority", "category"},
	}
}

func firstText(resp geminiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return ""
}
