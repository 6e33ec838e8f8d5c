package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"trippin/internal/itinerary"
)

const defaultOpenAIModel = openai.GPT4oMini

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// OpenAISource asks a chat model for candidate places. It is the last
// source tried before the generic fallback.
type OpenAISource struct {
	client *openai.Client
	model  string
}

func NewOpenAISource(cfg OpenAIConfig) *OpenAISource {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}
	return &OpenAISource{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

func (s *OpenAISource) Name() string { return "openai" }

type suggestedPlace struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

type suggestion struct {
	Known      bool             `json:"known"`
	Historical []suggestedPlace `json:"historical"`
	Food       []suggestedPlace `json:"food"`
	Scenic     []suggestedPlace `json:"scenic"`
	Nightlife  []suggestedPlace `json:"nightlife"`
}

const systemPrompt = `You recommend places to visit. Reply with JSON only, matching exactly:
{"known": true, "historical": [{"name": "string", "description": "string", "price": 0.0}], "food": [], "scenic": [], "nightlife": []}
"price" is the typical cost per person in US dollars, 0 when free.
Set "known" to false and leave the lists empty when the location is not a real place.`

func (s *OpenAISource) Lookup(ctx context.Context, location string) (itinerary.Catalog, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(
				"List up to 5 places in each category (historical museums and art galleries, food places, scenic and natural places, nightlife) for: %s", location)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature:    0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices")
	}

	var out suggestion
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("openai decode: %w", err)
	}
	if !out.Known {
		return nil, ErrLocationNotFound
	}

	return itinerary.Catalog{
		itinerary.Historical: toPlaces(out.Historical),
		itinerary.Food:       toPlaces(out.Food),
		itinerary.Scenic:     toPlaces(out.Scenic),
		itinerary.Nightlife:  toPlaces(out.Nightlife),
	}, nil
}

func toPlaces(in []suggestedPlace) []itinerary.Place {
	out := make([]itinerary.Place, 0, len(in))
	for _, p := range in {
		if p.Name == "" || p.Price == nil || *p.Price < 0 {
			continue
		}
		out = append(out, itinerary.NewPlace(p.Name, p.Description, *p.Price))
	}
	return out
}
