package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"nutrition-estimator/internal/infrastructure/config"
	"nutrition-estimator/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// LLMSource fetches ingredient lists from an OpenRouter-compatible chat
// completions API. Every failure path falls back to the static source, so
// Fetch never returns an error and never returns an empty list.
type LLMSource struct {
	config *config.Config
	client *resty.Client
	static *StaticSource
	cache  Cache
}

// NewLLMSource creates an LLM-backed recipe source. cache may be nil.
func NewLLMSource(cfg *config.Config, cache Cache) *LLMSource {
	client := resty.New().
		SetBaseURL(cfg.RecipeAPI.BaseURL).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.RecipeAPI.APIKey)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.RecipeAPI.Timeout)

	return &LLMSource{
		config: cfg,
		client: client,
		static: NewStaticSource(),
		cache:  cache,
	}
}

// Fetch returns the ingredient list for a dish: cache, then the API, then the
// bundled samples and templates.
func (s *LLMSource) Fetch(ctx context.Context, dishName string) ([]common.IngredientLine, error) {
	normalized := common.NormalizeName(dishName)

	if s.cache != nil {
		if lines, ok := s.cache.Get(ctx, normalized); ok {
			common.LogCacheHit("recipe", normalized)
			return lines, nil
		}
		common.LogCacheMiss("recipe", normalized)
	}

	if !s.config.RecipeAPI.Enabled || s.config.RecipeAPI.APIKey == "" {
		return s.static.Fetch(ctx, dishName)
	}

	start := time.Now()
	lines, err := s.fetchFromAPI(ctx, dishName)
	common.LogRecipeFetch(dishName, "llm", time.Since(start), err)
	if err != nil || len(lines) == 0 {
		return s.static.Fetch(ctx, dishName)
	}

	if s.cache != nil {
		s.cache.Set(ctx, normalized, lines)
	}
	return lines, nil
}

func (s *LLMSource) fetchFromAPI(ctx context.Context, dishName string) ([]common.IngredientLine, error) {
	req := map[string]interface{}{
		"model": s.config.RecipeAPI.Model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a helpful cooking assistant that provides ingredient lists for Indian dishes.",
			},
			{
				"role": "user",
				"content": fmt.Sprintf(
					"Give me just the ingredients list with approximate quantities for %s. Format as JSON array with 'ingredient' and 'quantity' fields.",
					dishName),
			},
		},
		"max_tokens": s.config.RecipeAPI.MaxTokens,
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("failed to send recipe request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("recipe API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse recipe API response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no choices in recipe API response")
	}

	lines, err := ParseIngredientList(result.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to extract ingredients: %w", err)
	}
	return lines, nil
}

var (
	jsonArrayPattern = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
	lineItemPattern  = regexp.MustCompile(`^[-•*]?\s*([^:]+):\s*(.+)$`)
)

// ParseIngredientList salvages an ingredient list from free-form model
// output: direct JSON, then an embedded JSON array, then "Ingredient:
// Quantity" lines.
func ParseIngredientList(content string) ([]common.IngredientLine, error) {
	content = strings.TrimSpace(content)

	var lines []common.IngredientLine
	if err := common.ParseJSON(content, &lines); err == nil && len(lines) > 0 {
		return lines, nil
	}

	if m := jsonArrayPattern.FindString(content); m != "" {
		lines = nil
		if err := common.ParseJSON(common.QuoteJSONKeys(m), &lines); err == nil && len(lines) > 0 {
			return lines, nil
		}
	}

	common.LogWarn("recipe response is not JSON, attempting line parsing",
		zap.Int("content_length", len(content)),
	)

	lines = nil
	for _, raw := range strings.Split(content, "\n") {
		m := lineItemPattern.FindStringSubmatch(strings.TrimSpace(raw))
		if m == nil {
			continue
		}
		lines = append(lines, common.IngredientLine{
			Ingredient: strings.TrimSpace(m[1]),
			Quantity:   strings.TrimSpace(m[2]),
		})
	}
	if len(lines) > 0 {
		return lines, nil
	}

	return nil, fmt.Errorf("no ingredient list found in response")
}
