package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/goodcents/goodcents-api/models"
	"github.com/goodcents/goodcents-api/utils"
)

const anthropicMessagesURL = "https://api.anthropic.com/v1/messages"

// ClaudeSelector asks Claude to pick a charity for a merchant. Any failure
// along the way (no key, network, bad JSON, unknown charity) degrades to the
// local keyword selector; callers never see an error.
type ClaudeSelector struct {
	apiKey     string
	model      string
	maxTokens  int
	baseURL    string
	httpClient *http.Client
	catalogue  models.Catalogue
	fallback   *LocalSelector
	cache      *gocache.Cache
	limiter    *rate.Limiter
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model string `json:"model"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// aiSelection is the strict JSON object the prompt asks Claude for.
type aiSelection struct {
	Charity    string `json:"charity"`
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

type ClaudeSelectorOpts struct {
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
	BaseURL   string
}

func NewClaudeSelector(opts ClaudeSelectorOpts, catalogue models.Catalogue, fallback *LocalSelector) *ClaudeSelector {
	if opts.Model == "" {
		opts.Model = "claude-3-5-sonnet-latest"
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 200
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.BaseURL == "" {
		opts.BaseURL = anthropicMessagesURL
	}
	return &ClaudeSelector{
		apiKey:     opts.APIKey,
		model:      opts.Model,
		maxTokens:  opts.MaxTokens,
		baseURL:    opts.BaseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		catalogue:  catalogue,
		fallback:   fallback,
		cache:      gocache.New(1*time.Hour, 10*time.Minute),
		limiter:    rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// Configured reports whether an API key is present.
func (s *ClaudeSelector) Configured() bool {
	return s.apiKey != ""
}

func (s *ClaudeSelector) Select(ctx context.Context, merchant string, amount decimal.Decimal) Selection {
	if s.apiKey == "" {
		return s.fallback.Select(ctx, merchant, amount)
	}

	cacheKey := strings.ToLower(strings.TrimSpace(merchant))
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(Selection)
	}

	// Dropped rather than queued when over the outbound budget.
	if !s.limiter.Allow() {
		utils.Warn("[Claude] outbound rate limit hit, using keyword fallback for %q", merchant)
		return s.fallback.Select(ctx, merchant, amount)
	}

	sel, err := s.selectRemote(ctx, merchant, amount)
	if err != nil {
		utils.Warn("[Claude] %v, using keyword fallback for %q", err, merchant)
		return s.fallback.Select(ctx, merchant, amount)
	}

	s.cache.SetDefault(cacheKey, sel)
	return sel
}

func (s *ClaudeSelector) selectRemote(ctx context.Context, merchant string, amount decimal.Decimal) (Selection, error) {
	text, err := s.executeRequest(ctx, claudeRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []claudeMessage{
			{Role: "user", Content: s.buildPrompt(merchant, amount)},
		},
	})
	if err != nil {
		return Selection{}, err
	}

	var result aiSelection
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &result); err != nil {
		return Selection{}, fmt.Errorf("could not parse AI response %q: %w", text, err)
	}
	if result.Charity == "" {
		return Selection{}, fmt.Errorf("AI response missing charity: %q", text)
	}
	if !s.catalogue.Has(result.Charity) {
		utils.Warn("[Claude] unknown charity %q, substituting %s", result.Charity, models.DefaultCharity)
		result.Charity = models.DefaultCharity
	}
	if result.Reasoning == "" {
		result.Reasoning = "AI selected based on merchant type"
	}

	utils.Info("[Claude] selected %s with %d%% confidence: %s", result.Charity, result.Confidence, result.Reasoning)
	return Selection(result), nil
}

func (s *ClaudeSelector) buildPrompt(merchant string, amount decimal.Decimal) string {
	names := make([]string, 0, len(s.catalogue))
	for name := range s.catalogue {
		names = append(names, name)
	}
	sort.Strings(names)

	var info strings.Builder
	for _, name := range names {
		c := s.catalogue[name]
		fmt.Fprintf(&info, "- %s: %s (£%s per %s)\n", c.Name, c.Description, c.CostPerImpact.StringFixed(2), c.Unit)
	}

	return fmt.Sprintf(`You are an AI assistant for a banking app that helps students donate spare change to charities.

A student just made a purchase at "%s" for £%s.

Available charities:
%s
Based on the merchant type and purchase context, which charity would be most appropriate for this transaction?

Consider:
- What type of business this merchant is
- How the purchase relates to the charity's mission
- What would make sense to a student

Respond with only a JSON object in this format:
{"charity": "Charity Name", "confidence": 85, "reasoning": "Brief explanation"}

Choose from the exact charity names listed above.`, merchant, amount.StringFixed(2), info.String())
}

func (s *ClaudeSelector) executeRequest(ctx context.Context, reqBody claudeRequest) (string, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var claudeResp claudeResponse
	if err := json.Unmarshal(body, &claudeResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(claudeResp.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	utils.Debug("[Claude] model %s, tokens in %d / out %d",
		claudeResp.Model, claudeResp.Usage.InputTokens, claudeResp.Usage.OutputTokens)

	return strings.TrimSpace(claudeResp.Content[0].Text), nil
}

// stripCodeFences removes the ```json wrapping models sometimes add.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
