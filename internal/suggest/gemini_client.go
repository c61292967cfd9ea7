package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"fjacquet/wishplan/internal/logging"
)

// DefaultGeminiModel is used when the configuration names no model.
const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiClient implements AIClient against the Google Gemini API.
type GeminiClient struct {
	apiKey string
	model  string
	logger logging.Logger

	client *genai.Client
	gm     *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini-backed AIClient. The underlying API
// client is created lazily on first use so construction never needs network
// access.
func NewGeminiClient(apiKey, model string, logger logging.Logger) *GeminiClient {
	if model == "" {
		model = DefaultGeminiModel
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &GeminiClient{apiKey: apiKey, model: model, logger: logger}
}

func (c *GeminiClient) ensureClient(ctx context.Context) error {
	if c.client != nil {
		return nil
	}
	if c.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	c.gm = client.GenerativeModel(c.model)
	return nil
}

// SuggestCategory asks Gemini to classify the item into one of the given
// categories and parses the structured reply.
func (c *GeminiClient) SuggestCategory(ctx context.Context, query ItemQuery) (string, error) {
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Categorize the following wishlist item:
Name: %s
Price: %s
Notes: %s

Please assign this item to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`,
		query.Name, query.Price, query.Notes, strings.Join(query.Categories, ", "))

	resp, err := c.gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	category := extractCategory(responseText, query.Categories)
	if category == "" {
		return "", fmt.Errorf("no category in Gemini response")
	}

	c.logger.Debug("Gemini classified item",
		logging.F(logging.FieldItemName, query.Name),
		logging.F(logging.FieldCategory, category))
	return category, nil
}

// extractCategory parses the "Category: X" line of the model reply. When the
// reply is unstructured it falls back to scanning for a known category name.
func extractCategory(response string, known []string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
		}
	}

	lower := strings.ToLower(response)
	for _, name := range known {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}
