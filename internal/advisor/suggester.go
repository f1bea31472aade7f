package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gitlab.com/aungkh/finhabit/internal/logger"
	"google.golang.org/genai"
)

// Suggestion priorities and types accepted from the model.
var (
	validPriorities = []string{"low", "medium", "high"}
	validTypes      = []string{"reduce_spending", "increase_income", "savings", "budget_adjustment", "habit"}
)

// Request is the aggregated financial context sent to the model. Amounts
// are decimal strings; no raw transaction descriptions leave the device.
type Request struct {
	TotalIncome        string            `json:"total_income"`
	TotalExpenses      string            `json:"total_expenses"`
	SavingsRate        float64           `json:"savings_rate"`
	TransactionCount   int               `json:"transaction_count"`
	SpendingByCategory map[string]string `json:"spending_by_category"`
	Goals              []GoalContext     `json:"goals"`
}

// GoalContext summarizes one savings goal for the model.
type GoalContext struct {
	Name          string `json:"name"`
	TargetAmount  string `json:"target_amount"`
	CurrentAmount string `json:"current_amount"`
}

// Suggestion is one structured optimization suggestion as returned by the
// model. Id assignment and the implemented flag are the caller's concern.
type Suggestion struct {
	Type                     string   `json:"type"`
	Priority                 string   `json:"priority"`
	Title                    string   `json:"title"`
	Description              string   `json:"description"`
	PotentialSavings         *float64 `json:"potentialSavings,omitempty"`
	PotentialIncome          *float64 `json:"potentialIncome,omitempty"`
	Category                 string   `json:"category,omitempty"`
	ImplementationDifficulty string   `json:"implementationDifficulty,omitempty"`
	Timeframe                string   `json:"timeframe,omitempty"`
	ActionItems              []string `json:"actionItems"`
}

// Suggest asks Gemini for optimization suggestions based on the aggregated
// context. The response is constrained to a JSON array via a response
// schema; entries that fail validation are dropped rather than failing the
// whole call.
func (c *Client) Suggest(ctx context.Context, req Request) ([]Suggestion, error) {
	if c.generator == nil {
		return nil, fmt.Errorf("advisor client not initialized")
	}

	contextJSON, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode advisor context: %w", err)
	}

	logger.Log.Debug().
		Int("transaction_count", req.TransactionCount).
		Int("goal_count", len(req.Goals)).
		Msg("Suggest: sending context to Gemini")

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildSuggestionPrompt(string(contextJSON))},
			},
		},
	}

	temp := float32(0.4)
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32(2000),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: "You are a JSON API. You MUST respond with ONLY valid JSON, no preamble or explanation. Output a single JSON array."},
			},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"type": {
						Type: genai.TypeString,
						Enum: validTypes,
					},
					"priority": {
						Type: genai.TypeString,
						Enum: validPriorities,
					},
					"title": {
						Type:        genai.TypeString,
						Description: "Short suggestion headline",
					},
					"description": {
						Type:        genai.TypeString,
						Description: "What to change and why it helps",
					},
					"potentialSavings": {
						Type:        genai.TypeNumber,
						Description: "Estimated monthly savings, if applicable",
					},
					"potentialIncome": {
						Type:        genai.TypeNumber,
						Description: "Estimated monthly extra income, if applicable",
					},
					"category": {
						Type: genai.TypeString,
					},
					"implementationDifficulty": {
						Type: genai.TypeString,
						Enum: []string{"easy", "medium", "hard"},
					},
					"timeframe": {
						Type: genai.TypeString,
					},
					"actionItems": {
						Type:  genai.TypeArray,
						Items: &genai.Schema{Type: genai.TypeString},
					},
				},
				Required: []string{"type", "priority", "title", "description", "actionItems"},
			},
		},
	}

	resp, err := c.generator.GenerateContent(timeoutCtx, ModelName, contents, config)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Suggest: Gemini API call failed")
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("no response from Gemini")
	}

	fullText := resp.Text()
	if fullText == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	jsonText := extractJSONArray(fullText)
	if jsonText == "" {
		logger.Log.Warn().Msg("Suggest: no JSON array found in Gemini response")
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var raw []Suggestion
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		logger.Log.Error().Err(err).Msg("Suggest: failed to parse JSON response")
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(raw))
	for _, sg := range raw {
		if !sg.valid() {
			logger.Log.Warn().Str("title", sg.Title).Msg("Suggest: dropping invalid suggestion")
			continue
		}
		suggestions = append(suggestions, sg)
	}

	logger.Log.Debug().Int("count", len(suggestions)).Msg("Suggest: parsed Gemini suggestions")
	return suggestions, nil
}

// valid checks the fields the schema marks required; Gemini occasionally
// returns entries missing them anyway.
func (s Suggestion) valid() bool {
	if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.Description) == "" {
		return false
	}
	if !contains(validTypes, s.Type) || !contains(validPriorities, s.Priority) {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// buildSuggestionPrompt creates the prompt for suggestion generation.
func buildSuggestionPrompt(contextJSON string) string {
	return fmt.Sprintf(`Here is a user's aggregated financial snapshot:

%s

Suggest up to 5 concrete ways this user can improve their finances.

Rules:
- Ground every suggestion in the numbers above; no generic advice
- Prefer the categories with the highest spending
- Each suggestion needs 2-4 short, actionable steps in actionItems
- Use "high" priority only when the impact is substantial

Return a JSON array only.`, contextJSON)
}

// extractJSONArray extracts a JSON array from text that may contain
// preamble. Gemini sometimes returns responses like "Here is the JSON:\n[...]"
// even when ResponseMIMEType is set to application/json.
func extractJSONArray(text string) string {
	text = strings.TrimSpace(text)

	start := strings.Index(text, "[")
	if start == -1 {
		return ""
	}

	end := strings.LastIndex(text, "]")
	if end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}
