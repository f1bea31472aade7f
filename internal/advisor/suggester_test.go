package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type mockGenerator struct {
	response   *genai.GenerateContentResponse
	err        error
	lastConfig *genai.GenerateContentConfig
}

func (m *mockGenerator) GenerateContent(
	_ context.Context,
	_ string,
	_ []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	m.lastConfig = config
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: text},
					},
				},
			},
		},
	}
}

func sampleRequest() Request {
	return Request{
		TotalIncome:      "5000.00",
		TotalExpenses:    "3200.00",
		SavingsRate:      36,
		TransactionCount: 42,
		SpendingByCategory: map[string]string{
			"dining_out": "820.00",
			"groceries":  "640.00",
		},
		Goals: []GoalContext{
			{Name: "emergency fund", TargetAmount: "5000.00", CurrentAmount: "1200.00"},
		},
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	t.Run("parses a valid suggestion array", func(t *testing.T) {
		t.Parallel()
		mockGen := &mockGenerator{
			response: textResponse(`[
				{"type": "reduce_spending", "priority": "high", "title": "Cut dining out", "description": "Dining is your largest category", "potentialSavings": 200, "category": "dining_out", "actionItems": ["cook at home", "set a weekly cap"]},
				{"type": "savings", "priority": "medium", "title": "Automate transfers", "description": "Move money on payday", "actionItems": ["set up a standing order"]}
			]`),
		}
		client := NewClientWithGenerator(mockGen)

		suggestions, err := client.Suggest(context.Background(), sampleRequest())
		require.NoError(t, err)
		require.Len(t, suggestions, 2)
		require.Equal(t, "reduce_spending", suggestions[0].Type)
		require.Equal(t, "high", suggestions[0].Priority)
		require.NotNil(t, suggestions[0].PotentialSavings)
		require.InDelta(t, 200, *suggestions[0].PotentialSavings, 0.001)
		require.Len(t, suggestions[0].ActionItems, 2)
		require.Nil(t, suggestions[1].PotentialSavings)
	})

	t.Run("drops entries that fail validation", func(t *testing.T) {
		t.Parallel()
		mockGen := &mockGenerator{
			response: textResponse(`[
				{"type": "reduce_spending", "priority": "high", "title": "Keep me", "description": "Valid entry", "actionItems": []},
				{"type": "buy_lottery_tickets", "priority": "high", "title": "Bad type", "description": "x", "actionItems": []},
				{"type": "savings", "priority": "urgent", "title": "Bad priority", "description": "x", "actionItems": []},
				{"type": "savings", "priority": "low", "title": "", "description": "Missing title", "actionItems": []}
			]`),
		}
		client := NewClientWithGenerator(mockGen)

		suggestions, err := client.Suggest(context.Background(), sampleRequest())
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		require.Equal(t, "Keep me", suggestions[0].Title)
	})

	t.Run("tolerates preamble around the array", func(t *testing.T) {
		t.Parallel()
		mockGen := &mockGenerator{
			response: textResponse("Here is the JSON:\n[{\"type\": \"habit\", \"priority\": \"low\", \"title\": \"Track spending daily\", \"description\": \"Build the review habit\", \"actionItems\": [\"check the app each evening\"]}]\nHope this helps!"),
		}
		client := NewClientWithGenerator(mockGen)

		suggestions, err := client.Suggest(context.Background(), sampleRequest())
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		require.Equal(t, "habit", suggestions[0].Type)
	})

	t.Run("constrains the response to JSON", func(t *testing.T) {
		t.Parallel()
		mockGen := &mockGenerator{response: textResponse(`[]`)}
		client := NewClientWithGenerator(mockGen)

		_, err := client.Suggest(context.Background(), sampleRequest())
		require.NoError(t, err)
		require.NotNil(t, mockGen.lastConfig)
		require.Equal(t, "application/json", mockGen.lastConfig.ResponseMIMEType)
		require.Equal(t, genai.TypeArray, mockGen.lastConfig.ResponseSchema.Type)
	})

	t.Run("handles API errors gracefully", func(t *testing.T) {
		t.Parallel()
		mockGen := &mockGenerator{err: errors.New("API error")}
		client := NewClientWithGenerator(mockGen)

		suggestions, err := client.Suggest(context.Background(), sampleRequest())
		require.Error(t, err)
		require.Nil(t, suggestions)
	})

	t.Run("handles empty response", func(t *testing.T) {
		t.Parallel()
		mockGen := &mockGenerator{
			response: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{}},
		}
		client := NewClientWithGenerator(mockGen)

		suggestions, err := client.Suggest(context.Background(), sampleRequest())
		require.Error(t, err)
		require.Nil(t, suggestions)
		require.Contains(t, err.Error(), "no text content")
	})

	t.Run("handles a response without an array", func(t *testing.T) {
		t.Parallel()
		mockGen := &mockGenerator{response: textResponse("I cannot help with that.")}
		client := NewClientWithGenerator(mockGen)

		suggestions, err := client.Suggest(context.Background(), sampleRequest())
		require.Error(t, err)
		require.Nil(t, suggestions)
		require.Contains(t, err.Error(), "no JSON array")
	})

	t.Run("returns error for nil generator", func(t *testing.T) {
		t.Parallel()
		client := &Client{generator: nil}

		suggestions, err := client.Suggest(context.Background(), sampleRequest())
		require.Error(t, err)
		require.Nil(t, suggestions)
		require.Contains(t, err.Error(), "not initialized")
	})
}

func TestBuildSuggestionPrompt(t *testing.T) {
	t.Parallel()

	prompt := buildSuggestionPrompt(`{"total_income": "5000.00"}`)
	require.Contains(t, prompt, `"total_income"`)
	require.Contains(t, prompt, "up to 5")
	require.Contains(t, prompt, "actionItems")
	require.Contains(t, prompt, "JSON array")
}

func TestExtractJSONArray(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare array",
			input:    `[{"a": 1}]`,
			expected: `[{"a": 1}]`,
		},
		{
			name:     "array with preamble and trailer",
			input:    "Sure! [1, 2, 3] Done.",
			expected: "[1, 2, 3]",
		},
		{
			name:     "markdown code fence",
			input:    "```json\n[true]\n```",
			expected: "[true]",
		},
		{
			name:     "no array",
			input:    "nothing here",
			expected: "",
		},
		{
			name:     "unterminated array",
			input:    `[{"a": 1}`,
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, extractJSONArray(tt.input))
		})
	}
}

func TestSuggestionValid(t *testing.T) {
	t.Parallel()

	base := Suggestion{
		Type:        "reduce_spending",
		Priority:    "medium",
		Title:       "t",
		Description: "d",
	}

	require.True(t, base.valid())

	noTitle := base
	noTitle.Title = "  "
	require.False(t, noTitle.valid())

	badType := base
	badType.Type = "time_travel"
	require.False(t, badType.valid())

	badPriority := base
	badPriority.Priority = "asap"
	require.False(t, badPriority.valid())
}
