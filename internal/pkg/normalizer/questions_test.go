package normalizer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/glowup/research-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractQuestions_FillsDefaults(t *testing.T) {
	got, err := ExtractQuestions(`[{"question":"A?"}]`)
	require.NoError(t, err)
	require.Len(t, got, 1)

	q := got[0]
	assert.Equal(t, "q_1", q.ID)
	assert.Equal(t, "A?", q.Question)
	assert.Equal(t, entity.QuestionTypeText, q.Type)
	assert.True(t, q.Required)
	assert.Equal(t, 1, q.Order)
	assert.Nil(t, q.Options)
}

func TestExtractQuestions_SurroundingProse(t *testing.T) {
	raw := `Sure! Here are your questions:
[
  {"id": "q1", "question": "What industry is this problem in?", "type": "text", "required": true, "order": 1},
  {"id": "q2", "question": "Which region?", "type": "select", "options": ["EU", "US"], "required": false, "order": 3}
]
Let me know if you need more.`

	got, err := ExtractQuestions(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, entity.GeneratedQuestion{
		ID: "q1", Question: "What industry is this problem in?", Type: entity.QuestionTypeText, Required: true, Order: 1,
	}, got[0])
	assert.Equal(t, entity.GeneratedQuestion{
		ID: "q2", Question: "Which region?", Type: entity.QuestionTypeSelect, Required: false, Order: 3,
		Options: []string{"EU", "US"},
	}, got[1])
}

func TestExtractQuestions_DropsElementsWithoutQuestion(t *testing.T) {
	raw := `[{"id":"x","text":"no question"}, "plain string", {"question":"Kept?"}, 7]`

	got, err := ExtractQuestions(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kept?", got[0].Question)
	assert.Equal(t, "q_3", got[0].ID)
	assert.Equal(t, 3, got[0].Order)
}

func TestExtractQuestions_OptionsOnlyForSelect(t *testing.T) {
	raw := `[
		{"question":"Free text?","type":"text","options":["a","b"]},
		{"question":"Pick one?","type":"select"}
	]`

	got, err := ExtractQuestions(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].Options)
	assert.NotNil(t, got[1].Options)
	assert.Empty(t, got[1].Options)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"options":null`)
	assert.Contains(t, string(data), `"options":[]`)
}

func TestExtractQuestions_IDsAreUnique(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "explicit id repeats a default",
			raw:  `[{"question":"A?"},{"id":"q_1","question":"B?"}]`,
			want: []string{"q_1", "q_2"},
		},
		{
			name: "model repeats its own id",
			raw:  `[{"id":"x","question":"A?"},{"id":"x","question":"B?"},{"id":"x","question":"C?"}]`,
			want: []string{"x", "q_2", "q_3"},
		},
		{
			name: "positional fallback already taken",
			raw:  `[{"id":"q_2","question":"A?"},{"id":"q_2","question":"B?"},{"id":"q_2_2","question":"C?"}]`,
			want: []string{"q_2", "q_2_2", "q_3"},
		},
		{
			name: "numeric id repeats a string id",
			raw:  `[{"id":"7","question":"A?"},{"id":7,"question":"B?"}]`,
			want: []string{"7", "q_2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractQuestions(tt.raw)
			require.NoError(t, err)

			ids := make([]string, len(got))
			for i, q := range got {
				ids[i] = q.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestExtractQuestions_UnknownTypeBecomesText(t *testing.T) {
	raw := `[
		{"question":"A?","type":"multiple_choice","options":["x","y"],"order":0},
		{"question":"B?","type":"SELECT"},
		{"question":"C?","type":"select","options":["x"]}
	]`

	got, err := ExtractQuestions(raw)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, entity.QuestionTypeText, got[0].Type)
	assert.Nil(t, got[0].Options)
	assert.Equal(t, 1, got[0].Order)
	assert.Equal(t, entity.QuestionTypeText, got[1].Type)
	assert.Equal(t, entity.QuestionTypeSelect, got[2].Type)
	assert.Equal(t, []string{"x"}, got[2].Options)
}

func TestExtractQuestions_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ParseErrorKind
	}{
		{"no brackets", "I cannot help with that.", ParseNoArray},
		{"reversed brackets", "] nothing [", ParseNoArray},
		{"only opening bracket", "[ {\"question\": \"A?\"}", ParseNoArray},
		{"invalid json", `[{"question": "A?",}]`, ParseInvalidJSON},
		{"not an array", `[1] and {"x": [2]`, ParseInvalidJSON},
		{"no usable elements", `[{"id":"q1"}]`, ParseEmpty},
		{"empty array", `[]`, ParseEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractQuestions(tt.raw)
			require.Error(t, err)
			assert.Nil(t, got)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.kind, pe.Kind)
		})
	}
}

func TestDefaultQuestions(t *testing.T) {
	got := DefaultQuestions()
	require.Len(t, got, 5)

	ids := []string{"industry", "target_audience", "geographic_scope", "market_size", "urgency"}
	for i, q := range got {
		assert.Equal(t, ids[i], q.ID)
		assert.Equal(t, i+1, q.Order)
		assert.True(t, q.Required)
		if q.Type == entity.QuestionTypeSelect {
			assert.NotEmpty(t, q.Options)
		} else {
			assert.Nil(t, q.Options)
		}
	}
	assert.Equal(t, []string{"Local", "Regional", "National", "Global"}, got[2].Options)
	assert.Equal(t, "Under $1M", got[3].Options[0])
	assert.Equal(t, "Over $1B", got[3].Options[4])
	assert.Equal(t, []string{"Low", "Medium", "High", "Critical"}, got[4].Options)

	// Callers may mutate the result without affecting later calls.
	got[2].Options[0] = "changed"
	assert.Equal(t, "Local", DefaultQuestions()[2].Options[0])
}
