package normalizer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/glowup/research-backend/internal/entity"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const questionSchemaURL = "schema://generated-question.json"

// questionSchema is the minimum an array element must satisfy to be kept.
var questionSchema = mustCompileQuestionSchema()

func mustCompileQuestionSchema() *jsonschema.Schema {
	def := map[string]any{
		"type":     "object",
		"required": []any{"question"},
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "minLength": 1},
		},
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(questionSchemaURL, def); err != nil {
		panic(fmt.Sprintf("add question schema: %v", err))
	}
	compiled, err := c.Compile(questionSchemaURL)
	if err != nil {
		panic(fmt.Sprintf("compile question schema: %v", err))
	}
	return compiled
}

// ExtractQuestions parses the JSON array spanning the first '[' and the last ']' of raw.
// Elements without a question are dropped; missing fields get defaults.
func ExtractQuestions(raw string) ([]entity.GeneratedQuestion, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, &ParseError{Kind: ParseNoArray}
	}

	var items []any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &items); err != nil {
		return nil, &ParseError{Kind: ParseInvalidJSON, Err: err}
	}

	questions := make([]entity.GeneratedQuestion, 0, len(items))
	usedIDs := make(map[string]bool, len(items))
	for i, item := range items {
		if err := questionSchema.Validate(item); err != nil {
			continue
		}
		q := toQuestion(item.(map[string]any), i)
		q.ID = uniqueID(q.ID, i, usedIDs)
		usedIDs[q.ID] = true
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, &ParseError{Kind: ParseEmpty}
	}

	return questions, nil
}

func toQuestion(obj map[string]any, index int) entity.GeneratedQuestion {
	q := entity.GeneratedQuestion{
		ID:       fmt.Sprintf("q_%d", index+1),
		Question: obj["question"].(string),
		Type:     entity.QuestionTypeText,
		Required: true,
		Order:    index + 1,
	}

	switch id := obj["id"].(type) {
	case string:
		if id != "" {
			q.ID = id
		}
	case float64:
		q.ID = strconv.FormatFloat(id, 'f', -1, 64)
	}

	if t, ok := obj["type"].(string); ok && entity.QuestionType(t) == entity.QuestionTypeSelect {
		q.Type = entity.QuestionTypeSelect
	}

	if required, ok := obj["required"].(bool); ok {
		q.Required = required
	}

	if order, ok := obj["order"].(float64); ok && order >= 1 && order == math.Trunc(order) {
		q.Order = int(order)
	}

	if q.Type == entity.QuestionTypeSelect {
		q.Options = []string{}
		if opts, ok := obj["options"].([]any); ok {
			for _, opt := range opts {
				if s, ok := opt.(string); ok {
					q.Options = append(q.Options, s)
				}
			}
		}
	}

	return q
}

// uniqueID keeps id unless an earlier question took it. Then it falls back to the
// positional id, suffixed until free.
func uniqueID(id string, index int, used map[string]bool) string {
	if !used[id] {
		return id
	}

	base := fmt.Sprintf("q_%d", index+1)
	candidate := base
	for n := 2; used[candidate]; n++ {
		candidate = fmt.Sprintf("%s_%d", base, n)
	}
	return candidate
}
