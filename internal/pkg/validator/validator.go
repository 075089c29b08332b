package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/glowup/research-backend/internal/entity"
)

const (
	MinProblemStatementLength = 10
	MaxProblemStatementLength = 1000
)

// Validator checks user input before it reaches a provider.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateProblemStatement trims s and checks its length in characters.
func (v *Validator) ValidateProblemStatement(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	length := utf8.RuneCountInString(trimmed)

	switch {
	case length == 0:
		return "", &entity.InputError{
			Kind:    entity.ErrEmptyInput,
			Message: "Problem statement cannot be empty",
		}
	case length < MinProblemStatementLength:
		return "", &entity.InputError{
			Kind:    entity.ErrEmptyInput,
			Message: fmt.Sprintf("Problem statement must be at least %d characters", MinProblemStatementLength),
		}
	case length > MaxProblemStatementLength:
		return "", &entity.InputError{
			Kind:    entity.ErrTooLong,
			Message: fmt.Sprintf("Problem statement must be under %d characters", MaxProblemStatementLength),
		}
	}

	return trimmed, nil
}

// ValidateAnswers checks the decoded user_answers value and collects every violation.
// On success it returns the typed question/answer pairs.
func (v *Validator) ValidateAnswers(raw any) ([]entity.AnsweredQuestion, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, &entity.ValidationError{Errors: []string{"user answers must be a list"}}
	}
	if len(list) == 0 {
		return nil, &entity.ValidationError{Errors: []string{"at least one answer is required"}}
	}

	var errs []string
	answers := make([]entity.AnsweredQuestion, 0, len(list))

	for i, item := range list {
		n := i + 1
		obj, ok := item.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("answer %d must be an object", n))
			continue
		}

		question, qErr := stringField(obj, "question", n)
		if qErr != "" {
			errs = append(errs, qErr)
		}

		answer, aErr := stringField(obj, "answer", n)
		if aErr != "" {
			errs = append(errs, aErr)
		} else if strings.TrimSpace(answer) == "" {
			errs = append(errs, fmt.Sprintf("answer %d cannot be empty", n))
		}

		if qErr == "" && aErr == "" {
			answers = append(answers, entity.AnsweredQuestion{
				Question: strings.TrimSpace(question),
				Answer:   strings.TrimSpace(answer),
			})
		}
	}

	if len(errs) > 0 {
		return nil, &entity.ValidationError{Errors: errs}
	}

	return answers, nil
}

func stringField(obj map[string]any, field string, n int) (string, string) {
	value, ok := obj[field]
	if !ok {
		return "", fmt.Sprintf("answer %d is missing required field '%s'", n, field)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Sprintf("answer %d field '%s' must be a string", n, field)
	}
	return s, ""
}
