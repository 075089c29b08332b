package normalizer

import "github.com/glowup/research-backend/internal/entity"

// DefaultQuestions returns the fixed question set used when live generation is
// unavailable or unparseable. Each call returns a fresh copy.
func DefaultQuestions() []entity.GeneratedQuestion {
	return []entity.GeneratedQuestion{
		{
			ID:       "industry",
			Question: "What industry does this problem belong to?",
			Type:     entity.QuestionTypeText,
			Required: true,
			Order:    1,
		},
		{
			ID:       "target_audience",
			Question: "Who is the primary target audience for this solution?",
			Type:     entity.QuestionTypeText,
			Required: true,
			Order:    2,
		},
		{
			ID:       "geographic_scope",
			Question: "What is the geographic scope of this market?",
			Type:     entity.QuestionTypeSelect,
			Required: true,
			Order:    3,
			Options:  []string{"Local", "Regional", "National", "Global"},
		},
		{
			ID:       "market_size",
			Question: "What is your estimated market size?",
			Type:     entity.QuestionTypeSelect,
			Required: true,
			Order:    4,
			Options:  []string{"Under $1M", "$1M-$10M", "$10M-$100M", "$100M-$1B", "Over $1B"},
		},
		{
			ID:       "urgency",
			Question: "How urgent is this problem for customers?",
			Type:     entity.QuestionTypeSelect,
			Required: true,
			Order:    5,
			Options:  []string{"Low", "Medium", "High", "Critical"},
		},
	}
}
