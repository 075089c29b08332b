package entity

type QuestionType string

const (
	QuestionTypeText   QuestionType = "text"
	QuestionTypeSelect QuestionType = "select"
)

// GeneratedQuestion is a clarifying question shown to the user.
// Options is nil unless Type is select; a select question may carry an empty list.
type GeneratedQuestion struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Required bool         `json:"required"`
	Order    int          `json:"order"`
	Options  []string     `json:"options"`
}

// AnsweredQuestion is a user answer used as report input.
type AnsweredQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
