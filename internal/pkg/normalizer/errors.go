package normalizer

import "fmt"

type ParseErrorKind string

const (
	ParseNoArray     ParseErrorKind = "no_array"
	ParseInvalidJSON ParseErrorKind = "invalid_json"
	ParseEmpty       ParseErrorKind = "empty"
)

// ParseError reports why model output could not be turned into questions.
type ParseError struct {
	Kind ParseErrorKind
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse questions (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("parse questions (%s)", e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Err }
