package entity

import (
	"bytes"
	"encoding/json"
)

type Section struct {
	Title string
	Body  string
}

// Sections keeps report sections in document order and marshals to a JSON object
// whose keys follow that order.
type Sections []Section

func (s Sections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sec := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sec.Title)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(sec.Body)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s Sections) Titles() []string {
	titles := make([]string, len(s))
	for i, sec := range s {
		titles[i] = sec.Title
	}
	return titles
}

type Report struct {
	ID       string
	RawText  string
	Sections Sections
}

type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatDOCX     ExportFormat = "docx"
	FormatPDF      ExportFormat = "pdf"
)

func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return true
	default:
		return false
	}
}
