package formatter

import (
	"bytes"
	"fmt"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n", baseTitle)

	if doc.ProblemStatement != "" {
		fmt.Fprintf(&buf, "\n**Problem statement:** %s\n", doc.ProblemStatement)
	}

	for _, sec := range doc.Sections {
		fmt.Fprintf(&buf, "\n## %s\n", sec.Title)
		if sec.Body != "" {
			fmt.Fprintf(&buf, "\n%s\n", sec.Body)
		}
	}

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
