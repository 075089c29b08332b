package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glowup/research-backend/internal/entity"
)

const baseTitle = "Market Research Report"

// Document is a report prepared for export.
type Document struct {
	ProblemStatement string
	Sections         entity.Sections
}

type Formatter interface {
	Format(doc Document) ([]byte, error)
	ContentType() string
	FileExtension() string
}

// ErrFormatUnavailable is returned for a known format this process cannot produce.
var ErrFormatUnavailable = errors.New("export format unavailable")

type FactoryOption func(*Factory)

// WithDOCX enables docx output. unioffice refuses to save documents until a license
// key has been loaded, so only enable it after that succeeded.
func WithDOCX() FactoryOption {
	return func(f *Factory) {
		f.docx = true
	}
}

type Factory struct {
	docx bool
}

func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Formats lists the formats Create can build, in display order.
func (f *Factory) Formats() []entity.ExportFormat {
	formats := []entity.ExportFormat{entity.FormatMarkdown, entity.FormatPDF}
	if f.docx {
		formats = append(formats, entity.FormatDOCX)
	}
	return formats
}

func (f *Factory) Create(format entity.ExportFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		if !f.docx {
			return nil, fmt.Errorf("%w: %s requires UNIOFFICE_LICENSE_KEY", ErrFormatUnavailable, format)
		}
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func bodyLines(body string) []string {
	if body == "" {
		return nil
	}
	return strings.Split(body, "\n")
}
