package normalizer

import (
	"strings"

	"github.com/glowup/research-backend/internal/entity"
)

const (
	sectionMarker     = "## "
	FullReportSection = "Full Report"
)

// ExtractSections splits a report on "## " headings. Lines before the first heading
// are ignored and a repeated heading replaces the earlier body in place.
// Text without headings becomes a single "Full Report" section.
func ExtractSections(raw string) entity.Sections {
	var sections entity.Sections
	index := map[string]int{}
	current := -1
	var body []string

	flush := func() {
		if current >= 0 {
			sections[current].Body = strings.Join(body, "\n")
		}
		body = body[:0]
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, sectionMarker) {
			flush()
			title := strings.TrimSpace(strings.TrimPrefix(line, sectionMarker))
			if i, ok := index[title]; ok {
				current = i
			} else {
				sections = append(sections, entity.Section{Title: title})
				current = len(sections) - 1
				index[title] = current
			}
			continue
		}

		if current >= 0 && line != "" {
			body = append(body, line)
		}
	}
	flush()

	if len(sections) == 0 {
		return entity.Sections{{Title: FullReportSection, Body: raw}}
	}

	return sections
}
