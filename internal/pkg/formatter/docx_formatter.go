package formatter

import (
	"bytes"

	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (df *DOCXFormatter) Format(doc Document) ([]byte, error) {
	d := document.New()
	defer d.Close()

	titlePar := d.AddParagraph()
	titlePar.SetStyle("Title")
	titlePar.AddRun().AddText(baseTitle)

	if doc.ProblemStatement != "" {
		par := d.AddParagraph()
		label := par.AddRun()
		label.Properties().SetBold(true)
		label.AddText("Problem statement: ")
		par.AddRun().AddText(doc.ProblemStatement)
	}

	for _, sec := range doc.Sections {
		heading := d.AddParagraph()
		heading.SetStyle("Heading1")
		heading.AddRun().AddText(sec.Title)

		for _, line := range bodyLines(sec.Body) {
			d.AddParagraph().AddRun().AddText(line)
		}
	}

	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
