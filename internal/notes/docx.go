package notes

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont     = "Calibri"
	docxBodySize = 11
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reOrdered = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// ExportDocx renders a note's markdown content into a styled Word document at
// outputPath. Horizontal rules become blank space; the metadata lines keep
// their bold labels.
func ExportDocx(content, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "" || trimmed == "---":
			continue

		case reHeading.MatchString(trimmed):
			m := reHeading.FindStringSubmatch(trimmed)
			addRun(doc.AddParagraph(""), stripInline(m[2]), true, headingSize(len(m[1])))

		case reBullet.MatchString(trimmed):
			m := reBullet.FindStringSubmatch(trimmed)
			addMixedText(doc.AddParagraph(""), "• "+m[1])

		case reOrdered.MatchString(trimmed):
			addMixedText(doc.AddParagraph(""), trimmed)

		default:
			addMixedText(doc.AddParagraph(""), trimmed)
		}
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 12
	default:
		return docxBodySize
	}
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(docxFont).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addMixedText splits a line on **bold** spans so emphasis survives the
// conversion.
func addMixedText(p *docx.Paragraph, text string) {
	plain := reBold.Split(text, -1)
	bolds := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range plain {
		if part != "" {
			addRun(p, stripInline(part), false, docxBodySize)
		}
		if i < len(bolds) {
			addRun(p, stripInline(bolds[i][1]), true, docxBodySize)
		}
	}
}

func stripInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
