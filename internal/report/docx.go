package report

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*•]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^(\d+)[.)]\s+(.+)$`)
)

// Document is the content of one exported report.
type Document struct {
	Title      string
	Subtitle   string
	Summary    string
	Transcript string
}

// render writes doc to outputPath. The summary is read as light markdown:
// headings, bullets, numbered items and **bold** runs.
func render(doc Document, outputPath string) error {
	d, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(d.AddParagraph(""), doc.Title, true, 16)
	if doc.Subtitle != "" {
		d.AddParagraph("").AddText(doc.Subtitle).Font(fontName).Size(fontSize - 2).Color("555555")
	}

	addStyledRun(d.AddParagraph(""), "Summary", true, 15)
	addMarkdown(d, doc.Summary)

	if strings.TrimSpace(doc.Transcript) != "" {
		addStyledRun(d.AddParagraph(""), "Transcript", true, 15)
		d.AddParagraph("").AddText(strings.TrimSpace(doc.Transcript)).Font(fontName).Size(fontSize).Color("000000")
	}

	return d.SaveTo(outputPath)
}

func addMarkdown(d *docx.RootDoc, markdown string) {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(d.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(d.AddParagraph(""), "• "+m[1])
			continue
		}

		if label, text, ok := numberedItem(trimmed); ok {
			p := d.AddParagraph("")
			p.AddText(label).Font(fontName).Size(fontSize).Color("000000").Bold(true)
			addRichText(p, text)
			continue
		}

		addRichText(d.AddParagraph(""), trimmed)
	}
}

// numberedItem splits "3. text" or "3) text" into a bold-able "3. " label and
// the item text.
func numberedItem(line string) (label, text string, ok bool) {
	m := reNumbered.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1] + ". ", m[2], true
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
