package exporter

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/nguyentantai21042004/meeting-scribe/internal/transcript"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// transcriptToDocx renders the cleaned transcript, one docx paragraph per
// line, with speaker labels in bold. Blank lines are dropped.
func transcriptToDocx(title, text, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		p := doc.AddParagraph("")
		if label, rest, ok := transcript.SpeakerLabel(trimmed); ok {
			addRun(p, label, true, fontSize)
			if rest != "" {
				addRun(p, rest, false, fontSize)
			}
			continue
		}
		addRun(p, trimmed, false, fontSize)
	}

	return doc.SaveTo(outputPath)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
