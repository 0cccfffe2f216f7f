package deck

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// Write serializes the current document to a stream in PowerPoint 2007
// (pptx) format.
func (w *Workbook) Write(out io.Writer) error {
	if w == nil || w.pres == nil {
		return ErrInvalidWorkbook
	}

	writer, err := ppt.NewWriter(w.pres, ppt.WriterPowerPoint2007)
	if err != nil {
		return fmt.Errorf("failed to create PPT writer: %w", err)
	}
	if err := writer.(*ppt.PPTXWriter).WriteTo(out); err != nil {
		return fmt.Errorf("failed to save PPT: %w", err)
	}
	return nil
}

// Save serializes the current document to a file. A workbook whose Save
// failed should be discarded.
func (w *Workbook) Save(path string) error {
	var buf bytes.Buffer
	if err := w.Write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write PPT file: %w", err)
	}
	return nil
}

// SlideSummary is the extracted text of one slide: its first non-empty
// text fragment as the title, the rest as body texts.
type SlideSummary struct {
	Title string
	Texts []string
}

// DeckPreview summarizes a written deck.
type DeckPreview struct {
	SlideCount int
	Slides     []SlideSummary
}

// Preview reads a written deck back and returns a per-slide text summary
// for up to maxSlides slides (all slides when maxSlides <= 0).
func Preview(path string, maxSlides int) (*DeckPreview, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPT file: %w", err)
	}

	slides := pres.GetAllSlides()
	preview := &DeckPreview{SlideCount: len(slides)}

	if maxSlides <= 0 || maxSlides > len(slides) {
		maxSlides = len(slides)
	}

	for i := 0; i < maxSlides; i++ {
		summary := SlideSummary{}
		for _, shape := range slides[i].GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
				if summary.Title == "" {
					summary.Title = text
				} else {
					summary.Texts = append(summary.Texts, text)
				}
			}
		}
		preview.Slides = append(preview.Slides, summary)
	}

	return preview, nil
}
