// Package deck exposes a mutable Workbook handle that turns tables, plot
// images and markdown text into slides of a PowerPoint deck, delegating
// document construction to GoPPT.
package deck

import (
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"slidedeck/markdown"
	"slidedeck/table"
)

// Slide layout constants, 16:9 widescreen.
const (
	emuPerInch = table.EMUPerInch

	marginLeft   = int64(0.4 * emuPerInch)
	contentTop   = int64(1.0 * emuPerInch)
	contentWidth = int64(9.2 * emuPerInch)
	slideWidth   = int64(10.0 * emuPerInch)
	slideHeight  = int64(5.625 * emuPerInch)
	subtitleTop  = int64(5.2 * emuPerInch)

	fontTitle    = 36
	fontKind     = 20
	fontHeading  = 28
	fontBody     = 14
	fontSmall    = 12
	fontSubtitle = 12
)

// Slide chrome palette (ARGB).
const (
	accentColor  = "FF3B82F6"
	headingColor = "FF1E40AF"
	subtleColor  = "FF475569"
	bodyColor    = "FF334155"
	mutedColor   = "FF94A3B8"
)

// Workbook wraps one presentation document under construction. It is
// exclusively owned by one caller and mutated sequentially; every
// slide-adding operation returns the workbook itself for chaining.
type Workbook struct {
	pres  *ppt.Presentation
	opts  Options
	theme table.Theme

	// blankUsed records whether the engine's initial empty slide has been
	// consumed by a slide-adding operation.
	blankUsed bool
}

// New constructs a workbook, optionally on top of a template deck.
func New(opts Options) (*Workbook, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workbook options: %w", err)
	}

	w := &Workbook{opts: opts, theme: opts.theme()}

	if opts.TemplatePath != "" {
		reader := &ppt.PPTXReader{}
		pres, err := reader.Read(opts.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open template: %w", err)
		}
		w.pres = pres
		w.blankUsed = true
		return w, nil
	}

	w.pres = ppt.New()
	w.pres.GetDocumentProperties().Creator = "slidedeck"
	return w, nil
}

// Theme returns the table theme carrying this workbook's font settings.
func (w *Workbook) Theme() table.Theme {
	return w.theme
}

// SlideCount reports the number of slides currently in the document.
func (w *Workbook) SlideCount() int {
	return len(w.pres.GetAllSlides())
}

// AddTitleSlide appends a title-layout slide with four text placeholders:
// deck kind, title, author and date. Empty arguments become a single-space
// placeholder; the engine rejects zero-length text.
func (w *Workbook) AddTitleSlide(kind, title, author, date string) *Workbook {
	slide := w.nextSlide()

	w.bar(slide, 0, 0, slideWidth, int64(0.15*emuPerInch), accentColor)

	w.centeredText(slide, orBlank(kind), int64(1.2*emuPerInch), int64(0.5*emuPerInch), fontKind, false, subtleColor)
	w.centeredText(slide, orBlank(title), int64(1.9*emuPerInch), int64(1.0*emuPerInch), fontTitle, true, headingColor)
	w.centeredText(slide, orBlank(author), int64(3.4*emuPerInch), int64(0.45*emuPerInch), fontBody, false, bodyColor)
	w.centeredText(slide, orBlank(date), int64(4.0*emuPerInch), int64(0.4*emuPerInch), fontSmall, false, mutedColor)

	w.bar(slide, 0, int64(5.5*emuPerInch), slideWidth, int64(0.125*emuPerInch), accentColor)
	w.logSlide("title", title)
	return w
}

// AddTable appends a content slide holding a themed table: slide header,
// table grid, trailing subtitle.
func (w *Workbook) AddTable(t *table.Themed, title, subtitle string) *Workbook {
	slide := w.contentSlide(title)
	w.drawTable(slide, t)
	w.addSubtitle(slide, subtitle)
	w.logSlide("table", title)
	return w
}

// AddPlot appends a content slide with the rendered plot image filling the
// content region.
func (w *Workbook) AddPlot(p Plot, title, subtitle string) *Workbook {
	slide := w.contentSlide(title)

	if len(p.Data) > 0 {
		img := slide.CreateDrawingShape()
		img.SetImageData(p.Data, p.MIME)
		img.SetOffsetX(int64(0.5 * emuPerInch)).SetOffsetY(contentTop)
		img.SetWidth(int64(9.0 * emuPerInch)).SetHeight(int64(4.0 * emuPerInch))
	}

	w.addSubtitle(slide, subtitle)
	w.logSlide("plot", title)
	return w
}

// AddMarkdown appends a content slide rendering markdown source as styled
// paragraphs: headings, bullets and plain body text.
func (w *Workbook) AddMarkdown(src, title, subtitle string) *Workbook {
	slide := w.contentSlide(title)

	content := slide.CreateRichTextShape()
	content.SetOffsetX(marginLeft).SetOffsetY(contentTop)
	content.SetWidth(contentWidth).SetHeight(int64(4.0 * emuPerInch))

	for i, block := range markdown.Parse(src) {
		if i > 0 {
			content.CreateParagraph()
		}

		text := block.Text
		if block.Bullet {
			text = "• " + text
		}
		if text == "" {
			tr := content.CreateTextRun(" ")
			tr.GetFont().SetSize(6)
			continue
		}

		tr := content.CreateTextRun(text)
		switch {
		case block.Level == 1:
			w.font(tr, 18, true, headingColor)
		case block.Level == 2:
			w.font(tr, 16, true, accentColor)
		case block.Level >= 3:
			w.font(tr, fontBody, true, subtleColor)
		default:
			w.font(tr, fontBody, false, bodyColor)
		}
	}

	w.addSubtitle(slide, subtitle)
	w.logSlide("markdown", title)
	return w
}

// nextSlide consumes the engine's initial blank slide first, then appends.
func (w *Workbook) nextSlide() *ppt.Slide {
	if !w.blankUsed {
		w.blankUsed = true
		return w.pres.GetActiveSlide()
	}
	return w.pres.CreateSlide()
}

// contentSlide appends a slide with the standard header: a thin accent bar
// and the slide title.
func (w *Workbook) contentSlide(title string) *ppt.Slide {
	slide := w.nextSlide()

	w.bar(slide, 0, 0, slideWidth, int64(0.08*emuPerInch), accentColor)

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(0.3 * emuPerInch))
	titleShape.SetWidth(contentWidth).SetHeight(int64(0.6 * emuPerInch))
	tr := titleShape.CreateTextRun(orBlank(title))
	w.font(tr, fontHeading, true, headingColor)

	return slide
}

// drawTable lays the themed table out as a grid of positioned shapes:
// accent bars above and below a filled header row, one text shape per
// cell, thin rules between body rows and a heavier accent rule closing the
// last row.
func (w *Workbook) drawTable(slide *ppt.Slide, t *table.Themed) {
	th := t.Theme
	y := contentTop

	w.bar(slide, marginLeft, y, th.TotalWidth, th.AccentHeight, th.AccentColor)
	y += th.AccentHeight

	headerBG := slide.CreateRichTextShape()
	headerBG.SetOffsetX(marginLeft).SetOffsetY(y)
	headerBG.SetWidth(th.TotalWidth).SetHeight(th.HeaderHeight)
	headerBG.SetFill(solidFill(th.HeaderFill))

	x := marginLeft
	for _, col := range t.Columns {
		w.cellText(slide, x, y, col.Width, th.HeaderHeight, th, col.Title, th.FontSize+1, true, th.HeaderText, col.Centered)
		x += col.Width
	}
	y += th.HeaderHeight

	w.bar(slide, marginLeft, y, th.TotalWidth, th.AccentHeight, th.AccentColor)
	y += th.AccentHeight

	for r, row := range t.Cells {
		x = marginLeft
		for c, col := range t.Columns {
			w.cellText(slide, x, y, col.Width, th.RowHeight, th, row[c], th.FontSize, false, th.BodyText, col.Centered)
			x += col.Width
		}
		y += th.RowHeight

		if r == len(t.Cells)-1 {
			w.bar(slide, marginLeft, y, th.TotalWidth, th.ClosingHeight, th.AccentColor)
			y += th.ClosingHeight
		} else {
			w.bar(slide, marginLeft, y, th.TotalWidth, th.RuleHeight, th.SeparatorColor)
			y += th.RuleHeight
		}
	}
}

// cellText places one table cell's text, inset by the theme padding.
func (w *Workbook) cellText(slide *ppt.Slide, x, y, width, height int64, th table.Theme, text string, size int, bold bool, color string, centered bool) {
	if text == "" {
		return
	}

	cell := slide.CreateRichTextShape()
	cell.SetOffsetX(x + th.CellPadding).SetOffsetY(y)
	cell.SetWidth(width - 2*th.CellPadding).SetHeight(height)

	tr := cell.CreateTextRun(text)
	w.font(tr, size, bold, color)
	if centered {
		alignCenter(cell.GetActiveParagraph())
	}
}

// addSubtitle appends the trailing subtitle text near the slide bottom.
func (w *Workbook) addSubtitle(slide *ppt.Slide, subtitle string) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(marginLeft).SetOffsetY(subtitleTop)
	shape.SetWidth(contentWidth).SetHeight(int64(0.3 * emuPerInch))

	tr := shape.CreateTextRun(orBlank(subtitle))
	w.font(tr, fontSubtitle, false, w.theme.NoteText)
}

// centeredText places one centered text box spanning the content width.
func (w *Workbook) centeredText(slide *ppt.Slide, text string, y, height int64, size int, bold bool, color string) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(marginLeft).SetOffsetY(y)
	shape.SetWidth(contentWidth).SetHeight(height)

	tr := shape.CreateTextRun(text)
	w.font(tr, size, bold, color)
	alignCenter(shape.GetActiveParagraph())
}

// bar draws a solid filled rectangle, used for accent bars and row rules.
func (w *Workbook) bar(slide *ppt.Slide, x, y, width, height int64, argb string) {
	s := slide.CreateRichTextShape()
	s.SetOffsetX(x).SetOffsetY(y)
	s.SetWidth(width).SetHeight(height)
	s.SetFill(solidFill(argb))
}

// font applies the workbook font family plus per-run styling.
func (w *Workbook) font(tr *ppt.TextRun, size int, bold bool, argb string) {
	f := tr.GetFont()
	f.SetName(w.opts.FontFamily)
	f.SetSize(size).SetBold(bold).SetColor(ppt.NewColor(argb))
}

// warnf reports a non-fatal condition on the workbook's log, when present.
func (w *Workbook) warnf(format string, args ...interface{}) {
	if w.opts.Log != nil {
		w.opts.Log.Warnf(format, args...)
	}
}

// logSlide records an appended slide on the workbook's log, when present.
func (w *Workbook) logSlide(kind, title string) {
	if w.opts.Log != nil {
		w.opts.Log.Slidef(kind, title)
	}
}

// orBlank substitutes the single-space placeholder for empty text; the
// engine rejects zero-length placeholder strings.
func orBlank(s string) string {
	if s == "" {
		return " "
	}
	return s
}

func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}
