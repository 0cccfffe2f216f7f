package deck

import (
	"fmt"

	"slidedeck/table"
)

// Add routes a content value to the matching slide handler by its runtime
// shape: a table (raw, themed, or a bare matrix coerced with a warning), a
// plot image, or a single markdown string. Values outside that set fail
// with ErrUnsupportedInput before the handle is touched. When the subtitle
// argument is empty, the value's own annotation (table note, plot caption)
// is used instead.
func (w *Workbook) Add(v interface{}, title, subtitle string) (*Workbook, error) {
	if w == nil || w.pres == nil {
		return w, ErrInvalidWorkbook
	}

	switch content := v.(type) {
	case nil:
		return w, ErrNilContent

	case *table.Table:
		if content == nil {
			return w, ErrNilContent
		}
		return w.AddTable(table.Format(content, w.theme), title, fallback(subtitle, content.Note)), nil

	case *table.Themed:
		if content == nil {
			return w, ErrNilContent
		}
		return w.AddTable(content, title, fallback(subtitle, content.Note)), nil

	case [][]interface{}:
		t := table.FromMatrix(content)
		w.warnf("coercing %dx%d matrix to a table with generated column names", len(content), len(t.Columns))
		return w.AddTable(table.Format(t, w.theme), title, subtitle), nil

	case [][]string:
		t := table.FromStringMatrix(content)
		w.warnf("coercing %dx%d matrix to a table with generated column names", len(content), len(t.Columns))
		return w.AddTable(table.Format(t, w.theme), title, subtitle), nil

	case Plot:
		if len(content.Data) == 0 {
			return w, fmt.Errorf("%w: plot has no image data", ErrUnsupportedInput)
		}
		return w.AddPlot(content, title, fallback(subtitle, content.Caption)), nil

	case *Plot:
		if content == nil {
			return w, ErrNilContent
		}
		return w.Add(*content, title, subtitle)

	case string:
		return w.AddMarkdown(content, title, subtitle), nil

	case []string:
		// The text handler takes exactly one logical unit of text.
		return w, fmt.Errorf("%w: got %d strings, want exactly one", ErrUnsupportedInput, len(content))

	default:
		return w, fmt.Errorf("%w: %T", ErrUnsupportedInput, v)
	}
}

func fallback(s, alt string) string {
	if s == "" {
		return alt
	}
	return s
}
