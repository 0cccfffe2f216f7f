package deck

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"slidedeck/logger"
	"slidedeck/table"
)

// Options configures a Workbook at construction time. The zero value is
// usable: no template, Calibri 10pt, no logging.
type Options struct {
	// TemplatePath points at an existing .pptx used as the deck base;
	// new slides append after the template's slides.
	TemplatePath string

	// FontFamily and FontSize feed every table-theming call made through
	// this workbook. Defaults: "Calibri", 10.
	FontFamily string
	FontSize   int

	// Log receives coercion warnings and build trace lines when set.
	Log *logger.Logger
}

const (
	defaultFontFamily = "Calibri"
	defaultFontSize   = 10
)

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.FontFamily == "" {
		o.FontFamily = defaultFontFamily
	}
	if o.FontSize == 0 {
		o.FontSize = defaultFontSize
	}
	return o
}

// Validate checks the options after defaulting.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.FontFamily, validation.Required),
		validation.Field(&o.FontSize, validation.Min(1), validation.Max(96)),
	)
}

// theme builds the table theme carrying the workbook's font settings.
func (o Options) theme() table.Theme {
	t := table.DefaultTheme()
	t.FontFamily = o.FontFamily
	t.FontSize = o.FontSize
	return t
}
