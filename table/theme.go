package table

// EMU-per-inch conversion factor used for all slide geometry.
const EMUPerInch = 914400

// Theme carries the table styling configuration: fonts, the accent
// palette, border rule sizes and the total width budget the column
// allocation normalizes to. A Theme is set once at workbook construction
// and read by every formatting call.
type Theme struct {
	FontFamily string
	FontSize   int // body cell point size; headers render one point larger

	// Colors are ARGB hex strings in the engine's FFRRGGBB form.
	AccentColor    string // header top/bottom accent bars, closing rule
	HeaderFill     string // light header background
	HeaderText     string
	BodyText       string
	SeparatorColor string // thin rule under body rows
	NoteText       string // trailing subtitle paragraph

	// Geometry, in EMU.
	TotalWidth    int64 // width budget the column widths sum to
	HeaderHeight  int64
	RowHeight     int64
	AccentHeight  int64 // accent bar thickness
	RuleHeight    int64 // body separator thickness
	ClosingHeight int64 // heavier rule under the last body row
	CellPadding   int64 // horizontal inset applied inside each cell
}

// DefaultTheme returns the standard deck table theme.
func DefaultTheme() Theme {
	return Theme{
		FontFamily: "Calibri",
		FontSize:   10,

		AccentColor:    "FF3B82F6",
		HeaderFill:     "FFF8FAFC",
		HeaderText:     "FF1E40AF",
		BodyText:       "FF334155",
		SeparatorColor: "FFE2E8F0",
		NoteText:       "FF94A3B8",

		TotalWidth:    int64(9.2 * EMUPerInch),
		HeaderHeight:  int64(0.35 * EMUPerInch),
		RowHeight:     int64(0.28 * EMUPerInch),
		AccentHeight:  int64(0.03 * EMUPerInch),
		RuleHeight:    int64(0.01 * EMUPerInch),
		ClosingHeight: int64(0.025 * EMUPerInch),
		CellPadding:   int64(0.05 * EMUPerInch),
	}
}
