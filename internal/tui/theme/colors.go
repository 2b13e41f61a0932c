package theme

import "github.com/thenoetrevino/swimlane/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent        string
	Subtle        string
	Normal        string
	Title         string
	Create        string
	Edit          string
	Delete        string
	ColumnBorder  string
	CardBorder    string
	CardBg        string
	DragBorder    string
	Indicator     string
	DiscardBorder string
	InfoFg        string
	InfoBg        string
	ErrorFg       string
	ErrorBg       string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Accent = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	ColumnBorder = scheme.ColumnBorder
	CardBorder = scheme.CardBorder
	CardBg = scheme.CardBackground
	DragBorder = scheme.DragBorder
	Indicator = scheme.Indicator
	DiscardBorder = scheme.DiscardBorder
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
