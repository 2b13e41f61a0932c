package colors

// Default returns the default scheme: a dark neutral board with violet drop
// indicators and a red discard target
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#A78BFA",

		Create: "#22C55E",
		Edit:   "#3B82F6",
		Delete: "#EF4444",

		ColumnBorder:   "#404040",
		CardBorder:     "#525252",
		CardBackground: "#262626",
		DragBorder:     "#C4B5FD",
		Indicator:      "#A78BFA",
		DiscardBorder:  "#737373",

		Title:  "#FAFAFA",
		Subtle: "#A3A3A3",
		Normal: "#F5F5F5",

		InfoFg:  "#EDE9FE",
		InfoBg:  "#4C1D95",
		ErrorFg: "#FEE2E2",
		ErrorBg: "#991B1B",
	}
}
