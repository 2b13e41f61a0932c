package colors

// Kanagawa Wave palette entries used by the preset
const (
	sumiInk3    = "#1F1F28"
	sumiInk4    = "#2A2A37"
	sumiInk6    = "#54546D"
	fujiWhite   = "#DCD7BA"
	fujiGray    = "#727169"
	oniViolet   = "#957FB8"
	crystalBlue = "#7E9CD8"
	springGreen = "#98BB6C"
	peachRed    = "#FF5D62"
	waveAqua2   = "#7AA89F"
	dragonBlue  = "#658594"
	winterBlue  = "#252535"
	samuraiRed  = "#E82424"
	winterRed   = "#43242B"
)

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color
		Accent: oniViolet,

		// Semantic colors
		Create: springGreen,
		Edit:   crystalBlue,
		Delete: peachRed,

		// Board element colors
		ColumnBorder:   sumiInk6,
		CardBorder:     sumiInk4,
		CardBackground: sumiInk3,
		DragBorder:     waveAqua2,
		Indicator:      oniViolet,
		DiscardBorder:  sumiInk4,

		// Text colors
		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		// Notification colors
		InfoFg:  dragonBlue,
		InfoBg:  winterBlue,
		ErrorFg: samuraiRed,
		ErrorBg: winterRed,
	}
}
