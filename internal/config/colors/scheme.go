package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for titles and the status line)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation forms
	Edit   string `yaml:"edit"`   // Blue - edit forms
	Delete string `yaml:"delete"` // Red - discard target while hovered

	// Board element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	DragBorder     string `yaml:"drag_border"` // Card being dragged
	Indicator      string `yaml:"indicator"`   // Drop indicator line
	DiscardBorder  string `yaml:"discard_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	dst, src := c.values(), preset.values()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}

	dst, src := c.values(), other.values()
	for i := range dst {
		if *src[i] != "" {
			*dst[i] = *src[i]
		}
	}
}

// values lists every color field, preset excluded, in declaration order
func (c *ColorScheme) values() []*string {
	return []*string{
		&c.Accent,
		&c.Create, &c.Edit, &c.Delete,
		&c.ColumnBorder, &c.CardBorder, &c.CardBackground,
		&c.DragBorder, &c.Indicator, &c.DiscardBorder,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.ErrorFg, &c.ErrorBg,
	}
}
