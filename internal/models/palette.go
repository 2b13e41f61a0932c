package models

import (
	"strings"
	"time"
)

// ColorToken names one of the fixed column heading colors
type ColorToken string

const (
	ColorNeutral ColorToken = "neutral"
	ColorRed     ColorToken = "red"
	ColorYellow  ColorToken = "yellow"
	ColorGreen   ColorToken = "green"
	ColorBlue    ColorToken = "blue"
	ColorPurple  ColorToken = "purple"
	ColorEmerald ColorToken = "emerald"
	ColorPink    ColorToken = "pink"
)

// Swatch holds the display attributes of a color token
type Swatch struct {
	Heading string // Hex color for the column title
	Fill    string // Hex color for the picker dot and highlights
}

// Palette lists the selectable tokens in picker order
var Palette = []ColorToken{
	ColorNeutral, ColorRed, ColorYellow, ColorGreen,
	ColorBlue, ColorPurple, ColorEmerald, ColorPink,
}

var swatches = map[ColorToken]Swatch{
	ColorNeutral: {Heading: "#737373", Fill: "#737373"},
	ColorRed:     {Heading: "#EF4444", Fill: "#EF4444"},
	ColorYellow:  {Heading: "#FEF08A", Fill: "#EAB308"},
	ColorGreen:   {Heading: "#22C55E", Fill: "#22C55E"},
	ColorBlue:    {Heading: "#BFDBFE", Fill: "#3B82F6"},
	ColorPurple:  {Heading: "#A855F7", Fill: "#A855F7"},
	ColorEmerald: {Heading: "#A7F3D0", Fill: "#10B981"},
	ColorPink:    {Heading: "#EC4899", Fill: "#EC4899"},
}

// ParseColorToken maps a name to its token, falling back to neutral
func ParseColorToken(s string) ColorToken {
	token := ColorToken(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := swatches[token]; ok {
		return token
	}
	return ColorNeutral
}

// Swatch returns the display attributes of the token (neutral when unknown)
func (t ColorToken) Swatch() Swatch {
	if s, ok := swatches[t]; ok {
		return s
	}
	return swatches[ColorNeutral]
}

// ParseDueDate parses a YYYY-MM-DD date. An empty string clears the date.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &d, nil
}
