package models

import (
	"fmt"
	"strings"
)

// Priority is the fixed four-level card priority
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

// Priorities lists every priority in display order
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

var priorityNames = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
	PriorityUrgent: "Urgent",
}

// priorityColors maps each priority to the flag color shown next to it
var priorityColors = map[Priority]string{
	PriorityLow:    "#737373",
	PriorityMedium: "#3B82F6",
	PriorityHigh:   "#F59E0B",
	PriorityUrgent: "#EF4444",
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// Valid reports whether p is one of the four known priorities
func (p Priority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

// Color returns the hex flag color for the priority
func (p Priority) Color() string {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return priorityColors[PriorityLow]
}

// ParsePriority maps a priority name (case-insensitive) to its value
func ParsePriority(s string) (Priority, error) {
	for p, name := range priorityNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return p, nil
		}
	}
	return PriorityLow, fmt.Errorf("%w: %q (must be: low, medium, high, urgent)", ErrInvalidPriority, s)
}

// MarshalYAML writes the priority as its name
func (p Priority) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// UnmarshalYAML reads a priority name
func (p *Priority) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText writes the priority as its name (used by encoding/json)
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
