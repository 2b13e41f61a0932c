package replay

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/swimlane/internal/cli"
	"gopkg.in/yaml.v3"
)

// DefaultCardHeight is the slot height used when a script lays out columns itself
const DefaultCardHeight = 100.0

// Script is a recorded sequence of drag protocol events and board commands
type Script struct {
	// CardHeight is the height of every slot when the runner lays out columns
	CardHeight float64 `yaml:"card_height"`

	// ManualLayout turns off automatic layout; slots come only from register steps
	ManualLayout bool `yaml:"manual_layout"`

	Steps []Step `yaml:"steps"`
}

// Step holds exactly one action
type Step struct {
	// Drag protocol
	Start    string        `yaml:"start,omitempty"`
	Over     *OverStep     `yaml:"over,omitempty"`
	Leave    string        `yaml:"leave,omitempty"`
	Drop     string        `yaml:"drop,omitempty"`
	Discard  bool          `yaml:"discard,omitempty"`
	End      bool          `yaml:"end,omitempty"`
	Register *RegisterStep `yaml:"register,omitempty"`

	// Commands
	AddCard   *AddCardStep   `yaml:"add_card,omitempty"`
	AddColumn *AddColumnStep `yaml:"add_column,omitempty"`
	Remove    string         `yaml:"remove,omitempty"`
	Move      *MoveStep      `yaml:"move,omitempty"`
	Edit      *EditStep      `yaml:"edit,omitempty"`
}

// OverStep is a pointer position over a column
type OverStep struct {
	Column string  `yaml:"column"`
	Y      float64 `yaml:"y"`
}

// RegisterStep records one slot extent
type RegisterStep struct {
	Column string  `yaml:"column"`
	Before string  `yaml:"before"`
	Top    float64 `yaml:"top"`
	Height float64 `yaml:"height"`
}

// AddCardStep creates a card
type AddCardStep struct {
	Column string `yaml:"column"`
	Title  string `yaml:"title"`
}

// AddColumnStep creates a column
type AddColumnStep struct {
	Title string `yaml:"title"`
	Color string `yaml:"color"`
}

// MoveStep moves a card directly
type MoveStep struct {
	Card   string `yaml:"card"`
	Before string `yaml:"before"`
	Column string `yaml:"column"`
}

// EditStep edits card fields. Nil fields are left alone.
type EditStep struct {
	Card        string  `yaml:"card"`
	Priority    *string `yaml:"priority,omitempty"`
	Assignees   *string `yaml:"assignees,omitempty"`
	Due         *string `yaml:"due,omitempty"`
	Description *string `yaml:"description,omitempty"`
}

// Action names the single action a step holds
func (s Step) Action() (string, error) {
	var actions []string
	add := func(set bool, name string) {
		if set {
			actions = append(actions, name)
		}
	}
	add(s.Start != "", "start")
	add(s.Over != nil, "over")
	add(s.Leave != "", "leave")
	add(s.Drop != "", "drop")
	add(s.Discard, "discard")
	add(s.End, "end")
	add(s.Register != nil, "register")
	add(s.AddCard != nil, "add_card")
	add(s.AddColumn != nil, "add_column")
	add(s.Remove != "", "remove")
	add(s.Move != nil, "move")
	add(s.Edit != nil, "edit")

	switch len(actions) {
	case 1:
		return actions[0], nil
	case 0:
		return "", fmt.Errorf("%w: step has no action", cli.ErrInvalidScript)
	default:
		return "", fmt.Errorf("%w: step has several actions %v", cli.ErrInvalidScript, actions)
	}
}

// ParseScript reads a script from YAML and checks every step
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("%w: %w", cli.ErrInvalidScript, err)
	}
	if s.CardHeight <= 0 {
		s.CardHeight = DefaultCardHeight
	}
	for i, step := range s.Steps {
		if _, err := step.Action(); err != nil {
			return Script{}, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return s, nil
}

// LoadScript reads a script file
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}
