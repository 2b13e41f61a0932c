package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML shape of a starting board. It is read once at startup
// and never written back.
type SeedFile struct {
	Columns []SeedColumn `yaml:"columns"`
	Cards   []SeedCard   `yaml:"cards"`
}

// SeedColumn describes one column. Key defaults to the slug of Title.
type SeedColumn struct {
	Title string `yaml:"title"`
	Key   string `yaml:"key,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// SeedCard describes one card. ID is generated when empty.
type SeedCard struct {
	ID          string          `yaml:"id,omitempty"`
	Title       string          `yaml:"title"`
	Column      string          `yaml:"column"`
	Priority    models.Priority `yaml:"priority,omitempty"`
	Assignees   []string        `yaml:"assignees,omitempty"`
	Due         string          `yaml:"due,omitempty"`
	Description string          `yaml:"description,omitempty"`
	Lead        string          `yaml:"lead,omitempty"`
}

// InitialBoard returns the board a session starts from: the seed file when
// one is configured, the built-in seed otherwise
func (c *Config) InitialBoard(ids board.IDGenerator, today time.Time) (board.Board, error) {
	if c.Board.SeedFile == "" {
		return board.Seed(ids, today), nil
	}
	return LoadSeed(c.Board.SeedFile, ids)
}

// LoadSeed reads a seed file and builds a board from it
func LoadSeed(path string, ids board.IDGenerator) (board.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return board.Board{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data, ids)
}

// ParseSeed builds a board from seed YAML
func ParseSeed(data []byte, ids board.IDGenerator) (board.Board, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return board.Board{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	if ids == nil {
		ids = board.UUIDGenerator{}
	}

	columns := make([]models.Column, 0, len(seed.Columns))
	for _, sc := range seed.Columns {
		title := strings.TrimSpace(sc.Title)
		if title == "" {
			return board.Board{}, fmt.Errorf("%w: column without title", ErrInvalidSeed)
		}
		key := types.ColumnKey(sc.Key)
		if key == "" {
			key = board.ColumnKeyFor(title)
		}
		columns = append(columns, models.Column{
			Title:        title,
			Key:          key,
			HeadingColor: models.ParseColorToken(sc.Color),
		})
	}

	cards := make([]models.Card, 0, len(seed.Cards))
	for i, sc := range seed.Cards {
		title := strings.TrimSpace(sc.Title)
		if title == "" {
			return board.Board{}, fmt.Errorf("%w: card %d has no title", ErrInvalidSeed, i+1)
		}
		due, err := models.ParseDueDate(sc.Due)
		if err != nil {
			return board.Board{}, fmt.Errorf("%w: card %q: %w", ErrInvalidSeed, title, err)
		}
		id := types.CardID(sc.ID)
		if id == "" {
			id = ids.NextID()
		}
		assignees := sc.Assignees
		if assignees == nil {
			assignees = []string{}
		}
		cards = append(cards, models.Card{
			ID:          id,
			Title:       title,
			Column:      types.ColumnKey(sc.Column),
			Priority:    sc.Priority,
			Assignees:   assignees,
			DueDate:     due,
			Description: sc.Description,
			Status:      models.DefaultStatus,
			Lead:        sc.Lead,
		})
	}

	b, err := board.New(columns, cards, ids)
	if err != nil {
		return board.Board{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return b, nil
}
