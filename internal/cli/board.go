package cli

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/cli/styles"
	"github.com/thenoetrevino/swimlane/internal/models"
)

// CardView is the printable form of a card
type CardView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Column      string   `json:"column"`
	Priority    string   `json:"priority"`
	Assignees   []string `json:"assignees"`
	Due         string   `json:"due,omitempty"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Lead        string   `json:"lead,omitempty"`
}

// ColumnView is the printable form of a column and its cards in order
type ColumnView struct {
	Key   string     `json:"key"`
	Title string     `json:"title"`
	Color string     `json:"color"`
	Cards []CardView `json:"cards"`
}

// BoardView is the printable form of a whole board
type BoardView struct {
	Columns []ColumnView `json:"columns"`
}

// NewCardView converts a card for output
func NewCardView(c models.Card) CardView {
	v := CardView{
		ID:          string(c.ID),
		Title:       c.Title,
		Column:      string(c.Column),
		Priority:    c.Priority.String(),
		Assignees:   c.Assignees,
		Description: c.Description,
		Status:      c.Status,
		Lead:        c.Lead,
	}
	if v.Assignees == nil {
		v.Assignees = []string{}
	}
	if c.HasDueDate() {
		v.Due = c.DueLabel()
	}
	return v
}

// GetID returns the card id (used by quiet output)
func (v CardView) GetID() string {
	return v.ID
}

// NewBoardView converts a board for output
func NewBoardView(b board.Board) BoardView {
	view := BoardView{Columns: make([]ColumnView, 0, len(b.Columns()))}
	for _, col := range b.Columns() {
		cv := ColumnView{
			Key:   string(col.Key),
			Title: col.Title,
			Color: string(col.HeadingColor),
			Cards: []CardView{},
		}
		for _, c := range b.CardsInColumn(col.Key) {
			cv.Cards = append(cv.Cards, NewCardView(c))
		}
		view.Columns = append(view.Columns, cv)
	}
	return view
}

// IDs lists every card id, column by column
func (v BoardView) IDs() []string {
	var ids []string
	for _, col := range v.Columns {
		for _, c := range col.Cards {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// String renders the board for humans, one column per block
func (v BoardView) String() string {
	var sb strings.Builder
	for i, col := range v.Columns {
		if i > 0 {
			sb.WriteString("\n")
		}
		heading := models.Column{Title: col.Title, HeadingColor: models.ColorToken(col.Color)}
		sb.WriteString(styles.RenderColumnHeading(heading, len(col.Cards)))
		sb.WriteString("\n")
		if len(col.Cards) == 0 {
			sb.WriteString("  (empty)\n")
			continue
		}
		for _, c := range col.Cards {
			p, _ := models.ParsePriority(c.Priority)
			due := c.Due
			if due == "" {
				due = "-"
			}
			fmt.Fprintf(&sb, "  %-8s %s  %s  %s  %s\n",
				c.ID,
				c.Title,
				styles.RenderPriority(p),
				strings.Join(c.Assignees, ", "),
				due,
			)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
