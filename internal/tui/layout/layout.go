// Package layout measures where every column, card and drop slot of a board
// lands on screen. The renderer draws from the same Geometry the mouse
// handlers hit-test against, so a pointer row maps to exactly the slot the
// user sees.
package layout

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/slots"
	"github.com/thenoetrevino/swimlane/internal/types"
)

const (
	BoardTop = 1 // rows above the board (title bar)

	ColumnInnerWidth = 26                   // content width inside a column's border and padding
	ColumnWidth      = ColumnInnerWidth + 4 // border(2) + padding(2)
	ColumnGap        = 1

	CardTextWidth = ColumnInnerWidth - 4 // card border(2) + padding(2)
	CardMetaRows  = 2                    // priority/due line, assignees line

	DiscardInnerWidth = 18
	DiscardWidth      = DiscardInnerWidth + 4
	DiscardHeight     = 7

	// rows inside a column besides the cards: heading, trailing indicator, add hint
	columnFixedRows = 3
)

// Rect is a screen rectangle in terminal cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CardBox is one card's place inside its column
type CardBox struct {
	ID        types.CardID
	Indicator int  // screen row of the drop indicator drawn above the card
	Box       Rect // the card's bordered box
	Title     []string
}

// Rows is the height of the card's slot: its indicator plus its box
func (c CardBox) Rows() int {
	return 1 + c.Box.H
}

// ColumnBox is one column's place on screen
type ColumnBox struct {
	Column       models.Column
	Box          Rect
	Cards        []CardBox
	EndIndicator int // screen row of the trailing drop indicator
}

// Geometry is the measured layout of a whole board
type Geometry struct {
	Columns []ColumnBox
	Discard Rect
}

// WrapTitle breaks a card title into lines that fit the card's text width.
// Words longer than the width are split.
func WrapTitle(title string) []string {
	wrapped := wrap.String(wordwrap.String(title, CardTextWidth), CardTextWidth)
	return strings.Split(wrapped, "\n")
}

// Measure lays out b for a board area height rows tall. Columns grow past
// height when their cards need more room.
func Measure(b board.Board, height int) Geometry {
	var g Geometry

	for i, col := range b.Columns() {
		x := i * (ColumnWidth + ColumnGap)
		cb := ColumnBox{Column: col}

		// border, then heading
		row := BoardTop + 2
		for _, c := range b.CardsInColumn(col.Key) {
			title := WrapTitle(c.Title)
			box := CardBox{
				ID:        c.ID,
				Indicator: row,
				Box: Rect{
					X: x + 2,
					Y: row + 1,
					W: ColumnInnerWidth,
					H: 2 + len(title) + CardMetaRows,
				},
				Title: title,
			}
			cb.Cards = append(cb.Cards, box)
			row += box.Rows()
		}
		cb.EndIndicator = row

		contentRows := row - (BoardTop + 1) + columnFixedRows - 1
		cb.Box = Rect{X: x, Y: BoardTop, W: ColumnWidth, H: max(contentRows+2, height)}
		g.Columns = append(g.Columns, cb)
	}

	g.Discard = Rect{
		X: len(g.Columns) * (ColumnWidth + ColumnGap),
		Y: BoardTop,
		W: DiscardWidth,
		H: DiscardHeight,
	}
	return g
}

// ContentRows is the number of lines between the column's borders
func (c ColumnBox) ContentRows() int {
	return c.Box.H - 2
}

// Column returns the box of the column with the given key
func (g Geometry) Column(key types.ColumnKey) (ColumnBox, bool) {
	for _, c := range g.Columns {
		if c.Column.Key == key {
			return c, true
		}
	}
	return ColumnBox{}, false
}

// ColumnAt returns the column under the cell (x, y)
func (g Geometry) ColumnAt(x, y int) (types.ColumnKey, bool) {
	for _, c := range g.Columns {
		if c.Box.Contains(x, y) {
			return c.Column.Key, true
		}
	}
	return "", false
}

// CardAt returns the card whose box holds the cell (x, y)
func (g Geometry) CardAt(x, y int) (types.CardID, types.ColumnKey, bool) {
	for _, c := range g.Columns {
		if !c.Box.Contains(x, y) {
			continue
		}
		for _, card := range c.Cards {
			if card.Box.Contains(x, y) {
				return card.ID, c.Column.Key, true
			}
		}
	}
	return "", "", false
}

// InDiscard reports whether the cell (x, y) is over the discard target
func (g Geometry) InDiscard(x, y int) bool {
	return g.Discard.Contains(x, y)
}

// Width is the total width of the board including the discard target
func (g Geometry) Width() int {
	return g.Discard.X + g.Discard.W
}

// PointerY converts a screen row to the vertical position the locator
// works in: the middle of the row, in layout units
func PointerY(row int, rowUnits float64) float64 {
	return float64(row)*rowUnits + rowUnits/2
}

// Register replaces every column's slots in reg with the measured ones: a slot
// per card spanning its indicator and box, then the trailing end slot
func (g Geometry) Register(reg *slots.Registry, rowUnits float64) {
	reg.ResetAll()
	for _, c := range g.Columns {
		for _, card := range c.Cards {
			reg.Register(c.Column.Key, card.ID, slots.Extent{
				Top:    float64(card.Indicator) * rowUnits,
				Height: float64(card.Rows()) * rowUnits,
			})
		}
		end := c.Box.Y + c.Box.H - c.EndIndicator
		reg.Register(c.Column.Key, types.EndOfColumn, slots.Extent{
			Top:    float64(c.EndIndicator) * rowUnits,
			Height: float64(max(end, 1)) * rowUnits,
		})
	}
}
