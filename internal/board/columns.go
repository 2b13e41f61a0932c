package board

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// AddColumn appends a new column. The key is derived from the title and must
// not collide with an existing column; the display title is title-cased.
func (b Board) AddColumn(title string, color models.ColorToken) (Board, models.Column, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return b, models.Column{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return b, models.Column{}, ErrTitleTooLong
	}

	key := ColumnKeyFor(title)
	if b.HasColumn(key) {
		return b, models.Column{}, fmt.Errorf("%w: %s", ErrDuplicateColumn, key)
	}

	col := models.Column{
		Title:        TitleCase(title),
		Key:          key,
		HeadingColor: models.ParseColorToken(string(color)),
	}

	columns := make([]models.Column, 0, len(b.columns)+1)
	columns = append(columns, b.columns...)
	columns = append(columns, col)

	return b.withColumns(columns), col, nil
}

// ColumnKeyFor derives a column key from a title: lowercased with spaces replaced by dashes
func ColumnKeyFor(title string) types.ColumnKey {
	return types.ColumnKey(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-"))
}

// TitleCase lowercases s and capitalizes the first letter of every space-separated word
func TitleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
