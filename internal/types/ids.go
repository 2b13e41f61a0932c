package types

// ID types give the string identifiers used across the board their own names,
// so a card id can't be passed where a column key is expected.

// CardID identifies a card. It is globally unique and never changes after creation.
type CardID string

// ColumnKey identifies a column. It is the slug derived from the column title.
type ColumnKey string

// EndOfColumn is the slot identifier meaning "insert at the end of the column".
// No card ever carries this id.
const EndOfColumn CardID = "-1"

// IsEnd reports whether id is the end-of-column sentinel
func (id CardID) IsEnd() bool {
	return id == EndOfColumn
}

func (id CardID) String() string {
	return string(id)
}

func (k ColumnKey) String() string {
	return string(k)
}

// CardIDsFromStrings converts raw strings to card ids
func CardIDsFromStrings(ss []string) []CardID {
	ids := make([]CardID, len(ss))
	for i, s := range ss {
		ids[i] = CardID(s)
	}
	return ids
}
