package models

// DateLayout is the format used for due dates in forms, seed files and output
const DateLayout = "2006-01-02"

// DefaultStatus is the status given to new cards
const DefaultStatus = "In Progress"

// MaxTitleLength caps card and column titles
const MaxTitleLength = 255
