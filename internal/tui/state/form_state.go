package state

import (
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// FormState holds the open huh forms and the values they edit in place
type FormState struct {
	// Add card form
	CardForm       *huh.Form
	FormCardColumn types.ColumnKey // Column the new card goes into
	FormCardTitle  string

	// Add column form
	ColumnForm      *huh.Form
	FormColumnTitle string
	FormColumnColor string // Palette token name

	// Edit card form
	EditForm        *huh.Form
	EditingCardID   types.CardID
	FormPriority    string
	FormAssignees   string // Comma separated
	FormDueDate     string // YYYY-MM-DD, empty clears
	FormDescription string

	// Values the edit form opened with, for change detection
	initialEdit editSnapshot
}

type editSnapshot struct {
	priority, assignees, due, description string
}

// NewFormState creates a new FormState with no open forms
func NewFormState() *FormState {
	return &FormState{}
}

// ResetCardForm closes the add card form and clears its values
func (s *FormState) ResetCardForm() {
	s.CardForm = nil
	s.FormCardColumn = ""
	s.FormCardTitle = ""
}

// ResetColumnForm closes the add column form and clears its values
func (s *FormState) ResetColumnForm() {
	s.ColumnForm = nil
	s.FormColumnTitle = ""
	s.FormColumnColor = string(models.ColorNeutral)
}

// LoadEditForm fills the edit form values from a card
func (s *FormState) LoadEditForm(card models.Card) {
	s.EditingCardID = card.ID
	s.FormPriority = strings.ToLower(card.Priority.String())
	s.FormAssignees = strings.Join(card.Assignees, ", ")
	s.FormDueDate = ""
	if card.HasDueDate() {
		s.FormDueDate = card.DueLabel()
	}
	s.FormDescription = card.Description
	s.initialEdit = s.snapshot()
}

// ResetEditForm closes the edit form and clears its values
func (s *FormState) ResetEditForm() {
	s.EditForm = nil
	s.EditingCardID = ""
	s.FormPriority = ""
	s.FormAssignees = ""
	s.FormDueDate = ""
	s.FormDescription = ""
	s.initialEdit = editSnapshot{}
}

// EditChanges lists the fields the user changed in the edit form, in
// priority, assignees, due date, description order
func (s *FormState) EditChanges() []string {
	now := s.snapshot()
	var changed []string
	if now.priority != s.initialEdit.priority {
		changed = append(changed, "priority")
	}
	if now.assignees != s.initialEdit.assignees {
		changed = append(changed, "assignees")
	}
	if now.due != s.initialEdit.due {
		changed = append(changed, "due_date")
	}
	if now.description != s.initialEdit.description {
		changed = append(changed, "description")
	}
	return changed
}

// HasEditChanges reports whether any edit form field differs from the card
func (s *FormState) HasEditChanges() bool {
	return len(s.EditChanges()) > 0
}

func (s *FormState) snapshot() editSnapshot {
	return editSnapshot{
		priority:    s.FormPriority,
		assignees:   strings.TrimSpace(s.FormAssignees),
		due:         strings.TrimSpace(s.FormDueDate),
		description: s.FormDescription,
	}
}
