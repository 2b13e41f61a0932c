package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/huhforms"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
	"github.com/thenoetrevino/swimlane/internal/types"
)

const descriptionLines = 10

// formConfig holds configuration for generic form handling
type formConfig struct {
	form       *huh.Form
	setForm    func(*huh.Form)
	clearForm  func()
	onComplete func() // Called when form completes successfully
}

// ============================================================================
// OPENING FORMS
// ============================================================================

// OpenAddCardForm opens the add card form for a column
func OpenAddCardForm(m *tui.Model, column types.ColumnKey) tea.Cmd {
	col, ok := m.App.Board().Column(column)
	if !ok {
		return nil
	}

	m.FormState.ResetCardForm()
	m.FormState.FormCardColumn = column
	m.FormState.CardForm = huhforms.CreateCardForm(col.Title, &m.FormState.FormCardTitle).
		WithTheme(huhforms.Theme(m.Config.ColorScheme, huhforms.ForCreate))
	m.UiState.SetMode(state.AddCardMode)
	return m.FormState.CardForm.Init()
}

// OpenAddColumnForm opens the add column form
func OpenAddColumnForm(m *tui.Model) tea.Cmd {
	m.FormState.ResetColumnForm()
	m.FormState.ColumnForm = huhforms.CreateColumnForm(
		&m.FormState.FormColumnTitle,
		&m.FormState.FormColumnColor,
	).WithTheme(huhforms.Theme(m.Config.ColorScheme, huhforms.ForCreate))
	m.UiState.SetMode(state.AddColumnMode)
	return m.FormState.ColumnForm.Init()
}

// OpenEditCardForm opens the edit form for a card
func OpenEditCardForm(m *tui.Model, id types.CardID) tea.Cmd {
	card, ok := m.App.Card(id)
	if !ok {
		return nil
	}

	m.FormState.ResetEditForm()
	m.FormState.LoadEditForm(card)
	m.FormState.EditForm = huhforms.CreateEditCardForm(
		card.Title,
		&m.FormState.FormPriority,
		&m.FormState.FormAssignees,
		&m.FormState.FormDueDate,
		&m.FormState.FormDescription,
		descriptionLines,
	).WithTheme(huhforms.Theme(m.Config.ColorScheme, huhforms.ForEdit))
	m.UiState.SetMode(state.EditCardMode)
	return m.FormState.EditForm.Init()
}

// ============================================================================
// FORM MODE HANDLERS
// ============================================================================

// HandleFormMode routes every message to the open form.
// Forms need ALL messages, not just KeyMsg, so this runs before key dispatch.
func HandleFormMode(m *tui.Model, msg tea.Msg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.AddCardMode:
		return UpdateCardForm(m, msg)
	case state.AddColumnMode:
		return UpdateColumnForm(m, msg)
	case state.EditCardMode:
		return UpdateEditForm(m, msg)
	}
	return nil
}

// UpdateCardForm handles all messages when in AddCardMode
func UpdateCardForm(m *tui.Model, msg tea.Msg) tea.Cmd {
	if isEsc(msg) {
		m.FormState.ResetCardForm()
		m.UiState.SetMode(state.NormalMode)
		return tea.ClearScreen
	}

	return handleFormUpdate(m, msg, formConfig{
		form:      m.FormState.CardForm,
		setForm:   func(f *huh.Form) { m.FormState.CardForm = f },
		clearForm: m.FormState.ResetCardForm,
		onComplete: func() {
			card, err := m.App.AddCard(m.FormState.FormCardColumn, m.FormState.FormCardTitle)
			if reportError(m, "add card", err) {
				return
			}
			m.UiState.Focus(card.Column, card.ID)
		},
	})
}

// UpdateColumnForm handles all messages when in AddColumnMode
func UpdateColumnForm(m *tui.Model, msg tea.Msg) tea.Cmd {
	if isEsc(msg) {
		m.FormState.ResetColumnForm()
		m.UiState.SetMode(state.NormalMode)
		return tea.ClearScreen
	}

	return handleFormUpdate(m, msg, formConfig{
		form:      m.FormState.ColumnForm,
		setForm:   func(f *huh.Form) { m.FormState.ColumnForm = f },
		clearForm: m.FormState.ResetColumnForm,
		onComplete: func() {
			col, err := m.App.CreateColumn(m.FormState.FormColumnTitle, m.FormState.FormColumnColor)
			if reportError(m, "add column", err) {
				return
			}
			m.UiState.Focus(col.Key, "")
		},
	})
}

// UpdateEditForm handles all messages when in EditCardMode. Each changed
// field is applied as its own update.
func UpdateEditForm(m *tui.Model, msg tea.Msg) tea.Cmd {
	if isEsc(msg) {
		m.FormState.ResetEditForm()
		m.UiState.SetMode(state.NormalMode)
		return tea.ClearScreen
	}

	return handleFormUpdate(m, msg, formConfig{
		form:      m.FormState.EditForm,
		setForm:   func(f *huh.Form) { m.FormState.EditForm = f },
		clearForm: m.FormState.ResetEditForm,
		onComplete: func() {
			fs := m.FormState
			id := fs.EditingCardID
			for _, field := range fs.EditChanges() {
				var err error
				switch field {
				case "priority":
					err = m.App.EditPriority(id, fs.FormPriority)
				case "assignees":
					err = m.App.EditAssignees(id, fs.FormAssignees)
				case "due_date":
					err = m.App.EditDueDate(id, fs.FormDueDate)
				case "description":
					err = m.App.EditDescription(id, fs.FormDescription)
				}
				if reportError(m, "edit "+field, err) {
					return
				}
			}
		},
	})
}

// handleFormUpdate processes form messages generically
func handleFormUpdate(m *tui.Model, msg tea.Msg, cfg formConfig) tea.Cmd {
	if cfg.form == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	// Forward to form
	model, cmd := cfg.form.Update(msg)
	form := model.(*huh.Form)
	cfg.setForm(form)

	// Check completion
	if form.State == huh.StateCompleted {
		cfg.onComplete()
		m.UiState.SetMode(state.NormalMode)
		cfg.clearForm()
		m.Relayout()
		return tea.ClearScreen
	}

	return cmd
}

// reportError shows err as an error notification. Silent no-ops such as an
// empty title are only logged. Returns true when err is non-nil.
func reportError(m *tui.Model, op string, err error) bool {
	if err == nil {
		return false
	}
	if board.IsNoOp(err) && !errors.Is(err, board.ErrDuplicateColumn) {
		slog.Debug("form submission ignored", "op", op, "error", err)
		return true
	}
	slog.Error("form submission failed", "op", op, "error", err)
	m.NotificationState.Clear()
	m.NotificationState.Add(state.LevelError, fmt.Sprintf("Could not %s: %v", op, err))
	return true
}

func isEsc(msg tea.Msg) bool {
	k, ok := msg.(tea.KeyPressMsg)
	return ok && k.String() == "esc"
}
