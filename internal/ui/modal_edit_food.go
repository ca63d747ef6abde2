package ui

import (
	"strconv"

	"fooddash/internal/food"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EditFoodModal edits the targeted food and submits only the changed fields.
type EditFoodModal struct {
	target    food.Food
	hasTarget bool
	form      *FoodForm
}

// Ensure EditFoodModal implements View.
var _ View = (*EditFoodModal)(nil)

// NewEditFoodModal creates a form pre-filled from target. With no target the
// form starts empty.
func NewEditFoodModal(target food.Food, hasTarget bool) *EditFoodModal {
	return &EditFoodModal{
		target:    target,
		hasTarget: hasTarget,
		form:      NewFoodForm(target, hasTarget),
	}
}

// Init implements View.
func (m *EditFoodModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *EditFoodModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			if m.form.OnLastField() {
				return m, m.submit()
			}
			m.form.Next()
			return m, nil
		}
	}
	return m, m.form.Update(msg)
}

func (m *EditFoodModal) submit() tea.Cmd {
	v, err := m.form.Values()
	if err != nil {
		m.form.SetError(err.Error())
		return nil
	}
	v.ID = m.target.ID
	v.Available = m.target.Available
	patch := food.Diff(m.target, v)
	return func() tea.Msg { return UpdateFoodMsg{Patch: patch} }
}

// View implements View.
func (m *EditFoodModal) View() string {
	title := "Edit food"
	if m.hasTarget {
		title += " #" + strconv.Itoa(m.target.ID)
	}
	content := Styles.Title.Render(title) + "\n\n"
	content += m.form.View() + "\n"
	content += Styles.Hint.Render("Tab: next field  Enter on last field / Ctrl+S: save  Esc: cancel")
	return Styles.Box.Render(content)
}
