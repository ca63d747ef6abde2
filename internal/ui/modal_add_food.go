package ui

import (
	"fooddash/internal/food"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AddFoodModal collects a new food. Esc is handled by the overlay.
type AddFoodModal struct {
	form *FoodForm
}

// Ensure AddFoodModal implements View.
var _ View = (*AddFoodModal)(nil)

// NewAddFoodModal creates an empty add-food form.
func NewAddFoodModal() *AddFoodModal {
	return &AddFoodModal{form: NewFoodForm(food.Food{}, false)}
}

// Init implements View.
func (m *AddFoodModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *AddFoodModal) Update(msg tea.Msg) (View, tea.Cmd) {
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

func (m *AddFoodModal) submit() tea.Cmd {
	v, err := m.form.Values()
	if err != nil {
		m.form.SetError(err.Error())
		return nil
	}
	draft := food.Draft{
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		Image:       v.Image,
	}
	return func() tea.Msg { return AddFoodMsg{Draft: draft} }
}

// View implements View.
func (m *AddFoodModal) View() string {
	content := Styles.Title.Render("New food") + "\n\n"
	content += m.form.View() + "\n"
	content += Styles.Hint.Render("Tab: next field  Enter on last field / Ctrl+S: add  Esc: cancel")
	return Styles.Box.Render(content)
}
