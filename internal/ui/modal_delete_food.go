package ui

import (
	"fooddash/internal/food"

	tea "github.com/charmbracelet/bubbletea"
)

// DeleteFoodConfirmModal asks before deleting a food.
// Enter or y confirms; Esc (overlay dismiss key) cancels.
type DeleteFoodConfirmModal struct {
	Food food.Food
}

// Ensure DeleteFoodConfirmModal implements View.
var _ View = (*DeleteFoodConfirmModal)(nil)

// NewDeleteFoodConfirmModal creates a confirmation modal for f.
func NewDeleteFoodConfirmModal(f food.Food) *DeleteFoodConfirmModal {
	return &DeleteFoodConfirmModal{Food: f}
}

// Init implements View.
func (m *DeleteFoodConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *DeleteFoodConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "y":
			id := m.Food.ID
			return m, func() tea.Msg { return DeleteFoodMsg{ID: id} }
		}
	}
	return m, nil
}

// View implements View.
func (m *DeleteFoodConfirmModal) View() string {
	content := Styles.TitleWarning.Render("Delete food?") + "\n\n"
	content += Styles.Label.Render(m.Food.Name+"  "+food.FormatPrice(m.Food.Price)) + "\n\n"
	content += Styles.Hint.Render("y/Enter: confirm  Esc: cancel")
	return Styles.BoxDanger.Render(content)
}
