package ui

import (
	"fooddash/internal/dashboard"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures the AppModel.
type Options struct {
	// ConfirmDelete shows a confirmation modal before deleting.
	ConfirmDelete bool
}

// AppModel is the root model: the food dashboard plus its modals.
type AppModel struct {
	Mode          AppMode
	Dashboard     *DashboardView
	Foods         *dashboard.Controller
	Overlays      OverlayStack
	KeyHandler    *KeyHandler
	ConfirmDelete bool
	Status        string // Last operation result shown at the bottom
	StatusIsError bool

	pending       int // remote calls in flight
	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model. It starts the one initial load.
func (a *appModelAdapter) Init() tea.Cmd {
	if err := a.Foods.BeginLoad(); err != nil {
		return nil
	}
	return a.startRequest(loadFoodsCmd(a.Foods.Remote()))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		_, cmd := a.Dashboard.Update(msg)
		return a, cmd
	case spinner.TickMsg:
		_, cmd := a.Dashboard.Update(msg)
		return a, cmd
	case FoodResultMsg:
		return a.handleFoodResult(msg)
	case ToggleAddModalMsg:
		return a.handleToggleAddModal()
	case ToggleEditModalMsg:
		return a.handleToggleEditModal()
	case EditFoodMsg:
		return a.handleEditFood(msg)
	case EditSelectedMsg:
		return a.handleEditSelected()
	case AddFoodMsg:
		return a.handleAddFood(msg)
	case UpdateFoodMsg:
		return a.handleUpdateFood(msg)
	case DeleteSelectedMsg:
		return a.handleDeleteSelected()
	case DeleteFoodMsg:
		return a.handleDeleteFood(msg)
	case ToggleAvailableSelectedMsg:
		return a.handleToggleAvailableSelected()
	case DismissModalMsg:
		return a.handleDismissModal()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Modals get every key first so typing never triggers dashboard bindings.
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				closeMsg := top.OnClose
				return a, func() tea.Msg { return closeMsg }
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
				return a, keyCmd
			}
		}
	}

	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	_, cmd := a.Dashboard.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Dashboard.View()
	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		if a.width > 0 && a.height > 0 {
			base = lipgloss.Place(a.width, a.height-2, lipgloss.Center, lipgloss.Center, modal)
		} else {
			base += "\n" + modal
		}
	}
	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.Error
		}
		base += "\n" + style.Render(a.Status)
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return base
}

// NewAppModel creates the root application model around ctrl.
func NewAppModel(ctrl *dashboard.Controller, opts Options) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	dash := []AppMode{ModeDashboard}
	add := func() tea.Msg { return ToggleAddModalMsg{} }
	edit := func() tea.Msg { return EditSelectedMsg{} }
	del := func() tea.Msg { return DeleteSelectedMsg{} }
	toggle := func() tea.Msg { return ToggleAvailableSelectedMsg{} }
	reg.BindWithDescForMode("a", add, "New food", dash)
	reg.BindWithDescForMode("e", edit, "Edit food", dash)
	reg.BindWithDescForMode("enter", edit, "Edit food", dash)
	reg.BindWithDescForMode("d", del, "Delete food", dash)
	reg.BindWithDescForMode("t", toggle, "Toggle available", dash)
	reg.BindWithDescForMode("SPC f a", add, "New food", dash)
	reg.BindWithDescForMode("SPC f e", edit, "Edit food", dash)
	reg.BindWithDescForMode("SPC f d", del, "Delete food", dash)
	reg.BindWithDescForMode("SPC f t", toggle, "Toggle available", dash)

	return &AppModel{
		Mode:          ModeDashboard,
		Dashboard:     NewDashboardView(),
		Foods:         ctrl,
		KeyHandler:    NewKeyHandler(reg),
		ConfirmDelete: opts.ConfirmDelete,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
