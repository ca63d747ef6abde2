package ui

import (
	"fmt"

	"fooddash/internal/dashboard"
	"fooddash/internal/food"

	tea "github.com/charmbracelet/bubbletea"
)

// handleToggleAddModal flips the add-modal flag and syncs overlays.
func (a *appModelAdapter) handleToggleAddModal() (tea.Model, tea.Cmd) {
	a.Foods.ToggleAddModal()
	return a, a.syncModals()
}

// handleToggleEditModal flips the edit-modal flag; the target is kept.
func (a *appModelAdapter) handleToggleEditModal() (tea.Model, tea.Cmd) {
	a.Foods.ToggleEditModal()
	return a, a.syncModals()
}

// handleEditFood targets msg.Food and toggles the edit modal in one step.
func (a *appModelAdapter) handleEditFood(msg EditFoodMsg) (tea.Model, tea.Cmd) {
	a.Foods.EditFood(msg.Food)
	return a, a.syncModals()
}

// handleEditSelected turns the cursor position into an EditFoodMsg.
func (a *appModelAdapter) handleEditSelected() (tea.Model, tea.Cmd) {
	f, ok := a.Dashboard.SelectedFood()
	if !ok {
		return a, nil
	}
	return a.handleEditFood(EditFoodMsg{Food: f})
}

// handleAddFood submits the draft and closes the add modal.
func (a *appModelAdapter) handleAddFood(msg AddFoodMsg) (tea.Model, tea.Cmd) {
	if addOpen, _ := a.modalFlags(); addOpen {
		a.Foods.ToggleAddModal()
	}
	return a, tea.Batch(a.syncModals(), a.startRequest(createFoodCmd(a.Foods.Remote(), msg.Draft)))
}

// handleUpdateFood merges the patch onto the target, submits it and closes the edit modal.
func (a *appModelAdapter) handleUpdateFood(msg UpdateFoodMsg) (tea.Model, tea.Cmd) {
	if _, editOpen := a.modalFlags(); editOpen {
		a.Foods.ToggleEditModal()
	}
	sync := a.syncModals()
	merged, err := a.Foods.PrepareUpdate(msg.Patch)
	if err != nil {
		a.reportResult(a.Foods.Apply(dashboard.Result{Op: dashboard.OpUpdate, Err: err}))
		return a, sync
	}
	return a, tea.Batch(sync, a.startRequest(updateFoodCmd(a.Foods.Remote(), dashboard.OpUpdate, merged)))
}

// handleDeleteSelected deletes the food under the cursor, or asks first.
func (a *appModelAdapter) handleDeleteSelected() (tea.Model, tea.Cmd) {
	f, ok := a.Dashboard.SelectedFood()
	if !ok {
		return a, nil
	}
	if a.ConfirmDelete {
		modal := NewDeleteFoodConfirmModal(f)
		a.Overlays.Push(Overlay{
			Kind:    OverlayConfirmDelete,
			View:    modal,
			Dismiss: "esc",
			OnClose: DismissModalMsg{},
		})
		a.Mode = ModeConfirmDelete
		return a, modal.Init()
	}
	return a.handleDeleteFood(DeleteFoodMsg{ID: f.ID})
}

// handleDeleteFood issues the delete and closes a confirmation modal if one is up.
func (a *appModelAdapter) handleDeleteFood(msg DeleteFoodMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Remove(OverlayConfirmDelete)
	a.Mode = modeForOverlay(a.Overlays.Peek())
	return a, a.startRequest(deleteFoodCmd(a.Foods.Remote(), msg.ID))
}

// handleToggleAvailableSelected puts the selected food with availability flipped.
func (a *appModelAdapter) handleToggleAvailableSelected() (tea.Model, tea.Cmd) {
	f, ok := a.Dashboard.SelectedFood()
	if !ok {
		return a, nil
	}
	f.Available = !f.Available
	return a, a.startRequest(updateFoodCmd(a.Foods.Remote(), dashboard.OpSetAvailable, f))
}

// handleFoodResult reconciles the store with a finished call and refreshes the list.
func (a *appModelAdapter) handleFoodResult(msg FoodResultMsg) (tea.Model, tea.Cmd) {
	if a.pending > 0 {
		a.pending--
	}
	a.reportResult(a.Foods.Apply(msg.Result))
	a.Dashboard.SetFoods(a.Foods.Foods())
	return a, a.Dashboard.SetLoading(a.pending > 0)
}

// handleDismissModal pops the top overlay.
func (a *appModelAdapter) handleDismissModal() (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	a.Mode = modeForOverlay(a.Overlays.Peek())
	return a, nil
}

// startRequest counts an in-flight call and starts the spinner.
func (a *appModelAdapter) startRequest(cmd tea.Cmd) tea.Cmd {
	a.pending++
	return tea.Batch(a.Dashboard.SetLoading(true), cmd)
}

func (a *appModelAdapter) modalFlags() (addOpen, editOpen bool) {
	a.Foods.View(func(s *dashboard.Store) {
		addOpen = s.AddModalOpen()
		editOpen = s.EditModalOpen()
	})
	return addOpen, editOpen
}

// syncModals makes the overlay stack match the store's modal flags.
func (a *appModelAdapter) syncModals() tea.Cmd {
	var (
		addOpen, editOpen bool
		target            food.Food
		hasTarget         bool
	)
	a.Foods.View(func(s *dashboard.Store) {
		addOpen = s.AddModalOpen()
		editOpen = s.EditModalOpen()
		target, hasTarget = s.Editing()
	})

	var cmds []tea.Cmd
	if addOpen && !a.Overlays.Has(OverlayAddFood) {
		modal := NewAddFoodModal()
		a.Overlays.Push(Overlay{Kind: OverlayAddFood, View: modal, Dismiss: "esc", OnClose: ToggleAddModalMsg{}})
		cmds = append(cmds, modal.Init())
	} else if !addOpen {
		a.Overlays.Remove(OverlayAddFood)
	}
	if editOpen && !a.Overlays.Has(OverlayEditFood) {
		modal := NewEditFoodModal(target, hasTarget)
		a.Overlays.Push(Overlay{Kind: OverlayEditFood, View: modal, Dismiss: "esc", OnClose: ToggleEditModalMsg{}})
		cmds = append(cmds, modal.Init())
	} else if !editOpen {
		a.Overlays.Remove(OverlayEditFood)
	}
	a.Mode = modeForOverlay(a.Overlays.Peek())
	return tea.Batch(cmds...)
}

// reportResult sets the status line from r.
func (a *appModelAdapter) reportResult(r dashboard.Result) {
	if r.Err != nil {
		a.Status = fmt.Sprintf("%s food: %v", opVerb(r.Op), r.Err)
		a.StatusIsError = true
		return
	}
	a.StatusIsError = false
	switch r.Op {
	case dashboard.OpLoad:
		a.Status = fmt.Sprintf("Loaded %d foods", len(r.Foods))
	case dashboard.OpCreate:
		a.Status = fmt.Sprintf("Added %s", r.Food.Name)
	case dashboard.OpUpdate:
		a.Status = fmt.Sprintf("Saved %s", r.Food.Name)
	case dashboard.OpSetAvailable:
		if r.Food.Available {
			a.Status = fmt.Sprintf("%s is available", r.Food.Name)
		} else {
			a.Status = fmt.Sprintf("%s is unavailable", r.Food.Name)
		}
	case dashboard.OpDelete:
		a.Status = "Food deleted"
	}
}

func opVerb(op dashboard.Op) string {
	switch op {
	case dashboard.OpLoad:
		return "Load"
	case dashboard.OpCreate:
		return "Add"
	case dashboard.OpUpdate:
		return "Save"
	case dashboard.OpSetAvailable:
		return "Toggle"
	case dashboard.OpDelete:
		return "Delete"
	}
	return "Update"
}
