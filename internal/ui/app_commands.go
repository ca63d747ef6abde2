package ui

import (
	"context"

	"fooddash/internal/dashboard"
	"fooddash/internal/food"

	tea "github.com/charmbracelet/bubbletea"
)

// The commands below run the remote half of an operation off the event loop.
// They never touch the store; the FoodResultMsg they return is applied in Update.

// loadFoodsCmd fetches the full collection once at startup.
func loadFoodsCmd(remote dashboard.Remote) tea.Cmd {
	return func() tea.Msg {
		return FoodResultMsg{Result: dashboard.ExecLoad(context.Background(), remote)}
	}
}

// createFoodCmd posts draft with availability forced on.
func createFoodCmd(remote dashboard.Remote, draft food.Draft) tea.Cmd {
	return func() tea.Msg {
		return FoodResultMsg{Result: dashboard.ExecCreate(context.Background(), remote, draft)}
	}
}

// updateFoodCmd puts merged as a full replacement.
func updateFoodCmd(remote dashboard.Remote, op dashboard.Op, merged food.Food) tea.Cmd {
	return func() tea.Msg {
		return FoodResultMsg{Result: dashboard.ExecUpdate(context.Background(), remote, op, merged)}
	}
}

// deleteFoodCmd deletes id remotely.
func deleteFoodCmd(remote dashboard.Remote, id int) tea.Cmd {
	return func() tea.Msg {
		return FoodResultMsg{Result: dashboard.ExecDelete(context.Background(), remote, id)}
	}
}
