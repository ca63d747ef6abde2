package ui

import (
	"fooddash/internal/dashboard"
	"fooddash/internal/food"
)

// ToggleAddModalMsg opens or closes the add-food modal (a, SPC f a, Esc).
type ToggleAddModalMsg struct{}

// ToggleEditModalMsg opens or closes the edit-food modal without changing the target.
type ToggleEditModalMsg struct{}

// EditFoodMsg targets Food for editing and toggles the edit modal.
type EditFoodMsg struct {
	Food food.Food
}

// EditSelectedMsg edits the food under the cursor (e, enter, SPC f e).
type EditSelectedMsg struct{}

// AddFoodMsg is sent when the add form is submitted.
type AddFoodMsg struct {
	Draft food.Draft
}

// UpdateFoodMsg is sent when the edit form is submitted. Patch holds only changed fields.
type UpdateFoodMsg struct {
	Patch food.Patch
}

// DeleteSelectedMsg deletes the food under the cursor, asking first when configured (d, SPC f d).
type DeleteSelectedMsg struct{}

// DeleteFoodMsg deletes the food with ID.
type DeleteFoodMsg struct {
	ID int
}

// ToggleAvailableSelectedMsg flips availability of the food under the cursor (t, SPC f t).
type ToggleAvailableSelectedMsg struct{}

// FoodResultMsg carries a finished remote call back to the event loop.
type FoodResultMsg struct {
	Result dashboard.Result
}

// DismissModalMsg closes the top overlay that is not bound to a store flag.
type DismissModalMsg struct{}
