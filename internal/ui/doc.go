// Package ui is the Bubble Tea front end of fooddash.
//
// Core abstractions:
//   - View: A screen or modal with its own model, update, view (Elm-style)
//   - Overlay: Modal views stacked over the dashboard, each with a dismiss key
//   - KeybindRegistry/KeyHandler: single keys plus SPC-prefixed leader sequences
//
// AppModel owns a dashboard.Controller. Remote calls run inside tea.Cmds and
// come back as FoodResultMsg; the controller's store is only written from
// Update, on the event loop.
package ui
