package ui

// AppMode is the surface that currently receives input.
type AppMode int

const (
	ModeDashboard AppMode = iota
	ModeAddFood
	ModeEditFood
	ModeConfirmDelete
)

func (m AppMode) String() string {
	switch m {
	case ModeDashboard:
		return "Dashboard"
	case ModeAddFood:
		return "AddFood"
	case ModeEditFood:
		return "EditFood"
	case ModeConfirmDelete:
		return "ConfirmDelete"
	default:
		return "Unknown"
	}
}

// modeForOverlay maps the top overlay to the mode it puts the app in.
func modeForOverlay(o Overlay, ok bool) AppMode {
	if !ok {
		return ModeDashboard
	}
	switch o.Kind {
	case OverlayAddFood:
		return ModeAddFood
	case OverlayEditFood:
		return ModeEditFood
	case OverlayConfirmDelete:
		return ModeConfirmDelete
	}
	return ModeDashboard
}
