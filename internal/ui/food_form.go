package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fooddash/internal/food"
	"fooddash/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field order: image first, description last.
const (
	fieldImage = iota
	fieldName
	fieldPrice
	fieldDescription
	fieldCount
)

var fieldLabels = [fieldCount]string{"Image URL", "Name", "Price", "Description"}

const labelWidth = 12

// FoodForm is the input group shared by the add and edit modals.
type FoodForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

// NewFoodForm creates a form pre-filled from f.
func NewFoodForm(f food.Food, fill bool) *FoodForm {
	form := &FoodForm{}
	placeholders := [fieldCount]string{"https://...", "Pasta al pesto", "19.90", "What's in it"}
	for i := range form.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.Width = 40
		form.inputs[i] = ti
	}
	if fill {
		form.inputs[fieldImage].SetValue(f.Image)
		form.inputs[fieldName].SetValue(f.Name)
		form.inputs[fieldPrice].SetValue(strconv.FormatFloat(f.Price, 'f', -1, 64))
		form.inputs[fieldDescription].SetValue(f.Description)
	}
	form.inputs[form.focus].Focus()
	return form
}

// OnLastField reports whether the cursor is in the final input.
func (f *FoodForm) OnLastField() bool {
	return f.focus == fieldCount-1
}

// Next moves focus down, wrapping around.
func (f *FoodForm) Next() {
	f.setFocus((f.focus + 1) % fieldCount)
}

// Prev moves focus up, wrapping around.
func (f *FoodForm) Prev() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *FoodForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// SetError shows msg under the inputs.
func (f *FoodForm) SetError(msg string) {
	f.err = msg
}

// Update handles focus movement and forwards everything else to the focused input.
func (f *FoodForm) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "down":
			f.Next()
			return nil
		case "shift+tab", "up":
			f.Prev()
			return nil
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// Values reads the inputs into a Food (no ID, availability untouched).
// An empty price reads as zero; "19,90" is accepted as 19.90.
func (f *FoodForm) Values() (food.Food, error) {
	out := food.Food{
		Image:       strings.TrimSpace(f.inputs[fieldImage].Value()),
		Name:        strings.TrimSpace(f.inputs[fieldName].Value()),
		Description: strings.TrimSpace(f.inputs[fieldDescription].Value()),
	}
	raw := strings.TrimSpace(f.inputs[fieldPrice].Value())
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "R$"), "$")
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return food.Food{}, fmt.Errorf("price %q is not a number", f.inputs[fieldPrice].Value())
		}
		out.Price = price
	}
	return out, nil
}

// View renders labelled inputs.
func (f *FoodForm) View() string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := textutil.PadRightVisual(fieldLabels[i], labelWidth)
		if i == f.focus {
			label = Styles.Selected.Render(label)
		} else {
			label = Styles.Muted.Render(label)
		}
		b.WriteString(label + " " + in.View() + "\n")
	}
	if f.err != "" {
		b.WriteString("\n" + Styles.Error.Render(f.err) + "\n")
	}
	return b.String()
}
