package ui

import (
	"fmt"
	"strings"

	"fooddash/internal/food"
	"fooddash/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const descriptionWidth = 60

// foodItem implements list.Item for a Food.
type foodItem struct {
	food.Food
}

func (f foodItem) FilterValue() string { return f.Name }

func (f foodItem) Title() string {
	badge := Styles.Available.Render("available")
	if !f.Available {
		badge = Styles.Sold.Render("unavailable")
	}
	return fmt.Sprintf("%s  %s  %s", f.Name, Styles.Price.Render(food.FormatPrice(f.Price)), badge)
}

func (f foodItem) Description() string {
	if f.Food.Description == "" {
		return "—"
	}
	return textutil.Truncate(f.Food.Description, descriptionWidth)
}

// DashboardView is the header plus the food list.
type DashboardView struct {
	list    list.Model
	Foods   []food.Food
	spinner spinner.Model
	loading bool // true while remote calls are in flight
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// NewDashboardView creates an empty dashboard. Foods arrive through SetFoods.
func NewDashboardView() *DashboardView {
	l := list.New(nil, NewFoodListDelegate(), 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &DashboardView{
		list:    l,
		spinner: s,
	}
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return nil
}

// SetFoods replaces the listed foods, keeping the cursor in range.
func (d *DashboardView) SetFoods(foods []food.Food) {
	idx := d.list.Index()
	d.Foods = foods
	items := make([]list.Item, len(foods))
	for i, f := range foods {
		items[i] = foodItem{Food: f}
	}
	d.list.SetItems(items)
	if idx >= len(foods) {
		idx = len(foods) - 1
	}
	if idx < 0 {
		idx = 0
	}
	d.list.Select(idx)
}

// Selected returns the cursor index.
func (d *DashboardView) Selected() int {
	return d.list.Index()
}

// SelectedFood returns the food under the cursor.
func (d *DashboardView) SelectedFood() (food.Food, bool) {
	idx := d.list.Index()
	if idx < 0 || idx >= len(d.Foods) {
		return food.Food{}, false
	}
	return d.Foods[idx], true
}

// SetLoading sets the loading state and returns a command to start the spinner.
func (d *DashboardView) SetLoading(loading bool) tea.Cmd {
	wasLoading := d.loading
	d.loading = loading
	if loading && !wasLoading {
		return d.spinner.Tick
	}
	return nil
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.list.SetWidth(msg.Width)
		d.list.SetHeight(msg.Height - 5) // header, hint, status
		return d, nil
	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd
	}

	// list.Model handles j/k/g/G and arrow navigation natively.
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

// View implements View.
func (d *DashboardView) View() string {
	var b strings.Builder
	title := Styles.Title.Render(fmt.Sprintf("Foods (%d)", len(d.Foods)))
	if d.loading {
		title += " " + d.spinner.View()
	}
	b.WriteString(title + "\n")
	b.WriteString(Styles.Hint.Render("a: new food  e/enter: edit  t: toggle available  d: delete  SPC: commands") + "\n\n")
	if len(d.Foods) == 0 {
		b.WriteString(Styles.Empty.Render("No foods yet. Press a to add one."))
		return b.String()
	}
	b.WriteString(d.list.View())
	return b.String()
}
