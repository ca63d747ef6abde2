// Package food defines the menu item record shared by the dashboard, the API
// client and the development server.
package food

import "fmt"

// Food is a single menu item. The ID is assigned by the server.
type Food struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	Image       string  `json:"image"`
}

// Draft is a Food that has not been created yet (no ID).
type Draft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	Image       string  `json:"image"`
}

// ForCreate returns the payload sent on creation. New items are always available.
func (d Draft) ForCreate() Draft {
	d.Available = true
	return d
}

// WithID returns the Food the server would hold for this draft under id.
func (d Draft) WithID(id int) Food {
	return Food{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Available:   d.Available,
		Image:       d.Image,
	}
}

// Patch is a partial update. Nil fields are left untouched by Apply.
type Patch struct {
	Name        *string
	Description *string
	Price       *float64
	Available   *bool
	Image       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Available == nil && p.Image == nil
}

// Apply returns f with every present patch field overriding f's value.
// The ID is never changed.
func (p Patch) Apply(f Food) Food {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Price != nil {
		f.Price = *p.Price
	}
	if p.Available != nil {
		f.Available = *p.Available
	}
	if p.Image != nil {
		f.Image = *p.Image
	}
	return f
}

// Diff builds the patch that turns from into to. Only changed fields are set.
func Diff(from, to Food) Patch {
	var p Patch
	if from.Name != to.Name {
		p.Name = &to.Name
	}
	if from.Description != to.Description {
		p.Description = &to.Description
	}
	if from.Price != to.Price {
		p.Price = &to.Price
	}
	if from.Available != to.Available {
		p.Available = &to.Available
	}
	if from.Image != to.Image {
		p.Image = &to.Image
	}
	return p
}

// FormatPrice renders a price for display.
func FormatPrice(price float64) string {
	return fmt.Sprintf("R$ %.2f", price)
}
