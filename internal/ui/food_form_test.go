package ui

import (
	"strings"
	"testing"

	"fooddash/internal/food"
)

func TestFoodForm_Values(t *testing.T) {
	tests := []struct {
		price   string
		want    float64
		wantErr bool
	}{
		{"19.90", 19.90, false},
		{"19,90", 19.90, false},
		{"R$ 7,5", 7.5, false},
		{"$3", 3, false},
		{"", 0, false},
		{"cheap", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			form := NewFoodForm(food.Food{}, false)
			form.inputs[fieldName].SetValue("  Pizza ")
			form.inputs[fieldPrice].SetValue(tt.price)
			got, err := form.Values()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Price != tt.want || got.Name != "Pizza" {
				t.Errorf("got %+v", got)
			}
		})
	}
}

func TestFoodForm_Prefill(t *testing.T) {
	f := food.Food{ID: 4, Name: "Soup", Description: "Hot", Price: 9.5, Image: "s.png"}
	form := NewFoodForm(f, true)
	got, err := form.Values()
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != f.Name || got.Description != f.Description || got.Price != f.Price || got.Image != f.Image {
		t.Errorf("got %+v, want fields of %+v", got, f)
	}

	empty := NewFoodForm(f, false)
	if v, _ := empty.Values(); v.Name != "" {
		t.Error("unfilled form should start empty")
	}
}

func TestFoodForm_FocusWraps(t *testing.T) {
	form := NewFoodForm(food.Food{}, false)
	if form.OnLastField() {
		t.Fatal("should start on the first field")
	}
	form.Update(keyMsg("shift+tab"))
	if !form.OnLastField() {
		t.Error("shift+tab from the first field should wrap to the last")
	}
	form.Update(keyMsg("tab"))
	if form.focus != fieldImage {
		t.Errorf("tab from the last field should wrap, focus = %d", form.focus)
	}
}

func TestFoodForm_ViewShowsError(t *testing.T) {
	form := NewFoodForm(food.Food{}, false)
	form.SetError("price is required")
	out := form.View()
	for _, want := range []string{"Image URL", "Name", "Price", "Description", "price is required"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEditFoodModal_SubmitsOnlyChanges(t *testing.T) {
	target := food.Food{ID: 2, Name: "Salad", Price: 15.5, Available: true}
	m := NewEditFoodModal(target, true)
	m.form.inputs[fieldPrice].SetValue("16")

	_, cmd := m.Update(keyMsg("ctrl+s"))
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	msg, ok := cmd().(UpdateFoodMsg)
	if !ok {
		t.Fatalf("got %T, want UpdateFoodMsg", cmd())
	}
	if msg.Patch.Price == nil || *msg.Patch.Price != 16 {
		t.Errorf("price patch = %v", msg.Patch.Price)
	}
	if msg.Patch.Name != nil || msg.Patch.Available != nil {
		t.Errorf("unchanged fields should be absent: %+v", msg.Patch)
	}
}
