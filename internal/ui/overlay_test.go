package ui

import (
	"testing"

	"fooddash/internal/food"
)

func TestOverlayStack_PushPopPeek(t *testing.T) {
	var s OverlayStack
	if _, ok := s.Peek(); ok {
		t.Fatal("empty stack should have no top")
	}
	s.Push(Overlay{Kind: OverlayAddFood, View: NewAddFoodModal(), Dismiss: "esc"})
	s.Push(Overlay{Kind: OverlayEditFood, View: NewEditFoodModal(food.Food{}, false), Dismiss: "esc"})

	top, ok := s.Peek()
	if !ok || top.Kind != OverlayEditFood {
		t.Errorf("top = %v, want edit", top.Kind)
	}
	if _, ok := s.Pop(); !ok || s.Len() != 1 {
		t.Errorf("len after pop = %d", s.Len())
	}
	s.Pop()
	if _, ok := s.Pop(); ok {
		t.Error("pop on empty stack should fail")
	}
}

func TestOverlayStack_HasRemove(t *testing.T) {
	var s OverlayStack
	s.Push(Overlay{Kind: OverlayAddFood})
	s.Push(Overlay{Kind: OverlayEditFood})
	s.Push(Overlay{Kind: OverlayConfirmDelete})

	s.Remove(OverlayEditFood)
	if s.Has(OverlayEditFood) {
		t.Error("edit overlay should be gone")
	}
	if s.Len() != 2 || s.Stack[0].Kind != OverlayAddFood || s.Stack[1].Kind != OverlayConfirmDelete {
		t.Errorf("remaining order = %+v", s.Stack)
	}
	s.Remove(OverlayEditFood)
	if s.Len() != 2 {
		t.Error("removing an absent kind should be a no-op")
	}
}

func TestOverlayStack_UpdateTop(t *testing.T) {
	var s OverlayStack
	if _, ok := s.UpdateTop(keyMsg("y")); ok {
		t.Error("UpdateTop on empty stack should report false")
	}

	s.Push(Overlay{Kind: OverlayConfirmDelete, View: NewDeleteFoodConfirmModal(food.Food{ID: 7}), Dismiss: "esc"})
	cmd, ok := s.UpdateTop(keyMsg("y"))
	if !ok || cmd == nil {
		t.Fatal("expected confirm command")
	}
	msg, isDelete := cmd().(DeleteFoodMsg)
	if !isDelete || msg.ID != 7 {
		t.Errorf("msg = %#v, want DeleteFoodMsg{ID: 7}", msg)
	}

	top, _ := s.Peek()
	if !top.IsDismissKey("esc") || top.IsDismissKey("q") {
		t.Error("only esc should dismiss")
	}
}

func TestModeForOverlay(t *testing.T) {
	tests := []struct {
		kind OverlayKind
		want AppMode
	}{
		{OverlayAddFood, ModeAddFood},
		{OverlayEditFood, ModeEditFood},
		{OverlayConfirmDelete, ModeConfirmDelete},
	}
	for _, tt := range tests {
		if got := modeForOverlay(Overlay{Kind: tt.kind}, true); got != tt.want {
			t.Errorf("modeForOverlay(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
	if got := modeForOverlay(Overlay{}, false); got != ModeDashboard {
		t.Errorf("no overlay: got %v", got)
	}
}
