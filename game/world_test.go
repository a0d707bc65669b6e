package game

import (
	"math"
	"testing"
)

func TestDefaultWorld(t *testing.T) {
	w := DefaultWorld()
	if w.Gravity != 0.5 {
		t.Fatalf("Gravity = %v, want %v", w.Gravity, 0.5)
	}
	if w.FloorY != 600 {
		t.Fatalf("FloorY = %v, want %v", w.FloorY, 600)
	}
	if w.Bounce != -0.6 {
		t.Fatalf("Bounce = %v, want %v", w.Bounce, -0.6)
	}
	if w.Width != 800 {
		t.Fatalf("Width = %v, want %v", w.Width, 800)
	}
	if err := w.Validate(); err != nil {
		t.Fatalf("default world invalid: %v", err)
	}
}

func TestWorldValidate(t *testing.T) {
	cases := map[string]func(*World){
		"zero gravity":     func(w *World) { w.Gravity = 0 },
		"negative gravity": func(w *World) { w.Gravity = -1 },
		"nan gravity":      func(w *World) { w.Gravity = math.NaN() },
		"inf floor":        func(w *World) { w.FloorY = math.Inf(1) },
		"bounce zero":      func(w *World) { w.Bounce = 0 },
		"bounce minus one": func(w *World) { w.Bounce = -1 },
		"bounce positive":  func(w *World) { w.Bounce = 0.5 },
		"zero width":       func(w *World) { w.Width = 0 },
	}
	for name, mutate := range cases {
		w := DefaultWorld()
		mutate(&w)
		if err := w.Validate(); err == nil {
			t.Fatalf("%s: expected error, got nil", name)
		}
	}
}
