package entity

import (
	"testing"
)

func TestGoal_Remaining(t *testing.T) {
	tests := []struct {
		name     string
		consumed float64
		expected float64
	}{
		{name: "nothing eaten", consumed: 0, expected: 2000},
		{name: "partially consumed", consumed: 500, expected: 1500},
		{name: "exactly reached", consumed: 2000, expected: 0},
		{name: "exceeded goal is negative", consumed: 2500, expected: -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGoal(NutrientCalories, 2000, true)
			got := g.Remaining(Nutrients{Calories: tt.consumed, Protein: 80})
			if got != tt.expected {
				t.Errorf("Remaining = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGoal_Toggle(t *testing.T) {
	g := NewGoal(NutrientProtein, 120, true)

	g.Toggle()
	if g.Active {
		t.Error("expected goal to be inactive after first toggle")
	}

	g.Toggle()
	if !g.Active {
		t.Error("expected goal to be active after second toggle")
	}
}
