package entity

import (
	"testing"
)

func newRice() *Food {
	return NewFood("Rice", 100, Nutrients{Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28}, nil)
}

func TestFood_Scale(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		expected Nutrients
	}{
		{
			name:     "zero weight yields zeros",
			weight:   0,
			expected: Nutrients{},
		},
		{
			name:     "reference weight yields reference values",
			weight:   100,
			expected: Nutrients{Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28},
		},
		{
			name:     "half the reference weight",
			weight:   50,
			expected: Nutrients{Calories: 65, Protein: 1.35, Fat: 0.15, Carbs: 14},
		},
		{
			name:     "double the reference weight",
			weight:   200,
			expected: Nutrients{Calories: 260, Protein: 5.4, Fat: 0.6, Carbs: 56},
		},
		{
			name:     "no cap above the reference weight",
			weight:   1000,
			expected: Nutrients{Calories: 1300, Protein: 27, Fat: 3, Carbs: 280},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newRice().Scale(tt.weight)
			if got != tt.expected {
				t.Errorf("Scale(%v) = %+v, want %+v", tt.weight, got, tt.expected)
			}
		})
	}
}

func TestFood_Scale_NonDefaultReferenceWeight(t *testing.T) {
	bar := NewFood("Protein Bar", 60, Nutrients{Calories: 210, Protein: 20, Fat: 7, Carbs: 18}, nil)

	got := bar.Scale(30)
	want := Nutrients{Calories: 105, Protein: 10, Fat: 3.5, Carbs: 9}
	if got != want {
		t.Errorf("Scale(30) = %+v, want %+v", got, want)
	}
}

func TestFood_Scale_InvalidReferenceWeight(t *testing.T) {
	f := newRice()
	f.ReferenceWeight = 0

	if got := f.Scale(50); !got.IsZero() {
		t.Errorf("expected zeros for a zero reference weight, got %+v", got)
	}
}

func TestFood_SetNutrients(t *testing.T) {
	f := newRice()
	values := Nutrients{Calories: 111, Protein: 2, Fat: 1, Carbs: 23}

	f.SetNutrients(values)

	if f.Nutrients() != values {
		t.Errorf("expected %+v, got %+v", values, f.Nutrients())
	}
}
