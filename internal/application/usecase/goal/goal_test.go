package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter/adaptertest"
	"github.com/nutrition-tracker/backend/internal/application/usecase/totals"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

var today = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func boolPtr(v bool) *bool { return &v }

func mustCreateGoal(t *testing.T, repo *adaptertest.GoalRepository, field entity.NutrientField, value int) *entity.Goal {
	t.Helper()
	output, err := NewCreateGoalUseCase(repo).Execute(context.Background(), CreateGoalInput{Field: field, Value: value})
	if err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	return output.Goal
}

func TestCreateGoalUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to active", func(t *testing.T) {
		goal := mustCreateGoal(t, adaptertest.NewGoalRepository(), entity.NutrientCalories, 2000)
		if !goal.Active {
			t.Error("expected the goal to be active")
		}
	})

	t.Run("explicit inactive", func(t *testing.T) {
		output, err := NewCreateGoalUseCase(adaptertest.NewGoalRepository()).
			Execute(ctx, CreateGoalInput{Field: entity.NutrientFat, Value: 70, Active: boolPtr(false)})
		if err != nil || output.Goal.Active {
			t.Errorf("expected an inactive goal, got %+v, %v", output, err)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := NewCreateGoalUseCase(adaptertest.NewGoalRepository()).
			Execute(ctx, CreateGoalInput{Field: "sugar", Value: 50})

		if !errors.Is(err, domainerror.ErrInvalidGoalField) {
			t.Errorf("expected ErrInvalidGoalField, got %v", err)
		}
	})

	t.Run("rejects non-positive values", func(t *testing.T) {
		_, err := NewCreateGoalUseCase(adaptertest.NewGoalRepository()).
			Execute(ctx, CreateGoalInput{Field: entity.NutrientProtein, Value: 0})

		if !errors.Is(err, domainerror.ErrInvalidGoalValue) {
			t.Errorf("expected ErrInvalidGoalValue, got %v", err)
		}
	})
}

func TestToggleGoalUseCase(t *testing.T) {
	ctx := context.Background()
	repo := adaptertest.NewGoalRepository()
	goal := mustCreateGoal(t, repo, entity.NutrientCalories, 2000)
	uc := NewToggleGoalUseCase(repo)

	output, err := uc.Execute(ctx, ToggleGoalInput{GoalID: goal.ID})
	if err != nil || output.Goal.Active {
		t.Fatalf("expected an inactive goal, got %+v, %v", output, err)
	}
	stored, _ := repo.FindByID(ctx, goal.ID)
	if stored.Active {
		t.Error("expected the toggle to be persisted")
	}

	if _, err := uc.Execute(ctx, ToggleGoalInput{GoalID: uuid.New()}); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestUpdateGoalUseCase(t *testing.T) {
	ctx := context.Background()
	repo := adaptertest.NewGoalRepository()
	goal := mustCreateGoal(t, repo, entity.NutrientCalories, 2000)
	uc := NewUpdateGoalUseCase(repo)

	output, err := uc.Execute(ctx, UpdateGoalInput{GoalID: goal.ID, Value: 1800})
	if err != nil || output.Goal.Value != 1800 {
		t.Fatalf("expected value 1800, got %+v, %v", output, err)
	}

	if _, err := uc.Execute(ctx, UpdateGoalInput{GoalID: goal.ID, Value: -1}); !errors.Is(err, domainerror.ErrInvalidGoalValue) {
		t.Errorf("expected ErrInvalidGoalValue, got %v", err)
	}
	if _, err := uc.Execute(ctx, UpdateGoalInput{GoalID: uuid.New(), Value: 10}); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestDeleteGoalUseCase(t *testing.T) {
	ctx := context.Background()
	repo := adaptertest.NewGoalRepository()
	goal := mustCreateGoal(t, repo, entity.NutrientCalories, 2000)
	uc := NewDeleteGoalUseCase(repo)

	if output, err := uc.Execute(ctx, DeleteGoalInput{GoalID: goal.ID}); err != nil || !output.Success {
		t.Fatalf("expected success, got %v", err)
	}
	if _, err := uc.Execute(ctx, DeleteGoalInput{GoalID: goal.ID}); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestListGoalsUseCase(t *testing.T) {
	ctx := context.Background()
	repo := adaptertest.NewGoalRepository()
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	inactive := &entity.Goal{ID: uuid.New(), Field: entity.NutrientFat, Value: 70, CreatedAt: base}
	first := &entity.Goal{ID: uuid.New(), Field: entity.NutrientCalories, Value: 2000, Active: true, CreatedAt: base.Add(time.Minute)}
	second := &entity.Goal{ID: uuid.New(), Field: entity.NutrientProtein, Value: 120, Active: true, CreatedAt: base.Add(2 * time.Minute)}
	for _, g := range []*entity.Goal{second, inactive, first} {
		_ = repo.Create(ctx, g)
	}

	output, err := NewListGoalsUseCase(repo).Execute(ctx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Goals) != 3 ||
		output.Goals[0].ID != first.ID ||
		output.Goals[1].ID != second.ID ||
		output.Goals[2].ID != inactive.ID {
		t.Errorf("expected active goals first in creation order, got %v", output.Goals)
	}
}

func newProgressUseCase(goals *adaptertest.GoalRepository, entries *adaptertest.EntryRepository) *GetProgressUseCase {
	return NewGetProgressUseCase(
		goals,
		totals.NewGetTotalsUseCase(entries, adaptertest.NewTotalsCache()),
		adaptertest.NewClock(today.Add(18*time.Hour)),
	)
}

func addCalories(t *testing.T, entries *adaptertest.EntryRepository, calories float64, date time.Time) {
	t.Helper()
	food := entity.NewFood("Fuel", 100, entity.Nutrients{Calories: calories}, nil)
	if err := entries.Create(context.Background(), entity.NewEntry(food, 100, date, date)); err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
}

func TestGetProgressUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("remaining calories", func(t *testing.T) {
		tests := []struct {
			name      string
			consumed  float64
			remaining float64
		}{
			{name: "under the goal", consumed: 500, remaining: 1500},
			{name: "over the goal", consumed: 2500, remaining: -500},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				goals := adaptertest.NewGoalRepository()
				entries := adaptertest.NewEntryRepository()
				mustCreateGoal(t, goals, entity.NutrientCalories, 2000)
				addCalories(t, entries, tt.consumed, today)
				addCalories(t, entries, 900, today.AddDate(0, 0, -1))

				output, err := newProgressUseCase(goals, entries).Execute(ctx, GetProgressInput{})

				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got := output.Remaining[entity.NutrientCalories]; got != tt.remaining {
					t.Errorf("expected %v remaining, got %v", tt.remaining, got)
				}
				if len(output.Items) != 1 || output.Items[0].Consumed != tt.consumed {
					t.Errorf("unexpected items %+v", output.Items)
				}
				if !output.Date.Equal(today) {
					t.Errorf("expected the clock's day, got %v", output.Date)
				}
			})
		}
	})

	t.Run("inactive goals are ignored", func(t *testing.T) {
		goals := adaptertest.NewGoalRepository()
		goal := mustCreateGoal(t, goals, entity.NutrientProtein, 120)
		if _, err := NewToggleGoalUseCase(goals).Execute(ctx, ToggleGoalInput{GoalID: goal.ID}); err != nil {
			t.Fatalf("failed to toggle: %v", err)
		}

		output, err := newProgressUseCase(goals, adaptertest.NewEntryRepository()).Execute(ctx, GetProgressInput{})

		if err != nil || len(output.Items) != 0 || len(output.Remaining) != 0 {
			t.Errorf("expected no progress, got %+v, %v", output, err)
		}
	})

	t.Run("most recent goal wins for a shared field", func(t *testing.T) {
		goals := adaptertest.NewGoalRepository()
		_ = goals.Create(ctx, &entity.Goal{ID: uuid.New(), Field: entity.NutrientCalories, Value: 2500, Active: true, CreatedAt: today})
		_ = goals.Create(ctx, &entity.Goal{ID: uuid.New(), Field: entity.NutrientCalories, Value: 1800, Active: true, CreatedAt: today.Add(time.Hour)})

		output, err := newProgressUseCase(goals, adaptertest.NewEntryRepository()).Execute(ctx, GetProgressInput{})

		if err != nil || len(output.Items) != 2 || output.Remaining[entity.NutrientCalories] != 1800 {
			t.Errorf("expected 1800 remaining from the newer goal, got %+v, %v", output, err)
		}
	})

	t.Run("explicit date", func(t *testing.T) {
		goals := adaptertest.NewGoalRepository()
		entries := adaptertest.NewEntryRepository()
		mustCreateGoal(t, goals, entity.NutrientCalories, 2000)
		yesterday := today.AddDate(0, 0, -1)
		addCalories(t, entries, 900, yesterday)

		output, err := newProgressUseCase(goals, entries).Execute(ctx, GetProgressInput{Date: &yesterday})

		if err != nil || output.Remaining[entity.NutrientCalories] != 1100 {
			t.Errorf("expected 1100 remaining, got %+v, %v", output, err)
		}
	})
}

func TestHowToReachUseCase(t *testing.T) {
	ctx := context.Background()
	goals := adaptertest.NewGoalRepository()
	foods := adaptertest.NewFoodRepository()
	protein := mustCreateGoal(t, goals, entity.NutrientProtein, 100)
	fat := mustCreateGoal(t, goals, entity.NutrientFat, 70)
	chicken := entity.NewFood("Chicken", 100, entity.Nutrients{Calories: 165, Protein: 25}, nil)
	bar := entity.NewFood("Protein Bar", 60, entity.Nutrients{Calories: 210, Protein: 20, Fat: 7, Carbs: 18}, nil)
	_ = foods.Create(ctx, chicken)
	_ = foods.Create(ctx, bar)
	uc := NewHowToReachUseCase(goals, foods)

	tests := []struct {
		name  string
		goal  uuid.UUID
		food  uuid.UUID
		grams float64
	}{
		{name: "default reference weight", goal: protein.ID, food: chicken.ID, grams: 400},
		{name: "custom reference weight", goal: protein.ID, food: bar.ID, grams: 300},
		{name: "other field", goal: fat.ID, food: bar.ID, grams: 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(ctx, HowToReachInput{GoalID: tt.goal, FoodID: tt.food})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Grams != tt.grams {
				t.Errorf("expected %vg, got %vg", tt.grams, output.Grams)
			}
		})
	}

	t.Run("zero nutrient is undefined", func(t *testing.T) {
		_, err := uc.Execute(ctx, HowToReachInput{GoalID: fat.ID, FoodID: chicken.ID})
		if !errors.Is(err, domainerror.ErrDivisionUndefined) {
			t.Errorf("expected ErrDivisionUndefined, got %v", err)
		}
	})

	t.Run("unknown food", func(t *testing.T) {
		_, err := uc.Execute(ctx, HowToReachInput{GoalID: fat.ID, FoodID: uuid.New()})
		if !errors.Is(err, domainerror.ErrFoodNotFound) {
			t.Errorf("expected ErrFoodNotFound, got %v", err)
		}
	})

	t.Run("unknown goal", func(t *testing.T) {
		_, err := uc.Execute(ctx, HowToReachInput{GoalID: uuid.New(), FoodID: chicken.ID})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})
}
