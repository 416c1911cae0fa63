package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/nutrition-tracker/backend/internal/application/usecase/entry"
	"github.com/nutrition-tracker/backend/internal/application/usecase/food"
	"github.com/nutrition-tracker/backend/internal/application/usecase/goal"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	"github.com/nutrition-tracker/backend/test/integration/mock"
)

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(now)
	return nil
}

func (t *testContext) aFoodExists(name, calories, protein, fat, carbs, refWeight string) error {
	values, err := parseFloats(calories, protein, fat, carbs, refWeight)
	if err != nil {
		return err
	}

	output, err := t.injector.UseCases.CreateFood.Execute(context.Background(), food.CreateFoodInput{
		Name:            name,
		Calories:        values[0],
		Protein:         values[1],
		Fat:             values[2],
		Carbs:           values[3],
		ReferenceWeight: &values[4],
	})
	if err != nil {
		return err
	}
	t.foods[name] = output.Food
	return nil
}

func (t *testContext) anEntryExists(weight, foodName, date string) error {
	f, ok := t.foods[foodName]
	if !ok {
		return fmt.Errorf("food %q was not set up", foodName)
	}
	grams, err := strconv.ParseFloat(weight, 64)
	if err != nil {
		return err
	}
	day, err := entity.ParseDate(date)
	if err != nil {
		return err
	}

	_, err = t.injector.UseCases.CreateEntry.Execute(context.Background(), entry.CreateEntryInput{
		FoodID: f.ID,
		Weight: grams,
		Date:   day,
	})
	return err
}

func (t *testContext) aGoalExists(state, field string, value int) error {
	active := state == "active"
	_, err := t.injector.UseCases.CreateGoal.Execute(context.Background(), goal.CreateGoalInput{
		Field:  entity.NutrientField(field),
		Value:  value,
		Active: &active,
	})
	return err
}

func (t *testContext) iRunTheAppWithInput(input *godog.DocString) error {
	app := t.injector.NewApp(strings.NewReader(input.Content+"\n"), &t.output)
	return app.Run(context.Background())
}

func (t *testContext) theOutputShouldContain(text string) error {
	if !strings.Contains(t.output.String(), text) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", text, t.output.String())
	}
	return nil
}

func (t *testContext) theOutputShouldNotContain(text string) error {
	if strings.Contains(t.output.String(), text) {
		return fmt.Errorf("expected output not to contain %q, got:\n%s", text, t.output.String())
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(expected int, table string) error {
	count, err := t.db.Count(table)
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d objects in %s, got %d", expected, table, count)
	}
	return nil
}

func (t *testContext) theTotalsCacheShouldContainKeys(expected int) error {
	count, err := mock.CountKeys(t.redis, "totals:*")
	if err != nil {
		return err
	}
	if count != expected {
		return fmt.Errorf("expected %d cached totals, got %d", expected, count)
	}
	return nil
}

func parseFloats(values ...string) ([]float64, error) {
	parsed := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", v, err)
		}
		parsed[i] = f
	}
	return parsed, nil
}
