package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nutrition-tracker/backend/internal/application/usecase/goal"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

func (a *App) goalsMenu(ctx context.Context) error {
	items := []menuItem{
		{label: "List Goals", run: a.showGoals},
		{label: "Add Goal", run: a.addGoal},
		{label: "Toggle Goal", run: a.toggleGoal},
		{label: "Update Goal", run: a.updateGoal},
		{label: "Delete Goal", run: a.deleteGoal},
		{label: "How To Reach", run: a.howToReach},
		{label: "Back"},
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.label
	}

	for {
		writeTitle(a.out, "Goals")
		writeList(a.out, labels, ".")

		raw, err := a.readLine("> ")
		if err != nil {
			return err
		}
		choice, err := strconv.Atoi(raw)
		if err != nil || choice < 1 || choice > len(items) {
			fmt.Fprintln(a.out, invalidChoice)
			continue
		}

		item := items[choice-1]
		if item.run == nil {
			return nil
		}
		fmt.Fprintln(a.out)
		if err := item.run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			a.printError(err)
		}
		fmt.Fprintln(a.out)
	}
}

// listGoals prints every goal numbered from 1 and returns them.
func (a *App) listGoals(ctx context.Context) ([]*entity.Goal, error) {
	output, err := a.uc.ListGoals.Execute(ctx)
	if err != nil {
		return nil, err
	}
	if len(output.Goals) == 0 {
		fmt.Fprintln(a.out, "No goals yet.")
		return nil, nil
	}

	lines := make([]string, len(output.Goals))
	for i, g := range output.Goals {
		lines[i] = GoalLine(g)
	}
	writeList(a.out, lines, ")")
	return output.Goals, nil
}

func (a *App) selectGoal(ctx context.Context) (*entity.Goal, error) {
	goals, err := a.listGoals(ctx)
	if err != nil || len(goals) == 0 {
		return nil, err
	}
	idx, err := a.readSelection("Goal number (blank to cancel): ", len(goals))
	if err != nil || idx < 0 {
		return nil, err
	}
	return goals[idx], nil
}

func (a *App) showGoals(ctx context.Context) error {
	_, err := a.listGoals(ctx)
	return err
}

func (a *App) addGoal(ctx context.Context) error {
	names := make([]string, len(entity.NutrientFields))
	for i, f := range entity.NutrientFields {
		names[i] = string(f)
	}

	raw, err := a.readLine("Field (" + strings.Join(names, "/") + "): ")
	if err != nil || raw == "" {
		return err
	}
	value, err := a.readInt("Target value: ")
	if err != nil {
		return err
	}

	output, err := a.uc.CreateGoal.Execute(ctx, goal.CreateGoalInput{
		Field: entity.NutrientField(strings.ToLower(raw)),
		Value: value,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Added: "+GoalLine(output.Goal))
	return nil
}

func (a *App) toggleGoal(ctx context.Context) error {
	g, err := a.selectGoal(ctx)
	if err != nil || g == nil {
		return err
	}
	output, err := a.uc.ToggleGoal.Execute(ctx, goal.ToggleGoalInput{GoalID: g.ID})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Updated: "+GoalLine(output.Goal))
	return nil
}

func (a *App) updateGoal(ctx context.Context) error {
	g, err := a.selectGoal(ctx)
	if err != nil || g == nil {
		return err
	}
	value, err := a.readInt(fmt.Sprintf("New value [%d]: ", g.Value))
	if err != nil {
		return err
	}
	output, err := a.uc.UpdateGoal.Execute(ctx, goal.UpdateGoalInput{GoalID: g.ID, Value: value})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Updated: "+GoalLine(output.Goal))
	return nil
}

func (a *App) deleteGoal(ctx context.Context) error {
	g, err := a.selectGoal(ctx)
	if err != nil || g == nil {
		return err
	}
	if _, err := a.uc.DeleteGoal.Execute(ctx, goal.DeleteGoalInput{GoalID: g.ID}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted: "+GoalLine(g))
	return nil
}

func (a *App) howToReach(ctx context.Context) error {
	g, err := a.selectGoal(ctx)
	if err != nil || g == nil {
		return err
	}

	fmt.Fprintln(a.out)
	foods, err := a.listFoods(ctx)
	if err != nil || len(foods) == 0 {
		return err
	}
	idx, err := a.readSelection("Food number (blank to cancel): ", len(foods))
	if err != nil || idx < 0 {
		return err
	}

	output, err := a.uc.HowToReach.Execute(ctx, goal.HowToReachInput{GoalID: g.ID, FoodID: foods[idx].ID})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%sg of %s reaches %d %s\n",
		FormatNumber(output.Grams), output.Food.Name, output.Goal.Value, output.Goal.Field)
	return nil
}
