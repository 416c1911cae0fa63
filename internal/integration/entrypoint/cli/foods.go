package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/usecase/food"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

func (a *App) addFoods(ctx context.Context) error {
	writeTitle(a.out, "Add Foods")
	for {
		f, err := a.promptNewFood(ctx)
		if err != nil {
			if !isDomainError(err) {
				return err
			}
			a.printError(err)
		} else if f != nil {
			fmt.Fprintln(a.out, "Added: "+FoodLine(f))
		}

		more, err := a.confirm("Add another?")
		if err != nil || !more {
			return err
		}
	}
}

// promptNewFood asks for every food field and creates the food.
// A blank name cancels and returns a nil food.
func (a *App) promptNewFood(ctx context.Context) (*entity.Food, error) {
	name, err := a.readLine("Name: ")
	if err != nil || name == "" {
		return nil, err
	}

	refWeight, err := a.readFloat(fmt.Sprintf("Reference weight in grams [%s]: ", FormatNumber(entity.DefaultReferenceWeight)), true)
	if err != nil {
		return nil, err
	}

	var values [4]float64
	for i, field := range entity.NutrientFields {
		v, err := a.readFloat(field.Label()+": ", false)
		if err != nil {
			return nil, err
		}
		values[i] = *v
	}

	source, err := a.readLine("Source (optional): ")
	if err != nil {
		return nil, err
	}

	input := food.CreateFoodInput{
		Name:            name,
		ReferenceWeight: refWeight,
		Calories:        values[0],
		Protein:         values[1],
		Fat:             values[2],
		Carbs:           values[3],
	}
	if source != "" {
		input.Source = &source
	}

	output, err := a.uc.CreateFood.Execute(ctx, input)
	if err != nil {
		return nil, err
	}
	return output.Food, nil
}

// listFoods prints the catalog numbered from 1 and returns it.
func (a *App) listFoods(ctx context.Context) ([]*entity.Food, error) {
	output, err := a.uc.ListFoods.Execute(ctx, food.ListFoodsInput{})
	if err != nil {
		return nil, err
	}
	if len(output.Foods) == 0 {
		fmt.Fprintln(a.out, "No foods yet.")
		return nil, nil
	}

	lines := make([]string, len(output.Foods))
	for i, f := range output.Foods {
		lines[i] = FoodLine(f)
	}
	writeList(a.out, lines, ")")
	return output.Foods, nil
}

func (a *App) showFoods(ctx context.Context) error {
	writeTitle(a.out, "Foods")
	_, err := a.listFoods(ctx)
	return err
}

func (a *App) updateFoods(ctx context.Context) error {
	writeTitle(a.out, "Update Foods")
	foods, err := a.listFoods(ctx)
	if err != nil || len(foods) == 0 {
		return err
	}

	idx, err := a.readSelection("Food number (blank to cancel): ", len(foods))
	if err != nil || idx < 0 {
		return err
	}
	selected, err := a.uc.GetFood.Execute(ctx, food.GetFoodInput{FoodID: foods[idx].ID})
	if err != nil {
		return err
	}
	current := selected.Food

	fmt.Fprintln(a.out, "Leave a field blank to keep its value.")
	input := food.UpdateFoodInput{FoodID: current.ID}

	name, err := a.readLine(fmt.Sprintf("Name [%s]: ", current.Name))
	if err != nil {
		return err
	}
	if name != "" {
		input.Name = &name
	}

	if input.ReferenceWeight, err = a.readFloat(
		fmt.Sprintf("Reference weight in grams [%s]: ", FormatNumber(current.ReferenceWeight)), true); err != nil {
		return err
	}

	targets := []**float64{&input.Calories, &input.Protein, &input.Fat, &input.Carbs}
	currentValues := current.Nutrients()
	for i, field := range entity.NutrientFields {
		v, err := a.readFloat(fmt.Sprintf("%s [%s]: ", field.Label(), FormatNumber(currentValues.Get(field))), true)
		if err != nil {
			return err
		}
		*targets[i] = v
	}

	currentSource := ""
	if current.Source != nil {
		currentSource = *current.Source
	}
	source, err := a.readLine(fmt.Sprintf("Source [%s]: ", currentSource))
	if err != nil {
		return err
	}
	if source != "" {
		input.Source = &source
	}

	output, err := a.uc.UpdateFood.Execute(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Updated: "+FoodLine(output.Food))
	return nil
}

func (a *App) deleteFoods(ctx context.Context) error {
	writeTitle(a.out, "Delete Foods")
	foods, err := a.listFoods(ctx)
	if err != nil || len(foods) == 0 {
		return err
	}

	raw, err := a.readLine("Foods to delete (comma-separated numbers): ")
	if err != nil || raw == "" {
		return err
	}
	indexes, err := parseSelections(raw, len(foods))
	if err != nil {
		fmt.Fprintln(a.out, invalidChoice)
		return nil
	}

	names := make(map[uuid.UUID]string, len(indexes))
	input := food.DeleteFoodsInput{}
	for _, i := range indexes {
		input.FoodIDs = append(input.FoodIDs, foods[i].ID)
		names[foods[i].ID] = foods[i].Name
	}

	output, err := a.uc.DeleteFoods.Execute(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted %d food(s).\n", len(output.DeletedIDs))
	for _, s := range output.Skipped {
		fmt.Fprintf(a.out, "Skipped %s: %v\n", names[s.FoodID], s.Err)
	}
	return nil
}

func (a *App) importFoods(ctx context.Context) error {
	writeTitle(a.out, "Import Foods")
	path, err := a.readLine("Path to JSON file: ")
	if err != nil || path == "" {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot open %s: %v\n", path, err)
		return nil
	}
	defer file.Close()

	output, err := a.uc.ImportFoods.Execute(ctx, food.ImportFoodsInput{Reader: file})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Imported %d food(s).\n", len(output.Created))
	for _, s := range output.Skipped {
		fmt.Fprintf(a.out, "Skipped %s: %v\n", s.Name, s.Err)
	}
	return nil
}
