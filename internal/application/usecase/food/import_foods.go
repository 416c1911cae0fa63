package food

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// ImportedFood is one element of a food import file.
type ImportedFood struct {
	Name            string   `json:"name"`
	ReferenceWeight *float64 `json:"reference_weight,omitempty"`
	Calories        float64  `json:"calories"`
	Protein         float64  `json:"protein"`
	Fat             float64  `json:"fat"`
	Carbs           float64  `json:"carbs"`
	Source          *string  `json:"source,omitempty"`
}

// ImportFoodsInput represents the input for a batch food import.
type ImportFoodsInput struct {
	Reader io.Reader // JSON array of ImportedFood
}

// SkippedImport describes an imported row that was not created.
type SkippedImport struct {
	Name string
	Err  error
}

// ImportFoodsOutput represents the output of a batch food import.
type ImportFoodsOutput struct {
	Created []*entity.Food
	Skipped []SkippedImport
}

// ImportFoodsUseCase creates foods from a JSON document.
// Rows rejected by validation or uniqueness are skipped.
type ImportFoodsUseCase struct {
	createFood *CreateFoodUseCase
}

// NewImportFoodsUseCase creates a new ImportFoodsUseCase instance.
func NewImportFoodsUseCase(createFood *CreateFoodUseCase) *ImportFoodsUseCase {
	return &ImportFoodsUseCase{
		createFood: createFood,
	}
}

// Execute performs the import.
func (uc *ImportFoodsUseCase) Execute(ctx context.Context, input ImportFoodsInput) (*ImportFoodsOutput, error) {
	var rows []ImportedFood
	if err := json.NewDecoder(input.Reader).Decode(&rows); err != nil {
		return nil, domainerror.NewFoodError(
			domainerror.ErrCodeInvalidFoodImport,
			"food import must be a JSON array of foods",
			errors.Join(domainerror.ErrInvalidFoodImport, err),
		)
	}

	output := &ImportFoodsOutput{
		Created: make([]*entity.Food, 0, len(rows)),
	}

	for _, row := range rows {
		result, err := uc.createFood.Execute(ctx, CreateFoodInput{
			Name:            row.Name,
			ReferenceWeight: row.ReferenceWeight,
			Calories:        row.Calories,
			Protein:         row.Protein,
			Fat:             row.Fat,
			Carbs:           row.Carbs,
			Source:          row.Source,
		})
		if err != nil {
			var foodErr *domainerror.FoodError
			if !errors.As(err, &foodErr) {
				return output, err
			}
			slog.Info("Skipping imported food", "name", row.Name, "code", foodErr.Code)
			output.Skipped = append(output.Skipped, SkippedImport{Name: row.Name, Err: err})
			continue
		}
		output.Created = append(output.Created, result.Food)
	}

	slog.Info("Food import completed",
		"created", len(output.Created),
		"skipped", len(output.Skipped),
	)

	return output, nil
}
