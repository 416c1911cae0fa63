// Package dependency provides dependency injection for the application.
package dependency

import (
	"io"

	"gorm.io/gorm"

	"github.com/nutrition-tracker/backend/config"
	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/application/usecase/entry"
	"github.com/nutrition-tracker/backend/internal/application/usecase/food"
	"github.com/nutrition-tracker/backend/internal/application/usecase/goal"
	"github.com/nutrition-tracker/backend/internal/application/usecase/totals"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/cli"
	"github.com/nutrition-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	DB       *gorm.DB
	Clock    adapter.Clock
	UseCases *cli.UseCases
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, cache adapter.TotalsCache, clock adapter.Clock) *Injector {
	// Create repositories
	foodRepo := persistence.NewFoodRepository(db)
	entryRepo := persistence.NewEntryRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Create food use cases
	createFoodUseCase := food.NewCreateFoodUseCase(foodRepo)
	deleteFoodUseCase := food.NewDeleteFoodUseCase(foodRepo, entryRepo)

	// Create totals use case, shared by the entry listing and goal progress
	getTotalsUseCase := totals.NewGetTotalsUseCase(entryRepo, cache)

	uc := &cli.UseCases{
		CreateFood:  createFoodUseCase,
		GetFood:     food.NewGetFoodUseCase(foodRepo),
		UpdateFood:  food.NewUpdateFoodUseCase(foodRepo),
		DeleteFoods: food.NewDeleteFoodsUseCase(deleteFoodUseCase),
		ListFoods:   food.NewListFoodsUseCase(foodRepo),
		ImportFoods: food.NewImportFoodsUseCase(createFoodUseCase),

		CreateEntry:        entry.NewCreateEntryUseCase(entryRepo, foodRepo, cache, clock),
		PreviewEntry:       entry.NewPreviewEntryUseCase(foodRepo, clock),
		ListEntries:        entry.NewListEntriesUseCase(entryRepo),
		ListAvailableDates: entry.NewListAvailableDatesUseCase(entryRepo),
		DeleteEntries:      entry.NewDeleteEntriesUseCase(entryRepo, cache),

		GetTotals: getTotalsUseCase,

		CreateGoal:  goal.NewCreateGoalUseCase(goalRepo),
		ToggleGoal:  goal.NewToggleGoalUseCase(goalRepo),
		UpdateGoal:  goal.NewUpdateGoalUseCase(goalRepo),
		DeleteGoal:  goal.NewDeleteGoalUseCase(goalRepo),
		ListGoals:   goal.NewListGoalsUseCase(goalRepo),
		GetProgress: goal.NewGetProgressUseCase(goalRepo, getTotalsUseCase, clock),
		HowToReach:  goal.NewHowToReachUseCase(goalRepo, foodRepo),
	}

	return &Injector{
		Config:   cfg,
		DB:       db,
		Clock:    clock,
		UseCases: uc,
	}
}

// NewApp creates the terminal application over the wired use cases.
func (i *Injector) NewApp(in io.Reader, out io.Writer) *cli.App {
	return cli.NewApp(i.UseCases, i.Clock, in, out)
}
