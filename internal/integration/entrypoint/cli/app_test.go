package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrition-tracker/backend/internal/application/adapter/adaptertest"
	"github.com/nutrition-tracker/backend/internal/application/usecase/entry"
	"github.com/nutrition-tracker/backend/internal/application/usecase/food"
	"github.com/nutrition-tracker/backend/internal/application/usecase/goal"
	"github.com/nutrition-tracker/backend/internal/application/usecase/totals"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

var jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	uc      *UseCases
	clock   *adaptertest.Clock
	entries *adaptertest.EntryRepository
	foods   *adaptertest.FoodRepository
}

func newHarness() *harness {
	foods := adaptertest.NewFoodRepository()
	entries := adaptertest.NewEntryRepository()
	goals := adaptertest.NewGoalRepository()
	cache := adaptertest.NewTotalsCache()
	clock := adaptertest.NewClock(jan1.Add(12 * time.Hour))

	createFood := food.NewCreateFoodUseCase(foods)
	getTotals := totals.NewGetTotalsUseCase(entries, cache)

	return &harness{
		clock:   clock,
		entries: entries,
		foods:   foods,
		uc: &UseCases{
			CreateFood:         createFood,
			GetFood:            food.NewGetFoodUseCase(foods),
			UpdateFood:         food.NewUpdateFoodUseCase(foods),
			DeleteFoods:        food.NewDeleteFoodsUseCase(food.NewDeleteFoodUseCase(foods, entries)),
			ListFoods:          food.NewListFoodsUseCase(foods),
			ImportFoods:        food.NewImportFoodsUseCase(createFood),
			CreateEntry:        entry.NewCreateEntryUseCase(entries, foods, cache, clock),
			PreviewEntry:       entry.NewPreviewEntryUseCase(foods, clock),
			ListEntries:        entry.NewListEntriesUseCase(entries),
			ListAvailableDates: entry.NewListAvailableDatesUseCase(entries),
			DeleteEntries:      entry.NewDeleteEntriesUseCase(entries, cache),
			GetTotals:          getTotals,
			CreateGoal:         goal.NewCreateGoalUseCase(goals),
			ToggleGoal:         goal.NewToggleGoalUseCase(goals),
			UpdateGoal:         goal.NewUpdateGoalUseCase(goals),
			DeleteGoal:         goal.NewDeleteGoalUseCase(goals),
			ListGoals:          goal.NewListGoalsUseCase(goals),
			GetProgress:        goal.NewGetProgressUseCase(goals, getTotals, clock),
			HowToReach:         goal.NewHowToReachUseCase(goals, foods),
		},
	}
}

func (h *harness) run(t *testing.T, lines ...string) string {
	t.Helper()
	var out strings.Builder
	input := strings.Join(lines, "\n") + "\n"
	app := NewApp(h.uc, h.clock, strings.NewReader(input), &out)
	require.NoError(t, app.Run(context.Background()))
	return out.String()
}

func (h *harness) addRice(t *testing.T) *entity.Food {
	t.Helper()
	output, err := h.uc.CreateFood.Execute(context.Background(), food.CreateFoodInput{
		Name: "Rice", Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28,
	})
	require.NoError(t, err)
	return output.Food
}

func (h *harness) addEntry(t *testing.T, f *entity.Food, weight float64) {
	t.Helper()
	_, err := h.uc.CreateEntry.Execute(context.Background(), entry.CreateEntryInput{FoodID: f.ID, Weight: weight, Date: jan1})
	require.NoError(t, err)
	h.clock.Advance(time.Minute)
}

func TestApp_BannerAndExit(t *testing.T) {
	out := newHarness().run(t, "11")

	assert.True(t, strings.HasPrefix(out, "===== Nutrition App =====\n"))
	assert.Contains(t, out, "1. Add Entries")
	assert.Contains(t, out, "11. Exit")
	assert.Contains(t, out, "Goodbye!")
}

func TestApp_EndOfInputExitsCleanly(t *testing.T) {
	var out strings.Builder
	app := NewApp(newHarness().uc, adaptertest.NewClock(jan1), strings.NewReader(""), &out)

	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_EndOfInputInsideAFlow(t *testing.T) {
	var out strings.Builder
	app := NewApp(newHarness().uc, adaptertest.NewClock(jan1), strings.NewReader("3\nRice\n"), &out)

	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_InvalidChoice(t *testing.T) {
	out := newHarness().run(t, "abc", "99", "11")

	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Enter a number."))
}

func TestApp_Echo(t *testing.T) {
	h := newHarness()
	var out strings.Builder
	app := NewApp(h.uc, h.clock, strings.NewReader("11\n"), &out)
	app.SetEcho(true)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "> 11\n")
}

func TestApp_AddAndShowFoods(t *testing.T) {
	out := newHarness().run(t,
		"3", "Rice", "", "130", "2.7", "0.3", "28", "", "n",
		"4",
		"11",
	)

	assert.Contains(t, out, "Added: Rice (100g): 130 cals | 2.70g protein | 0.30g fat | 28g carbs")
	assert.Contains(t, out, "1) Rice (100g): 130 cals | 2.70g protein | 0.30g fat | 28g carbs")
}

func TestApp_AddFoodDuplicateName(t *testing.T) {
	h := newHarness()
	h.addRice(t)

	out := h.run(t, "3", "Rice", "", "1", "1", "1", "1", "", "n", "11")

	assert.Contains(t, out, "Error [FOD-010002]")
	count, _ := h.foods.Count(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestApp_UpdateFood(t *testing.T) {
	h := newHarness()
	rice := h.addRice(t)

	out := h.run(t, "5", "1", "", "", "111", "", "", "", "usda", "11")

	assert.Contains(t, out, "Updated: Rice (100g): 111 cals | 2.70g protein | 0.30g fat | 28g carbs [usda]")
	stored, err := h.foods.FindByID(context.Background(), rice.ID)
	require.NoError(t, err)
	assert.Equal(t, 111.0, stored.Calories)
}

func TestApp_AddEntryWithPreview(t *testing.T) {
	h := newHarness()
	h.addRice(t)

	out := h.run(t, "1", "1", "200", "2024-01-01", "y", "n", "11")

	assert.Contains(t, out, "2024-01-01: Rice (200g): 260 cals | 5.40g protein | 0.60g fat | 56g carbs")
	assert.Contains(t, out, "Saved.")
	all, _ := h.entries.FindAll(context.Background())
	assert.Len(t, all, 1)
}

func TestApp_AddEntryDeclined(t *testing.T) {
	h := newHarness()
	h.addRice(t)

	h.run(t, "1", "1", "200", "", "n", "n", "11")

	all, _ := h.entries.FindAll(context.Background())
	assert.Empty(t, all)
}

func TestApp_AddEntryInvalidWeight(t *testing.T) {
	h := newHarness()
	h.addRice(t)

	out := h.run(t, "1", "1", "0", "", "n", "11")

	assert.Contains(t, out, "Error [ENT-010001]")
}

func TestApp_NonFiniteNumbersAreRejected(t *testing.T) {
	h := newHarness()
	h.addRice(t)

	out := h.run(t,
		"1", "1", "nan", "", "n",
		"3", "Weird", "inf", "1", "1", "1", "1", "", "n",
		"3", "Odd", "", "infinity", "1", "1", "1", "", "n",
		"11",
	)

	assert.Contains(t, out, "Error [ENT-010001]")
	assert.Contains(t, out, "Error [FOD-010004]")
	assert.Contains(t, out, "Error [FOD-010005]")
	assert.Contains(t, out, "Goodbye!")
	count, _ := h.foods.Count(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestApp_AddEntryWithNewFood(t *testing.T) {
	h := newHarness()

	out := h.run(t, "1", "n", "Oats", "", "389", "16.9", "6.9", "66.3", "", "50", "", "y", "n", "11")

	assert.Contains(t, out, "2024-01-01: Oats (50g): 194.50 cals | 8.45g protein | 3.45g fat | 33.15g carbs")
	all, _ := h.entries.FindAll(context.Background())
	require.Len(t, all, 1)
	assert.True(t, all[0].Date.Equal(jan1))
}

func TestApp_TodayReport(t *testing.T) {
	h := newHarness()
	rice := h.addRice(t)
	h.addEntry(t, rice, 200)
	_, err := h.uc.CreateGoal.Execute(context.Background(), goal.CreateGoalInput{Field: entity.NutrientCalories, Value: 2000})
	require.NoError(t, err)

	out := h.run(t, "2", "11")

	assert.Contains(t, out, "Rice (200g): 260 cals | 5.40g protein | 0.60g fat | 56g carbs")
	assert.Contains(t, out, "TOTALS: 260 cals | 5.40g pro | 0.60g fat | 56g carbs")
	assert.Contains(t, out, "Calories: 260 of 2000, 1740 remaining")
}

func TestApp_ShowAndDeleteEntries(t *testing.T) {
	h := newHarness()
	rice := h.addRice(t)
	h.addEntry(t, rice, 100)
	h.addEntry(t, rice, 200)

	out := h.run(t, "8", "1", "7", "1", "2", "11")

	assert.Contains(t, out, "1) 2024-01-01")
	assert.Contains(t, out, "TOTALS: 390 cals")
	assert.Contains(t, out, "Deleted 1 entry(ies).")
	left, _ := h.entries.FindAll(context.Background())
	require.Len(t, left, 1)
	assert.Equal(t, 100.0, left[0].Weight)
}

func TestApp_DeleteFoodsReportsSkipped(t *testing.T) {
	h := newHarness()
	rice := h.addRice(t)
	h.addEntry(t, rice, 100)
	_, err := h.uc.CreateFood.Execute(context.Background(), food.CreateFoodInput{Name: "Apple", Calories: 52})
	require.NoError(t, err)

	out := h.run(t, "6", "1, 2", "11")

	assert.Contains(t, out, "Deleted 1 food(s).")
	assert.Contains(t, out, "Skipped Rice:")
}

func TestApp_ImportFoods(t *testing.T) {
	h := newHarness()
	path := filepath.Join(t.TempDir(), "foods.json")
	data := `[{"name": "Oats", "calories": 389}, {"name": "Apple", "calories": 52}, {"name": "Oats", "calories": 1}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	out := h.run(t, "9", path, "11")

	assert.Contains(t, out, "Imported 2 food(s).")
	assert.Contains(t, out, "Skipped Oats:")
}

func TestApp_Goals(t *testing.T) {
	h := newHarness()
	h.addRice(t)

	out := h.run(t,
		"10",
		"2", "protein", "120",
		"2", "sugar", "100",
		"6", "1", "1",
		"3", "1",
		"1",
		"7",
		"11",
	)

	assert.Contains(t, out, "Added: Protein (active): 120")
	assert.Contains(t, out, "Error [GOL-010002]")
	assert.Contains(t, out, "4444.44g of Rice reaches 120 protein")
	assert.Contains(t, out, "Updated: Protein (inactive): 120")
	assert.Contains(t, out, "1) Protein (inactive): 120")
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "260", FormatNumber(260))
	assert.Equal(t, "5.40", FormatNumber(5.4))
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "-500", FormatNumber(-500))
	assert.Equal(t, "0.33", FormatNumber(1.0/3))
}

func TestProgressLine_Over(t *testing.T) {
	g := entity.NewGoal(entity.NutrientCalories, 2000, true)
	line := ProgressLine(entity.GoalProgress{Goal: g, Consumed: 2500, Remaining: -500})

	assert.Equal(t, "Calories: 2500 of 2000, 500 over", line)
}

func TestParseSelections(t *testing.T) {
	got, err := parseSelections("3, 1,3,", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, got)

	_, err = parseSelections("4", 3)
	assert.Error(t, err)

	_, err = parseSelections("x", 3)
	assert.Error(t, err)
}
