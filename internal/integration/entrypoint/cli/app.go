// Package cli implements the interactive terminal front end of the nutrition tracker.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/application/usecase/entry"
	"github.com/nutrition-tracker/backend/internal/application/usecase/food"
	"github.com/nutrition-tracker/backend/internal/application/usecase/goal"
	"github.com/nutrition-tracker/backend/internal/application/usecase/totals"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

const invalidChoice = "Invalid choice. Enter a number."

// UseCases groups every use case the CLI drives.
type UseCases struct {
	CreateFood  *food.CreateFoodUseCase
	GetFood     *food.GetFoodUseCase
	UpdateFood  *food.UpdateFoodUseCase
	DeleteFoods *food.DeleteFoodsUseCase
	ListFoods   *food.ListFoodsUseCase
	ImportFoods *food.ImportFoodsUseCase

	CreateEntry        *entry.CreateEntryUseCase
	PreviewEntry       *entry.PreviewEntryUseCase
	ListEntries        *entry.ListEntriesUseCase
	ListAvailableDates *entry.ListAvailableDatesUseCase
	DeleteEntries      *entry.DeleteEntriesUseCase

	GetTotals *totals.GetTotalsUseCase

	CreateGoal  *goal.CreateGoalUseCase
	ToggleGoal  *goal.ToggleGoalUseCase
	UpdateGoal  *goal.UpdateGoalUseCase
	DeleteGoal  *goal.DeleteGoalUseCase
	ListGoals   *goal.ListGoalsUseCase
	GetProgress *goal.GetProgressUseCase
	HowToReach  *goal.HowToReachUseCase
}

type menuItem struct {
	label string
	run   func(ctx context.Context) error
}

// App is the menu-driven terminal session.
type App struct {
	uc     *UseCases
	clock  adapter.Clock
	reader *bufio.Reader
	out    io.Writer
	echo   bool
	menu   []menuItem
}

// NewApp creates a new App reading from in and writing to out.
func NewApp(uc *UseCases, clock adapter.Clock, in io.Reader, out io.Writer) *App {
	a := &App{
		uc:     uc,
		clock:  clock,
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.menu = []menuItem{
		{label: "Add Entries", run: a.addEntries},
		{label: "View Today's Report", run: a.todayReport},
		{label: "Add Foods", run: a.addFoods},
		{label: "Show Foods", run: a.showFoods},
		{label: "Update Foods", run: a.updateFoods},
		{label: "Delete Foods", run: a.deleteFoods},
		{label: "Delete Entries", run: a.deleteEntries},
		{label: "Show Entries", run: a.showEntries},
		{label: "Import Foods", run: a.importFoods},
		{label: "Goals", run: a.goalsMenu},
		{label: "Exit"},
	}
	return a
}

// SetEcho makes the app repeat every line it reads.
// Useful when input is piped and would otherwise not appear in the transcript.
func (a *App) SetEcho(echo bool) {
	a.echo = echo
}

// Run prints the banner and serves the main menu until Exit is chosen or input ends.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, Pad("Nutrition App", "=", 5))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(a.out)
		labels := make([]string, len(a.menu))
		for i, item := range a.menu {
			labels[i] = item.label
		}
		writeList(a.out, labels, ".")

		raw, err := a.readLine("> ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out)
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(raw)
		if err != nil || choice < 1 || choice > len(a.menu) {
			fmt.Fprintln(a.out, invalidChoice)
			continue
		}

		item := a.menu[choice-1]
		if item.run == nil {
			fmt.Fprintln(a.out, "Goodbye!")
			return nil
		}

		fmt.Fprintln(a.out)
		if err := item.run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out)
				return nil
			}
			a.printError(err)
		}
	}
}

// printError shows domain errors to the user and hides everything else behind a log line.
func (a *App) printError(err error) {
	var foodErr *domainerror.FoodError
	var entryErr *domainerror.EntryError
	var goalErr *domainerror.GoalError

	switch {
	case errors.As(err, &foodErr):
		fmt.Fprintf(a.out, "Error [%s]: %s\n", foodErr.Code, foodErr.Message)
	case errors.As(err, &entryErr):
		fmt.Fprintf(a.out, "Error [%s]: %s\n", entryErr.Code, entryErr.Message)
	case errors.As(err, &goalErr):
		fmt.Fprintf(a.out, "Error [%s]: %s\n", goalErr.Code, goalErr.Message)
	default:
		slog.Error("Operation failed", "error", err)
		fmt.Fprintln(a.out, "An internal error occurred")
	}
}

// isDomainError reports whether err is a user-facing validation or lookup error.
func isDomainError(err error) bool {
	var foodErr *domainerror.FoodError
	var entryErr *domainerror.EntryError
	var goalErr *domainerror.GoalError
	return errors.As(err, &foodErr) || errors.As(err, &entryErr) || errors.As(err, &goalErr)
}
