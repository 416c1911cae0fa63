package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/usecase/entry"
	"github.com/nutrition-tracker/backend/internal/application/usecase/totals"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

func (a *App) addEntries(ctx context.Context) error {
	writeTitle(a.out, "Add Entries")
	for {
		if err := a.addEntry(ctx); err != nil {
			if !isDomainError(err) {
				return err
			}
			a.printError(err)
		}

		more, err := a.confirm("Add another?")
		if err != nil || !more {
			return err
		}
	}
}

// addEntry picks or creates a food, previews the entry and saves it on confirmation.
func (a *App) addEntry(ctx context.Context) error {
	f, err := a.chooseFoodForEntry(ctx)
	if err != nil || f == nil {
		return err
	}

	weight, err := a.readFloat("Weight in grams: ", false)
	if err != nil {
		return err
	}
	date, err := a.readDate("Date (YYYY-MM-DD, blank for today): ")
	if err != nil {
		return err
	}

	preview, err := a.uc.PreviewEntry.Execute(ctx, entry.PreviewEntryInput{
		FoodID: f.ID,
		Weight: *weight,
		Date:   date,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, entity.FormatDate(preview.Entry.Date)+": "+EntryLine(preview.Entry))

	save, err := a.confirm("Save?")
	if err != nil || !save {
		return err
	}

	if _, err := a.uc.CreateEntry.Execute(ctx, entry.CreateEntryInput{
		FoodID: f.ID,
		Weight: *weight,
		Date:   date,
	}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved.")
	return nil
}

// chooseFoodForEntry returns the selected food, a newly created one for "n", or nil on a blank answer.
func (a *App) chooseFoodForEntry(ctx context.Context) (*entity.Food, error) {
	foods, err := a.listFoods(ctx)
	if err != nil {
		return nil, err
	}

	for {
		raw, err := a.readLine("Food number (n for a new food, blank to cancel): ")
		if err != nil || raw == "" {
			return nil, err
		}
		if strings.EqualFold(raw, "n") {
			return a.promptNewFood(ctx)
		}
		indexes, err := parseSelections(raw, len(foods))
		if err == nil && len(indexes) == 1 {
			return foods[indexes[0]], nil
		}
		fmt.Fprintln(a.out, invalidChoice)
	}
}

// chooseDate lists the dates that have entries and returns the picked one.
func (a *App) chooseDate(ctx context.Context) (*time.Time, error) {
	output, err := a.uc.ListAvailableDates.Execute(ctx)
	if err != nil {
		return nil, err
	}
	if len(output.Dates) == 0 {
		fmt.Fprintln(a.out, "No entries yet.")
		return nil, nil
	}

	lines := make([]string, len(output.Dates))
	for i, d := range output.Dates {
		lines[i] = entity.FormatDate(d)
	}
	writeList(a.out, lines, ")")

	idx, err := a.readSelection("Date number (blank to cancel): ", len(output.Dates))
	if err != nil || idx < 0 {
		return nil, err
	}
	return &output.Dates[idx], nil
}

// writeDay prints the entries of one day followed by their totals.
func (a *App) writeDay(ctx context.Context, date time.Time, numbered bool) ([]*entity.Entry, error) {
	output, err := a.uc.ListEntries.Execute(ctx, entry.ListEntriesInput{Date: date})
	if err != nil {
		return nil, err
	}

	writeTitle(a.out, entity.FormatDate(output.Date))
	if len(output.Entries) == 0 {
		fmt.Fprintln(a.out, "No entries.")
	}
	lines := make([]string, len(output.Entries))
	for i, e := range output.Entries {
		lines[i] = EntryLine(e)
	}
	if numbered {
		writeList(a.out, lines, ")")
	} else {
		for _, line := range lines {
			fmt.Fprintln(a.out, line)
		}
	}

	sum, err := a.uc.GetTotals.Execute(ctx, totals.GetTotalsInput{Date: &output.Date})
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(a.out, TotalsLine(sum.Totals))
	return output.Entries, nil
}

func (a *App) showEntries(ctx context.Context) error {
	writeTitle(a.out, "Show Entries")
	date, err := a.chooseDate(ctx)
	if err != nil || date == nil {
		return err
	}
	fmt.Fprintln(a.out)
	_, err = a.writeDay(ctx, *date, false)
	return err
}

func (a *App) deleteEntries(ctx context.Context) error {
	writeTitle(a.out, "Delete Entries")
	date, err := a.chooseDate(ctx)
	if err != nil || date == nil {
		return err
	}

	fmt.Fprintln(a.out)
	entries, err := a.writeDay(ctx, *date, true)
	if err != nil || len(entries) == 0 {
		return err
	}

	raw, err := a.readLine("Entries to delete (comma-separated numbers): ")
	if err != nil || raw == "" {
		return err
	}
	indexes, err := parseSelections(raw, len(entries))
	if err != nil {
		fmt.Fprintln(a.out, invalidChoice)
		return nil
	}

	ids := make([]uuid.UUID, len(indexes))
	for i, idx := range indexes {
		ids[i] = entries[idx].ID
	}

	output, err := a.uc.DeleteEntries.Execute(ctx, entry.DeleteEntriesInput{EntryIDs: ids})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %d entry(ies).\n", output.DeletedCount)
	if len(output.Skipped) > 0 {
		fmt.Fprintf(a.out, "Skipped %d missing entry(ies).\n", len(output.Skipped))
	}
	return nil
}
