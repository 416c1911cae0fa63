package cli

import (
	"context"
	"fmt"

	"github.com/nutrition-tracker/backend/internal/application/usecase/goal"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// todayReport prints today's entries, their totals and the progress of active goals.
func (a *App) todayReport(ctx context.Context) error {
	today := entity.DateOf(a.clock.Now())
	fmt.Fprintln(a.out, Pad("Today's Report", "*", 3))

	if _, err := a.writeDay(ctx, today, false); err != nil {
		return err
	}

	progress, err := a.uc.GetProgress.Execute(ctx, goal.GetProgressInput{Date: &today})
	if err != nil {
		return err
	}
	if len(progress.Items) == 0 {
		return nil
	}

	fmt.Fprintln(a.out)
	writeTitle(a.out, "Goals")
	for _, item := range progress.Items {
		fmt.Fprintln(a.out, ProgressLine(item))
	}
	return nil
}
