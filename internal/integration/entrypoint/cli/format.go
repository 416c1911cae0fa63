package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// FormatNumber prints integral values without decimals and anything else with two.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// NutritionLine renders "{name} ({weight}g): {cal} cals | {p}g protein | {f}g fat | {c}g carbs".
func NutritionLine(name string, weight float64, n entity.Nutrients) string {
	return fmt.Sprintf("%s (%sg): %s cals | %sg protein | %sg fat | %sg carbs",
		name,
		FormatNumber(weight),
		FormatNumber(n.Calories),
		FormatNumber(n.Protein),
		FormatNumber(n.Fat),
		FormatNumber(n.Carbs),
	)
}

// FoodLine renders a food at its reference weight.
func FoodLine(f *entity.Food) string {
	line := NutritionLine(f.Name, f.ReferenceWeight, f.Nutrients())
	if f.Source != nil && *f.Source != "" {
		line += " [" + *f.Source + "]"
	}
	return line
}

// EntryLine renders an entry with the nutrients stored on it.
func EntryLine(e *entity.Entry) string {
	name := e.FoodName()
	if name == "" {
		name = "(deleted food)"
	}
	return NutritionLine(name, e.Weight, e.Nutrients())
}

// TotalsLine renders aggregated totals.
func TotalsLine(n entity.Nutrients) string {
	return fmt.Sprintf("TOTALS: %s cals | %sg pro | %sg fat | %sg carbs",
		FormatNumber(n.Calories),
		FormatNumber(n.Protein),
		FormatNumber(n.Fat),
		FormatNumber(n.Carbs),
	)
}

// GoalLine renders "Field (active): value".
func GoalLine(g *entity.Goal) string {
	state := "inactive"
	if g.Active {
		state = "active"
	}
	return fmt.Sprintf("%s (%s): %d", g.Field.Label(), state, g.Value)
}

// ProgressLine renders how much of a goal is left, or by how much it was exceeded.
func ProgressLine(p entity.GoalProgress) string {
	if p.Remaining < 0 {
		return fmt.Sprintf("%s: %s of %d, %s over",
			p.Goal.Field.Label(), FormatNumber(p.Consumed), p.Goal.Value, FormatNumber(-p.Remaining))
	}
	return fmt.Sprintf("%s: %s of %d, %s remaining",
		p.Goal.Field.Label(), FormatNumber(p.Consumed), p.Goal.Value, FormatNumber(p.Remaining))
}

// Pad surrounds text with length copies of symbol on each side.
func Pad(text, symbol string, length int) string {
	edge := strings.Repeat(symbol, length)
	return edge + " " + text + " " + edge
}

func writeTitle(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len([]rune(title))))
}

// writeList prints items numbered from 1, each followed by symbol.
func writeList(w io.Writer, items []string, symbol string) {
	for i, item := range items {
		fmt.Fprintf(w, "%d%s %s\n", i+1, symbol, item)
	}
}
