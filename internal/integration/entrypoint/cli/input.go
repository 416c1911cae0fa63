package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// readLine prints prompt and reads one trimmed line.
// A final line without a newline is still returned; io.EOF is returned only when nothing was read.
func (a *App) readLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(a.out, prompt); err != nil {
		return "", err
	}
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			err = nil
		} else {
			return "", err
		}
	}
	line = strings.TrimSpace(line)
	if a.echo {
		fmt.Fprintln(a.out, line)
	}
	return line, nil
}

// confirm asks a y/n question; anything but "y" is a no.
func (a *App) confirm(prompt string) (bool, error) {
	answer, err := a.readLine(prompt + " (y/n): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// readFloat reads a number, asking again until the input parses.
// When optional is true a blank answer returns nil.
func (a *App) readFloat(prompt string, optional bool) (*float64, error) {
	for {
		raw, err := a.readLine(prompt)
		if err != nil {
			return nil, err
		}
		if raw == "" && optional {
			return nil, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return &v, nil
		}
		fmt.Fprintln(a.out, "Invalid number.")
	}
}

// readInt reads an integer, asking again until the input parses.
func (a *App) readInt(prompt string) (int, error) {
	for {
		raw, err := a.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(a.out, "Invalid number.")
	}
}

// readDate reads a YYYY-MM-DD date. A blank answer means today.
func (a *App) readDate(prompt string) (time.Time, error) {
	for {
		raw, err := a.readLine(prompt)
		if err != nil {
			return time.Time{}, err
		}
		if raw == "" {
			return entity.DateOf(a.clock.Now()), nil
		}
		d, err := entity.ParseDate(raw)
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(a.out, "Invalid date. Use YYYY-MM-DD.")
	}
}

// readSelection reads a 1-based index into a list of n items.
// A blank answer returns -1.
func (a *App) readSelection(prompt string, n int) (int, error) {
	for {
		raw, err := a.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if raw == "" {
			return -1, nil
		}
		idx, err := strconv.Atoi(raw)
		if err == nil && idx >= 1 && idx <= n {
			return idx - 1, nil
		}
		fmt.Fprintln(a.out, invalidChoice)
	}
}

// parseSelections turns "1, 3,4" into zero-based indexes into a list of n items.
func parseSelections(raw string, n int) ([]int, error) {
	parts := strings.Split(raw, ",")
	indexes := make([]int, 0, len(parts))
	seen := make(map[int]bool, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		idx, err := strconv.Atoi(p)
		if err != nil || idx < 1 || idx > n {
			return nil, fmt.Errorf("invalid selection %q", p)
		}
		if !seen[idx-1] {
			seen[idx-1] = true
			indexes = append(indexes, idx-1)
		}
	}
	return indexes, nil
}
