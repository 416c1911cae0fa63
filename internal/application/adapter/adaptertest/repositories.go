// Package adaptertest provides in-memory adapter implementations for use case tests.
package adaptertest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// FoodRepository is an in-memory adapter.FoodRepository.
// When Err is set every call fails with it.
type FoodRepository struct {
	mu    sync.Mutex
	foods map[uuid.UUID]entity.Food
	Err   error
}

// NewFoodRepository creates an empty FoodRepository.
func NewFoodRepository() *FoodRepository {
	return &FoodRepository{foods: make(map[uuid.UUID]entity.Food)}
}

func (r *FoodRepository) Create(_ context.Context, food *entity.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, f := range r.foods {
		if f.Name == food.Name {
			return domainerror.ErrFoodNameExists
		}
	}
	r.foods[food.ID] = *food
	return nil
}

func (r *FoodRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	f, ok := r.foods[id]
	if !ok {
		return nil, domainerror.ErrFoodNotFound
	}
	return &f, nil
}

func (r *FoodRepository) FindAll(_ context.Context) ([]*entity.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	foods := make([]*entity.Food, 0, len(r.foods))
	for _, f := range r.foods {
		f := f
		foods = append(foods, &f)
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].Name < foods[j].Name })
	return foods, nil
}

func (r *FoodRepository) Update(_ context.Context, food *entity.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.foods[food.ID]; !ok {
		return domainerror.ErrFoodNotFound
	}
	for id, f := range r.foods {
		if id != food.ID && f.Name == food.Name {
			return domainerror.ErrFoodNameExists
		}
	}
	r.foods[food.ID] = *food
	return nil
}

func (r *FoodRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.foods[id]; !ok {
		return domainerror.ErrFoodNotFound
	}
	delete(r.foods, id)
	return nil
}

func (r *FoodRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	for _, f := range r.foods {
		if f.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *FoodRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.foods)), nil
}

// EntryRepository is an in-memory adapter.EntryRepository.
// Stored entries keep the Food pointer they were created with.
type EntryRepository struct {
	mu      sync.Mutex
	entries map[uuid.UUID]entity.Entry
	Err     error
}

// NewEntryRepository creates an empty EntryRepository.
func NewEntryRepository() *EntryRepository {
	return &EntryRepository{entries: make(map[uuid.UUID]entity.Entry)}
}

func (r *EntryRepository) Create(_ context.Context, entry *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.entries[entry.ID] = *entry
	return nil
}

func (r *EntryRepository) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var entries []*entity.Entry
	for _, id := range ids {
		if e, ok := r.entries[id]; ok {
			entries = append(entries, &e)
		}
	}
	return entries, nil
}

func (r *EntryRepository) FindByDate(_ context.Context, date time.Time) ([]*entity.Entry, error) {
	return r.filter(func(e entity.Entry) bool { return e.Date.Equal(date) })
}

func (r *EntryRepository) FindAll(_ context.Context) ([]*entity.Entry, error) {
	return r.filter(func(entity.Entry) bool { return true })
}

func (r *EntryRepository) filter(keep func(entity.Entry) bool) ([]*entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	entries := make([]*entity.Entry, 0)
	for _, e := range r.entries {
		if keep(e) {
			e := e
			entries = append(entries, &e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SubmittedAt.Equal(entries[j].SubmittedAt) {
			return entries[i].ID.String() < entries[j].ID.String()
		}
		return entries[i].SubmittedAt.Before(entries[j].SubmittedAt)
	})
	return entries, nil
}

func (r *EntryRepository) FindDistinctDates(_ context.Context) ([]time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	seen := make(map[time.Time]bool)
	dates := make([]time.Time, 0)
	for _, e := range r.entries {
		if !seen[e.Date] {
			seen[e.Date] = true
			dates = append(dates, e.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func (r *EntryRepository) CountByFood(_ context.Context, foodID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	var n int64
	for _, e := range r.entries {
		if e.FoodID == foodID {
			n++
		}
	}
	return n, nil
}

func (r *EntryRepository) BulkDelete(_ context.Context, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	var n int64
	for _, id := range ids {
		if _, ok := r.entries[id]; ok {
			delete(r.entries, id)
			n++
		}
	}
	return n, nil
}

// GoalRepository is an in-memory adapter.GoalRepository.
type GoalRepository struct {
	mu    sync.Mutex
	goals map[uuid.UUID]entity.Goal
	Err   error
}

// NewGoalRepository creates an empty GoalRepository.
func NewGoalRepository() *GoalRepository {
	return &GoalRepository{goals: make(map[uuid.UUID]entity.Goal)}
}

func (r *GoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.goals[goal.ID] = *goal
	return nil
}

func (r *GoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return &g, nil
}

func (r *GoalRepository) FindAll(_ context.Context) ([]*entity.Goal, error) {
	return r.sorted(func(entity.Goal) bool { return true })
}

func (r *GoalRepository) FindActive(_ context.Context) ([]*entity.Goal, error) {
	return r.sorted(func(g entity.Goal) bool { return g.Active })
}

// sorted returns the matching goals, active first, then by creation time.
func (r *GoalRepository) sorted(keep func(entity.Goal) bool) ([]*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	goals := make([]*entity.Goal, 0)
	for _, g := range r.goals {
		if keep(g) {
			g := g
			goals = append(goals, &g)
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].Active != goals[j].Active {
			return goals[i].Active
		}
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
	return goals, nil
}

func (r *GoalRepository) Update(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	r.goals[goal.ID] = *goal
	return nil
}

func (r *GoalRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.goals[id]; !ok {
		return domainerror.ErrGoalNotFound
	}
	delete(r.goals, id)
	return nil
}
