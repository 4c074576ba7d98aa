// Package store owns the authoritative in-memory task collection. Every
// mutation persists the whole collection through the storage Repository;
// all readers get copies, never the backing slice.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandeepkv93/taskdash/internal/model"
	"github.com/sandeepkv93/taskdash/internal/storage"
)

var ErrNotFound = errors.New("store: task not found")

type Store struct {
	repo  storage.Repository
	tasks []model.Task
	now   func() time.Time
}

func New(repo storage.Repository) *Store {
	return NewWithClock(repo, time.Now)
}

func NewWithClock(repo storage.Repository, now func() time.Time) *Store {
	return &Store{repo: repo, now: now}
}

// Load reads the persisted collection. Absent or unreadable data is
// treated as a first run and seeds the default example tasks; Load never
// fails the caller.
func (s *Store) Load(ctx context.Context) {
	saved, err := s.repo.LoadTasks(ctx)
	if err != nil {
		s.tasks = s.seedTasks()
		return
	}
	tasks := make([]model.Task, 0, len(saved))
	for _, entity := range saved {
		task := taskFromEntity(entity)
		if task.Validate() != nil {
			s.tasks = s.seedTasks()
			return
		}
		tasks = append(tasks, task)
	}
	s.tasks = tasks
}

// Tasks returns a snapshot copy of the collection.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Get(id string) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Create prepends the task; most-recent-first is the display convention.
func (s *Store) Create(ctx context.Context, task model.Task) error {
	task = task.Normalize()
	if err := task.Validate(); err != nil {
		return err
	}
	if _, exists := s.Get(task.ID); exists {
		return fmt.Errorf("store: duplicate task id %q", task.ID)
	}
	s.tasks = append([]model.Task{task}, s.tasks...)
	return s.persist(ctx)
}

func (s *Store) Update(ctx context.Context, task model.Task) error {
	task = task.Normalize()
	if err := task.Validate(); err != nil {
		return err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			return s.persist(ctx)
		}
	}
	return ErrNotFound
}

func (s *Store) Toggle(ctx context.Context, id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return s.persist(ctx)
		}
	}
	return ErrNotFound
}

func (s *Store) Delete(ctx context.Context, id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.persist(ctx)
		}
	}
	return ErrNotFound
}

// Reset replaces the entire collection with the default seed set. The
// caller is responsible for the destructive-action confirmation gate.
func (s *Store) Reset(ctx context.Context) error {
	s.tasks = s.seedTasks()
	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	entities := make([]storage.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		entities = append(entities, entityFromTask(t))
	}
	if err := s.repo.SaveTasks(ctx, entities); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

func (s *Store) seedTasks() []model.Task {
	today := s.now().Format(model.DateLayout)
	return []model.Task{
		{
			ID:          "1",
			Title:       "Review Q3 Report",
			Description: "Quarterly business review for the sales team.",
			Date:        today,
			Time:        "09:00",
			Priority:    model.PriorityMedium,
			Category:    model.CategoryWork,
			Scheduled:   true,
		},
		{
			ID:          "2",
			Title:       "Buy Groceries",
			Description: "Milk, Eggs, Avocado, and Bread.",
			Date:        today,
			Priority:    model.PriorityLow,
			Category:    model.CategoryPersonal,
		},
	}
}

func taskFromEntity(e storage.Task) model.Task {
	return model.Task{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Priority:    model.Priority(e.Priority),
		Category:    model.Category(e.Category),
		Completed:   e.Completed,
		Scheduled:   e.Scheduled,
	}
}

func entityFromTask(t model.Task) storage.Task {
	return storage.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		Time:        t.Time,
		Priority:    string(t.Priority),
		Category:    string(t.Category),
		Completed:   t.Completed,
		Scheduled:   t.Scheduled,
	}
}
