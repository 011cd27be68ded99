package task

import (
	"strings"
	"sync"
	"time"

	domain "github.com/example/task-board/domain/task"
	"github.com/google/uuid"
)

// TaskStore holds the board's tasks in memory, most recent first.
type TaskStore struct {
	tasks []domain.Task
	mu    sync.RWMutex
	now   func() time.Time
	newID func() string
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make([]domain.Task, 0),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Add creates a task from the draft and prepends it. A draft with a blank
// title is rejected and the store is left unchanged.
func (s *TaskStore) Add(draft domain.Draft) (domain.Task, bool) {
	if !draft.HasTitle() {
		return domain.Task{}, false
	}

	color := draft.Color
	if !color.Valid() {
		color = domain.DefaultColor
	}
	t := domain.Task{
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Tags:        domain.NormalizeTags(draft.Tags),
		Color:       color,
		Completed:   draft.Completed,
	}
	if draft.Reminder != nil {
		r := *draft.Reminder
		t.Reminder = &r
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.newID()
	t.CreatedAt = s.now()
	s.tasks = append([]domain.Task{t}, s.tasks...)
	return t.Clone(), true
}

// Update merges patch into the task with the given id. Missing ids are a no-op.
func (s *TaskStore) Update(id string, patch domain.Patch) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	s.tasks[i] = patch.Apply(s.tasks[i])
	return s.tasks[i].Clone(), true
}

// Delete removes the task with the given id and returns it.
func (s *TaskStore) Delete(id string) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return removed, true
}

// Get finds a task by id.
func (s *TaskStore) Get(id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// List returns a copy of every task in board order.
func (s *TaskStore) List() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		result = append(result, t.Clone())
	}
	return result
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// indexOf must be called with the lock held.
func (s *TaskStore) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
