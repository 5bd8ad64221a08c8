package service

import (
	"context"
	"errors"

	"todolist_api/internal/domain"
)

var ErrTitleRequired = errors.New("title is required")

// TaskStore is the slice of the task repository the task service needs.
type TaskStore interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id, ownerID int64) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id, ownerID int64) error
}

type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns the owner's tasks. No tasks is an empty list, not an
// error.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// Create stores a new task. The owner always comes from the session,
// never from the request body.
func (s *TaskService) Create(ctx context.Context, ownerID int64, t *domain.Task) (*domain.Task, error) {
	if t.Title == "" {
		return nil, ErrTitleRequired
	}
	t.UserID = ownerID
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update merges only the supplied fields into the stored task and
// writes it back. The task must belong to ownerID.
func (s *TaskService) Update(ctx context.Context, id, ownerID int64, patch domain.TaskPatch) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, ErrTitleRequired
		}
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.SetDueDate {
		t.DueDate = patch.DueDate
	}

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the task if it belongs to ownerID.
func (s *TaskService) Delete(ctx context.Context, id, ownerID int64) error {
	return s.tasks.Delete(ctx, id, ownerID)
}
