package repository

import (
	"context"
	"errors"

	"todolist_api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, COALESCE(description, ''), status, due_date, created_at
		 FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (user_id, title, description, status, due_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		t.UserID, t.Title, t.Description, t.Status, t.DueDate,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *TaskRepository) GetByID(ctx context.Context, id, ownerID int64) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, COALESCE(description, ''), status, due_date, created_at
		 FROM tasks
		 WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)

	var t domain.Task
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update writes the full merged row. Concurrent updates race at
// last-write-wins granularity.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks
		 SET title = $1, description = $2, status = $3, due_date = $4
		 WHERE id = $5 AND user_id = $6`,
		t.Title, t.Description, t.Status, t.DueDate, t.ID, t.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
