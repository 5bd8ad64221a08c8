package domain

import "time"

type Task struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"user_id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description,omitempty"`
	Status      bool       `db:"status" json:"status"`
	DueDate     *time.Time `db:"due_date" json:"due_date,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// TaskPatch carries a partial update. Nil pointer fields are left
// untouched. SetDueDate marks that due_date was supplied at all, so an
// explicit null (SetDueDate true, DueDate nil) clears the stored value
// while an absent key keeps it.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *bool
	SetDueDate  bool
	DueDate     *time.Time
}
