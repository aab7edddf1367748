package domain

import "time"

// Completion state names, as reported to clients.
const (
	StateCompleted  = "completed"
	StateIncomplete = "incomplete"
)

// Domain entity: бизнес-объект (истина).
// Не зависит от Gin, Postgres, Redis.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	IsComplete  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StateName is the single source for the completion wording; every layer
// that needs "completed"/"incomplete" goes through it.
func (t Task) StateName() string {
	if t.IsComplete {
		return StateCompleted
	}
	return StateIncomplete
}
