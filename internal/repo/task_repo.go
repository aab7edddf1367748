package repo

import (
	"context"

	dom "github.com/PremjitDas/Task-Management-App/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepo provides task persistence. Every query except GetByID is
// constrained to the owning user; GetByID exists only so the toggle
// operation can tell "no such task" from "someone else's task".
type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	ListByOwner(ctx context.Context, userID int64) ([]dom.Task, error)
	GetByID(ctx context.Context, id int64) (dom.Task, error)
	UpdateOwned(ctx context.Context, userID, id int64, title, description string) (dom.Task, error)
	SetComplete(ctx context.Context, id int64, complete bool) (dom.Task, error)
	DeleteOwned(ctx context.Context, userID, id int64) (dom.Task, error)
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, title, description, is_complete, created_at, updated_at`
	var out dom.Task
	err := r.db.QueryRow(ctx, query, t.UserID, t.Title, t.Description).Scan(
		&out.ID, &out.UserID, &out.Title, &out.Description, &out.IsComplete,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTaskRepo) ListByOwner(ctx context.Context, userID int64) ([]dom.Task, error) {
	query := `
		SELECT id, user_id, title, description, is_complete, created_at, updated_at
		FROM tasks WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsComplete,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) GetByID(ctx context.Context, id int64) (dom.Task, error) {
	query := `
		SELECT id, user_id, title, description, is_complete, created_at, updated_at
		FROM tasks WHERE id = $1`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsComplete,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTaskRepo) UpdateOwned(ctx context.Context, userID, id int64, title, description string) (dom.Task, error) {
	query := `
		UPDATE tasks SET title = $3, description = $4, updated_at = NOW()
		WHERE id = $2 AND user_id = $1
		RETURNING id, user_id, title, description, is_complete, created_at, updated_at`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, userID, id, title, description).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsComplete,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTaskRepo) SetComplete(ctx context.Context, id int64, complete bool) (dom.Task, error) {
	query := `
		UPDATE tasks SET is_complete = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, title, description, is_complete, created_at, updated_at`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, complete).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsComplete,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// DeleteOwned is a hard delete; the prior row comes back for the response body.
func (r *PGTaskRepo) DeleteOwned(ctx context.Context, userID, id int64) (dom.Task, error) {
	query := `
		DELETE FROM tasks WHERE id = $2 AND user_id = $1
		RETURNING id, user_id, title, description, is_complete, created_at, updated_at`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, userID, id).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsComplete,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}
