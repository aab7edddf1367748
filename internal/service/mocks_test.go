package service

import (
	"context"

	dom "github.com/PremjitDas/Task-Management-App/internal/domain"

	"github.com/jackc/pgx/v5"
)

// MockUserRepo implements repo.UserRepo for testing.
type MockUserRepo struct {
	CreateFunc     func(ctx context.Context, username, email, passwordHash string) (dom.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (dom.User, error)
	GetByIDFunc    func(ctx context.Context, id int64) (dom.User, error)
}

func (m *MockUserRepo) Create(ctx context.Context, username, email, passwordHash string) (dom.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, username, email, passwordHash)
	}
	return dom.User{ID: 1, Username: username, Email: email, PasswordHash: passwordHash}, nil
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return dom.User{}, pgx.ErrNoRows
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return dom.User{}, pgx.ErrNoRows
}

// MockListCache implements ListCache for testing.
type MockListCache struct {
	GetListFunc    func(ctx context.Context, userID int64) ([]dom.Task, error)
	SetListFunc    func(ctx context.Context, userID int64, list []dom.Task) error
	InvalidateFunc func(ctx context.Context, userID int64) error
}

func (m *MockListCache) GetList(ctx context.Context, userID int64) ([]dom.Task, error) {
	if m.GetListFunc != nil {
		return m.GetListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockListCache) SetList(ctx context.Context, userID int64, list []dom.Task) error {
	if m.SetListFunc != nil {
		return m.SetListFunc(ctx, userID, list)
	}
	return nil
}

func (m *MockListCache) Invalidate(ctx context.Context, userID int64) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, userID)
	}
	return nil
}

// MockTaskRepo implements repo.TaskRepo for testing.
type MockTaskRepo struct {
	CreateFunc      func(ctx context.Context, t dom.Task) (dom.Task, error)
	ListByOwnerFunc func(ctx context.Context, userID int64) ([]dom.Task, error)
	GetByIDFunc     func(ctx context.Context, id int64) (dom.Task, error)
	UpdateOwnedFunc func(ctx context.Context, userID, id int64, title, description string) (dom.Task, error)
	SetCompleteFunc func(ctx context.Context, id int64, complete bool) (dom.Task, error)
	DeleteOwnedFunc func(ctx context.Context, userID, id int64) (dom.Task, error)
}

func (m *MockTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	t.ID = 1
	return t, nil
}

func (m *MockTaskRepo) ListByOwner(ctx context.Context, userID int64) ([]dom.Task, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTaskRepo) GetByID(ctx context.Context, id int64) (dom.Task, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return dom.Task{}, pgx.ErrNoRows
}

func (m *MockTaskRepo) UpdateOwned(ctx context.Context, userID, id int64, title, description string) (dom.Task, error) {
	if m.UpdateOwnedFunc != nil {
		return m.UpdateOwnedFunc(ctx, userID, id, title, description)
	}
	return dom.Task{}, pgx.ErrNoRows
}

func (m *MockTaskRepo) SetComplete(ctx context.Context, id int64, complete bool) (dom.Task, error) {
	if m.SetCompleteFunc != nil {
		return m.SetCompleteFunc(ctx, id, complete)
	}
	return dom.Task{}, pgx.ErrNoRows
}

func (m *MockTaskRepo) DeleteOwned(ctx context.Context, userID, id int64) (dom.Task, error) {
	if m.DeleteOwnedFunc != nil {
		return m.DeleteOwnedFunc(ctx, userID, id)
	}
	return dom.Task{}, pgx.ErrNoRows
}
